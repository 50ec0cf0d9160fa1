package main

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// registerUI serves the single-page browser client
func (app *App) registerUI() {
	assets, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}

	index, err := fs.ReadFile(assets, "index.html")
	if err != nil {
		panic(err)
	}

	app.engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", index)
	})
	app.engine.StaticFileFS("/app.js", "app.js", http.FS(assets))
	app.engine.StaticFileFS("/style.css", "style.css", http.FS(assets))
}
