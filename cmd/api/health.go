package main

import (
	"context"
	"time"
)

const appVersion = "1.0.0"

// PingOutput represents the response for the ping endpoint
type PingOutput struct {
	Body struct {
		Message string    `json:"message" example:"pong" doc:"Response message"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Server time in UTC"`
	}
}

// handlePing is a health check endpoint. It never calls Open-Meteo.
func (app *App) handlePing(ctx context.Context, input *struct{}) (*PingOutput, error) {
	resp := &PingOutput{}
	resp.Body.Message = "pong"
	resp.Body.Version = appVersion
	resp.Body.Time = time.Now().UTC()
	return resp, nil
}
