package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"city-weather/internal/apperrors"
)

const defaultUserAgent = "city-weather/1.0"

// Options configures a client. Zero values fall back to the public endpoint,
// a plain *http.Client and the default User-Agent.
type Options struct {
	Doer      Doer
	BaseURL   string
	UserAgent string
}

func (o Options) withDefaults(baseURL string) Options {
	if o.Doer == nil {
		o.Doer = &http.Client{}
	}
	if o.BaseURL == "" {
		o.BaseURL = baseURL
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	return o
}

// getJSON issues a GET and decodes a 2xx body into out. api names the
// endpoint in error messages ("Geocoding", "Weather", "Forecast").
func getJSON(ctx context.Context, opts Options, api, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := opts.Doer.Do(req)
	if err != nil {
		if classified := apperrors.FromContext(ctx, err); apperrors.Is(classified, apperrors.KindTimeout) {
			return classified
		}
		return apperrors.Unreachable(api, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return apperrors.Upstream(api, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return apperrors.FromContext(ctx, err)
		}
		return apperrors.DataUnavailable(apperrors.MsgMalformedResponse, err)
	}

	return nil
}
