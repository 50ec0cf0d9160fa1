package openmeteo

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RateLimitedDoer wraps a Doer with a token bucket shared by every client
// built on top of it
type RateLimitedDoer struct {
	next    Doer
	limiter *rate.Limiter
}

// NewRateLimitedDoer creates a new rate limited transport
// rps is the maximum requests per second allowed (can be fractional)
// burst is the maximum burst size allowed
func NewRateLimitedDoer(next Doer, rps float64, burst int) *RateLimitedDoer {
	return &RateLimitedDoer{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Do waits for a token or for the request context to end, then forwards
func (d *RateLimitedDoer) Do(req *http.Request) (*http.Response, error) {
	if err := d.limiter.Wait(req.Context()); err != nil {
		// Wait fails early when the deadline cannot be met, without the
		// context being done yet; report that as a deadline too.
		return nil, fmt.Errorf("rate limit wait: %w: %w", context.DeadlineExceeded, err)
	}
	return d.next.Do(req)
}
