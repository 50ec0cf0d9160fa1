package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Kind is the closed set of failure classes surfaced to callers.
type Kind int

const (
	// KindUnknown is never produced by this module; it is what KindOf reports
	// for errors that did not come through this package.
	KindUnknown Kind = iota
	KindInvalidInput
	KindUpstream
	KindNotFound
	KindDataUnavailable
	KindTimeout
)

var kindNames = map[Kind]string{
	KindUnknown:         "unknown",
	KindInvalidInput:    "invalid_input",
	KindUpstream:        "upstream_error",
	KindNotFound:        "not_found",
	KindDataUnavailable: "data_unavailable",
	KindTimeout:         "timeout",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Messages shown to users at the CLI and HTTP boundaries.
const (
	MsgCityRequired      = "City name is required"
	MsgCityNotFound      = "City not found"
	MsgTimedOut          = "Request timed out"
	MsgWeatherMissing    = "Weather data unavailable"
	MsgForecastMissing   = "No forecast data available"
	MsgMalformedResponse = "Malformed response"
)

// Error is a classified failure. Status is only meaningful for KindUpstream.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput reports a caller mistake detected before any network activity.
func InvalidInput(message string) error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// Upstream reports a non-2xx response. api names the endpoint, e.g. "Geocoding".
func Upstream(api string, status int) error {
	return &Error{
		Kind:    KindUpstream,
		Status:  status,
		Message: fmt.Sprintf("%s API error: %d", api, status),
	}
}

// Unreachable reports a transport failure before any response arrived.
// It shares KindUpstream with Upstream but carries no status.
func Unreachable(api string, err error) error {
	return &Error{
		Kind:    KindUpstream,
		Message: fmt.Sprintf("%s API unreachable", api),
		Err:     err,
	}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

// DataUnavailable reports a 2xx response without the expected payload.
func DataUnavailable(message string, err error) error {
	return &Error{Kind: KindDataUnavailable, Message: message, Err: err}
}

func Timeout(err error) error {
	return &Error{Kind: KindTimeout, Message: MsgTimedOut, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Message returns the user-facing message for err, without wrapped causes.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// FromContext normalizes err against ctx: once the context is done, or when
// err is itself a context error, the result is a Timeout. Already classified
// errors pass through untouched.
func FromContext(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Timeout(err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Timeout(fmt.Errorf("%w: %w", ctxErr, err))
	}
	return err
}
