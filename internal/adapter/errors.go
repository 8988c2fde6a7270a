package adapter

import "errors"

var (
	// ErrTransport wraps failures to complete an HTTP exchange.
	ErrTransport = errors.New("request failed")
	// ErrInvalidBaseURL is returned when the base URL has no scheme or host.
	ErrInvalidBaseURL = errors.New("invalid base url")
)
