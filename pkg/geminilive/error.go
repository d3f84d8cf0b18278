package geminilive

import "fmt"

// Error is a client error with a short machine-readable code.
type Error struct {
	// Code identifies the failure class (e.g. "not_connected").
	Code string

	// Message is the human-readable error message.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geminilive: %s: %s: %v", e.Code, e.Message, e.Err)
	}
	if e.Code != "" {
		return fmt.Sprintf("geminilive: %s: %s", e.Code, e.Message)
	}
	return "geminilive: " + e.Message
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Misuse errors returned by Connect and the send operations.
var (
	// ErrNoAPIKey is returned by Connect when the client has no API key.
	ErrNoAPIKey = &Error{Code: "no_api_key", Message: "API key is required"}

	// ErrNoConfig is returned by Connect when no configuration is supplied.
	ErrNoConfig = &Error{Code: "no_config", Message: "live config with a model is required"}

	// ErrAlreadyConnected is returned by Connect while a connection is
	// open or a connection attempt is in flight.
	ErrAlreadyConnected = &Error{Code: "already_connected", Message: "connection already open or connecting"}

	// ErrNotConnected is returned by the send operations when the client
	// is not open. Sends are never queued or silently dropped.
	ErrNotConnected = &Error{Code: "not_connected", Message: "websocket is not connected"}
)
