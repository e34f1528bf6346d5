package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates a missing or invalid API key.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the catalog backend. Message is the
// server-provided message when the body carried one, otherwise a transport
// level description.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

// Unwrap maps well-known statuses onto sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case 404:
		return ErrNotFound
	case 401, 403:
		return ErrUnauthorized
	}
	return nil
}
