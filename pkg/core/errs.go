package core

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork          = errors.New("request failed")
	ErrDecode           = errors.New("malformed payload")
	ErrMisaligned       = errors.New("series not aligned with labels")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrMissingElement   = errors.New("missing page element")
)

// APIError is an application-level failure reported by the backend
// through the payload's error field.
type APIError struct {
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	if e.Endpoint == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}
