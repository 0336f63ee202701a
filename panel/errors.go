package panel

import (
	"fmt"

	"github.com/pkg/errors"
)

// TransportError is a network failure talking to the panel.
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s failed: %s", e.Endpoint, e.Err)
}

// StatusError is a non-2xx answer from the panel.
type StatusError struct {
	Endpoint string
	Status   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("request %s failed: status %d", e.Endpoint, e.Status)
}

// ParseError is a body that is not the expected JSON.
type ParseError struct {
	Endpoint string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode %s failed: %s", e.Endpoint, e.Err)
}

func IsTransport(err error) bool {
	_, ok := errors.Cause(err).(*TransportError)
	return ok
}

func IsStatus(err error) bool {
	_, ok := errors.Cause(err).(*StatusError)
	return ok
}

func IsParse(err error) bool {
	_, ok := errors.Cause(err).(*ParseError)
	return ok
}
