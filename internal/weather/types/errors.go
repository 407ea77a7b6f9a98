package types

import (
	"errors"
	"fmt"
)

// Sentinel kinds, matched with errors.Is by HTTP handlers and the digest job.
var (
	// the request never produced a usable provider payload
	ErrTransport = errors.New("transport error")

	// the provider answered with an error object (e.g. unknown city)
	ErrProvider = errors.New("provider error")
)

// TransportError is returned when the request could not be completed,
// returned a non-success status, or the body could not be decoded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ProviderError carries the provider's own error code and message.
type ProviderError struct {
	Code    int
	Message string
}

// Error returns the provider's message unchanged.
func (e *ProviderError) Error() string { return e.Message }

func (e *ProviderError) Is(target error) bool { return target == ErrProvider }

// ErrorMessage returns the text a Presenter shows for a failed fetch.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Error()
	}
	return err.Error()
}
