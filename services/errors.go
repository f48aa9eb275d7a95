package services

import "fmt"

// RequestError indicates invalid caller input; it is never retried.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// ProviderError indicates an upstream fetch or parse failure during one
// pipeline stage.
type ProviderError struct {
	Stage string
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error during %s: %v", e.Stage, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
