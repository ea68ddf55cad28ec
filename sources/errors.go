package sources

import "fmt"

// TransportError reports a network failure, timeout or non-success status
// from an upstream service
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap supports error unwrapping
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed or unexpected-shape upstream payload
type ParseError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap supports error unwrapping
func (e *ParseError) Unwrap() error {
	return e.Err
}
