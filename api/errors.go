// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-chain.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrNotFound       = fmt.Errorf("filter not found")
	ErrDuplicateName  = fmt.Errorf("filter name already taken")
	ErrOutOfRange     = fmt.Errorf("index out of range")
	ErrConcurrentMod  = fmt.Errorf("queue modified during iteration")
	ErrVetoed         = fmt.Errorf("chain mutation vetoed")
	ErrSessionClosed  = fmt.Errorf("session is closed")
	ErrQueueEmpty     = fmt.Errorf("queue is empty")
	ErrInvalidMessage = fmt.Errorf("invalid message type")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeNotFound
	ErrCodeDuplicateName
	ErrCodeOutOfRange
	ErrCodeConcurrentMod
	ErrCodeVetoed
	ErrCodeSessionClosed
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
