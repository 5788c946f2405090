package errors

import (
	"errors"
	"fmt"
)

// ErrorCode classifies an application error
type ErrorCode int

// Error classes. Validation and consistency errors are recovered locally
// with a re-prompt; remote errors keep the dialogue in its current state so
// the user can retry; parse errors only reject wholly unusable input.
const (
	ErrValidation ErrorCode = iota + 1000
	ErrRemote
	ErrConsistency
	ErrParse
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Validation marks input that does not match an expected option or pattern.
func Validation(message string) *AppError {
	return &AppError{Code: ErrValidation, Message: message}
}

// Remote marks a failed call to the booking API. Message carries the verbatim
// server response when one was readable.
func Remote(message string, err error) *AppError {
	return &AppError{Code: ErrRemote, Message: message, Err: err}
}

// Consistency marks a referenced id that is no longer present in the cached
// snapshot.
func Consistency(resource string) *AppError {
	return &AppError{Code: ErrConsistency, Message: fmt.Sprintf("%s not found in session snapshot", resource)}
}

// Parse marks operator input with no extractable start time.
func Parse(message string) *AppError {
	return &AppError{Code: ErrParse, Message: message}
}

// CodeOf returns the error's class, or ok=false for foreign errors.
func CodeOf(err error) (ErrorCode, bool) {
	var app *AppError
	if errors.As(err, &app) {
		return app.Code, true
	}
	return 0, false
}

// IsRemote reports whether err is a remote-call failure.
func IsRemote(err error) bool {
	code, ok := CodeOf(err)
	return ok && code == ErrRemote
}
