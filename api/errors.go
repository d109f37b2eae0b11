// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for schedbench.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the module.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrNotSupported    = fmt.Errorf("operation not supported")
	ErrEmptySource     = fmt.Errorf("work source has no values")
)

// ErrorCode represents specific error conditions in the module.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeNotSupported
	ErrCodeInternal
	// ErrCodeUsage marks malformed or insufficient command-line input.
	ErrCodeUsage
	// ErrCodeAffinity marks a rejected core-binding request.
	ErrCodeAffinity
	// ErrCodePolicy marks a rejected scheduling class or priority change.
	ErrCodePolicy
	// ErrCodeConfig marks an inconsistent run configuration or profile.
	ErrCodeConfig
	// ErrCodeTrace marks unreadable trace input or a failed result store.
	ErrCodeTrace
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodeNotSupported:
		return "not_supported"
	case ErrCodeUsage:
		return "usage"
	case ErrCodeAffinity:
		return "affinity"
	case ErrCodePolicy:
		return "policy"
	case ErrCodeConfig:
		return "config"
	case ErrCodeTrace:
		return "trace"
	default:
		return "internal"
	}
}

// Error represents a structured error with code, context and an optional
// underlying cause such as an OS errno.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if len(e.Context) == 0 {
		return msg
	}
	return fmt.Sprintf("%s (context: %+v)", msg, e.Context)
}

// Unwrap exposes the cause so errors.Is can match errno values.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WrapError creates a structured error around cause.
func WrapError(code ErrorCode, message string, cause error) *Error {
	e := NewError(code, message)
	e.Err = cause
	return e
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// CodeOf returns the code of the first *Error in err's chain,
// ErrCodeOK for nil and ErrCodeInternal for foreign errors.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeInternal
}
