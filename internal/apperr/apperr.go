// Package apperr holds the error taxonomy shared by the registry, the
// backend binding manager and the sync engine, so handlers can map every
// failure to a stable HTTP status with errors.Is/As.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound covers both "does not exist" and "not yours". The two cases are
// deliberately indistinguishable so that one user cannot probe for another
// user's project ids.
var ErrNotFound = errors.New("project not found")

// ValidationError is the caller's fault, never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// BackendConnectionError carries the probe failure message through to the
// caller when configuring a project backend.
type BackendConnectionError struct {
	Msg string
}

func (e *BackendConnectionError) Error() string {
	return "Backend connection failed: " + e.Msg
}

// StoreError wraps a durable-storage failure. The underlying error is kept
// for logging but is not shown to API callers.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
