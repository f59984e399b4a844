package schema

import (
	"sync"
)

type BackendResponseErrorCode string

const (
	BackendError    BackendResponseErrorCode = "BACKEND_ERROR"
	TimeoutError    BackendResponseErrorCode = "TIMEOUT_ERROR"
	ConnectionError BackendResponseErrorCode = "CONNECTION_ERROR"
)

// BackendResponseError is a structured failure from the back-office API. The
// message is surfaced to the console verbatim when available.
type BackendResponseError struct {
	Code    BackendResponseErrorCode `json:"code"`
	Message string                   `json:"message"`
}

type BackendResponseErrors []BackendResponseError

type errorsBucket struct {
	errors BackendResponseErrors
	sync.Mutex
}

func NewErrorsBucket() errorsBucket {
	return errorsBucket{
		errors: []BackendResponseError{},
	}
}

func (e *errorsBucket) AddErrors(errors []BackendResponseError) {
	e.Lock()
	e.errors = append(e.errors, errors...)
	e.Unlock()
}

func (e *errorsBucket) AddError(err BackendResponseError) {
	e.Lock()
	e.errors = append(e.errors, err)
	e.Unlock()
}

func (e *errorsBucket) Errors() *BackendResponseErrors {
	return &e.errors
}

func NewBackendError(msg string) BackendResponseError {
	return BackendResponseError{
		Code:    BackendError,
		Message: msg,
	}
}

func NewTimeoutError(msg string) BackendResponseError {
	return BackendResponseError{
		Code:    TimeoutError,
		Message: msg,
	}
}

func NewConnectionError(msg string) BackendResponseError {
	return BackendResponseError{
		Code:    ConnectionError,
		Message: msg,
	}
}
