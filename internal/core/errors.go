package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure for transport mapping. Store backends
// translate their native failures into one of these kinds at their boundary
// so nothing backend-specific leaks into handlers.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindPermission
	KindQueryUnsupported
	KindCorruptRecord
	KindStorageUnavailable
)

// Code returns the stable wire code for the kind, used as the "type" field
// of error responses.
func (k ErrorKind) Code() string {
	switch k {
	case KindValidation:
		return "VALIDATION_ERROR"
	case KindNotFound:
		return "NOT_FOUND_ERROR"
	case KindPermission:
		return "PERMISSION_ERROR"
	case KindQueryUnsupported:
		return "QUERY_UNSUPPORTED"
	case KindCorruptRecord:
		return "CORRUPT_RECORD"
	case KindStorageUnavailable:
		return "STORAGE_UNAVAILABLE"
	default:
		return "SERVER_ERROR"
	}
}

// Error is the one error type that crosses package boundaries.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NewError builds a classified error wrapping an optional cause.
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Validationf builds a validation error from a format string.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error from a format string.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or KindInternal when err carries none.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindInternal
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
