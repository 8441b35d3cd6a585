// Package errors provides the service-wide error taxonomy.
// Faults are classified so callers can decide between the fallback
// pipeline, a client-visible error, and an HTTP status code.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Code identifies a fault class.
type Code string

const (
	// CodeTransport covers broken or closed client connections.
	CodeTransport Code = "TRANSPORT"
	// CodeStage covers unexpected failures inside a primary pipeline stage.
	CodeStage Code = "PIPELINE_STAGE"
	// CodeFallback covers failures of the degraded single-step pipeline.
	CodeFallback Code = "FALLBACK"
	// CodeValidation covers rejected client input on the HTTP surface.
	CodeValidation Code = "VALIDATION"
	// CodeTimeout covers external calls that exceeded their deadline.
	CodeTimeout Code = "TIMEOUT"
	// CodeUnavailable covers unreachable external capabilities.
	CodeUnavailable Code = "UNAVAILABLE"
	// CodeInternal covers everything else.
	CodeInternal Code = "INTERNAL"
)

// AppError is the base error type with a fault code and optional metadata.
type AppError struct {
	Code     Code
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if len(e.Metadata) > 0 {
		s += fmt.Sprintf(" %v", e.Metadata)
	}
	if e.Cause != nil {
		s += fmt.Sprintf(" caused by: %v", e.Cause)
	}
	return s
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error { return e.Cause }

// New creates a new AppError with the given code and message.
func New(code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// Newf creates a new AppError with a formatted message.
func Newf(code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an existing error with an AppError.
func Wrap(err error, code Code, msg string) *AppError {
	return &AppError{Code: code, Message: msg, Cause: err}
}

// Wrapf wraps an existing error with a formatted message.
func Wrapf(err error, code Code, format string, args ...any) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// WithMetadata adds metadata to an AppError.
func (e *AppError) WithMetadata(key, value string) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]string)
	}
	e.Metadata[key] = value
	return e
}

// IsCode checks whether an error carries a specific fault code.
func IsCode(err error, code Code) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// CodeOf extracts the fault code from an error, defaulting to CodeInternal.
func CodeOf(err error) Code {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// FromGRPCError classifies a gRPC call failure into the taxonomy.
func FromGRPCError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	st, ok := status.FromError(err)
	if !ok {
		return &AppError{Code: CodeInternal, Message: err.Error(), Cause: err}
	}

	return &AppError{Code: grpcToCode(st.Code()), Message: st.Message(), Cause: err}
}

func grpcToCode(c codes.Code) Code {
	switch c {
	case codes.DeadlineExceeded, codes.Canceled:
		return CodeTimeout
	case codes.Unavailable:
		return CodeUnavailable
	case codes.InvalidArgument:
		return CodeValidation
	default:
		return CodeInternal
	}
}

// HTTPStatus maps a fault code to an HTTP response status.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnavailable, CodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
