package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	CodeViewerError   = "VIEWER_ERROR"
	CodeTransport     = "TRANSPORT_ERROR"
	CodeTimeout       = "TIMEOUT_ERROR"
	CodeHTTPStatus    = "HTTP_STATUS_ERROR"
	CodePayload       = "PAYLOAD_ERROR"
	CodeReferenceLoad = "REFERENCE_LOAD_ERROR"
	CodeValidation    = "VALIDATION_ERROR"
	CodeCache         = "CACHE_ERROR"
	CodeUnavailable   = "PROFILE_UNAVAILABLE"
)

// ErrProfileUnavailable is the single definitive failure signal of a profile search.
var ErrProfileUnavailable = stderrors.New("profile unavailable")

type ViewerError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *ViewerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ViewerError) Unwrap() error {
	return e.Cause
}

// ErrorCode exposes the code through embedding so CodeOf works on every wrapper type.
func (e *ViewerError) ErrorCode() string {
	return e.Code
}

func NewViewerError(message, code string, statusCode int, context map[string]any) *ViewerError {
	return &ViewerError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *ViewerError) WithCause(cause error) *ViewerError {
	e.Cause = cause
	return e
}

type TransportError struct {
	*ViewerError
}

func NewTransportError(message, url string, cause error) *TransportError {
	return &TransportError{
		ViewerError: &ViewerError{
			Message: message,
			Code:    CodeTransport,
			Context: map[string]any{"url": url},
			Cause:   cause,
		},
	}
}

type TimeoutError struct {
	*ViewerError
}

func NewTimeoutError(message, url string, cause error) *TimeoutError {
	return &TimeoutError{
		ViewerError: &ViewerError{
			Message:    message,
			Code:       CodeTimeout,
			StatusCode: 504,
			Context:    map[string]any{"url": url},
			Cause:      cause,
		},
	}
}

type HTTPStatusError struct {
	*ViewerError
}

func NewHTTPStatusError(statusCode int, url string) *HTTPStatusError {
	return &HTTPStatusError{
		ViewerError: &ViewerError{
			Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
			Code:       CodeHTTPStatus,
			StatusCode: statusCode,
			Context:    map[string]any{"url": url},
		},
	}
}

type PayloadError struct {
	*ViewerError
	Route string
}

func NewPayloadError(message, route string, cause error) *PayloadError {
	return &PayloadError{
		ViewerError: &ViewerError{
			Message: message,
			Code:    CodePayload,
			Context: map[string]any{"route": route},
			Cause:   cause,
		},
		Route: route,
	}
}

type ReferenceLoadError struct {
	*ViewerError
	Table string
}

func NewReferenceLoadError(table, url string, cause error) *ReferenceLoadError {
	return &ReferenceLoadError{
		ViewerError: &ViewerError{
			Message: fmt.Sprintf("failed to load %s table", table),
			Code:    CodeReferenceLoad,
			Context: map[string]any{
				"table": table,
				"url":   url,
			},
			Cause: cause,
		},
		Table: table,
	}
}

type ValidationError struct {
	*ViewerError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		ViewerError: &ViewerError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*ViewerError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		ViewerError: &ViewerError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

// UnavailableError reports an exhausted search. It matches ErrProfileUnavailable
// and still unwraps to the last attempt failure.
type UnavailableError struct {
	*ViewerError
	UID      string
	Attempts int
}

func NewUnavailableError(uid string, attempts int, cause error) *UnavailableError {
	return &UnavailableError{
		ViewerError: &ViewerError{
			Message:    fmt.Sprintf("profile %s unavailable after %d attempts", uid, attempts),
			Code:       CodeUnavailable,
			StatusCode: 404,
			Context: map[string]any{
				"uid":      uid,
				"attempts": attempts,
			},
			Cause: cause,
		},
		UID:      uid,
		Attempts: attempts,
	}
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrProfileUnavailable
}

// CodeOf returns the code of the outermost coded error in the chain.
func CodeOf(err error) string {
	var coded interface{ ErrorCode() string }
	if stderrors.As(err, &coded) {
		return coded.ErrorCode()
	}
	if err == nil {
		return ""
	}
	return CodeViewerError
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
