package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures crossing the API boundary.
type ErrorKind string

const (
	// ErrorKindValidation marks a missing or malformed required field.
	ErrorKindValidation ErrorKind = "ValidationError"
	// ErrorKindUnsupportedFormat marks a disallowed media type or an empty
	// audio payload, rejected before any upstream call.
	ErrorKindUnsupportedFormat ErrorKind = "UnsupportedFormatError"
	// ErrorKindUpstream marks a language-model or transcription-provider
	// failure, surfaced with the provider's detail.
	ErrorKindUpstream ErrorKind = "UpstreamError"
	// ErrorKindResource marks a device or permission denial on the client.
	ErrorKindResource ErrorKind = "ResourceError"
)

// DomainError carries an error kind alongside a user-facing message and the
// wrapped cause, if any.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *DomainError {
	return &DomainError{Kind: ErrorKindValidation, Message: message}
}

// NewUnsupportedFormatError creates an UnsupportedFormatError.
func NewUnsupportedFormatError(message string) *DomainError {
	return &DomainError{Kind: ErrorKindUnsupportedFormat, Message: message}
}

// NewUpstreamError wraps a provider failure as an UpstreamError.
func NewUpstreamError(message string, err error) *DomainError {
	return &DomainError{Kind: ErrorKindUpstream, Message: message, Err: err}
}

// NewResourceError wraps a device or permission failure as a ResourceError.
func NewResourceError(message string, err error) *DomainError {
	return &DomainError{Kind: ErrorKindResource, Message: message, Err: err}
}

// KindOf extracts the error kind from err, defaulting to UpstreamError for
// anything untyped that reaches the boundary.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ErrorKindUpstream
}
