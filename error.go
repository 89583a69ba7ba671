package pdfextractor

import (
	"errors"
	"fmt"
)

// Error codes form a closed set that is stable across collaborator
// implementations. Page-scoped codes (ERENDER, ETRANSCRIBE) are absorbed into
// PageRecords and never propagate as control flow; document-scoped codes
// (EINPUT, EOUTPUT) fail a single document; EUNAVAILABLE marks an optional
// capability that is missing, which degrades output but is not an error.
const (
	EINPUT       = "input_error"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EOUTPUT      = "output_error"
	ERENDER      = "render_error"
	ETRANSCRIBE  = "transcription_error"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of any error. It returns the empty string for a
// nil error and EINTERNAL for errors that do not carry a code.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of any error. It returns the empty string
// for a nil error and the full error text for errors that do not carry a code.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// AsError converts any error into an *Error, preserving the code and message
// of coded errors and wrapping everything else as EINTERNAL.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Code: EINTERNAL, Message: err.Error()}
}
