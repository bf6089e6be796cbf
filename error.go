package gloss

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and mappable to user-facing messages at the
// CLI boundary. Codes distinguish outcomes that callers handle differently:
// a word the remote source doesn't know (ENOTFOUND) is a normal result, while
// a recognized page whose structure lacked the expected markers (ENOCONTENT)
// points at site layout drift.
const (
	ECONFLICT    = "conflict"    // entry already exists with different content
	EINTERNAL    = "internal"    // internal error (store corruption, tool failure)
	EINVALID     = "invalid"     // validation failed
	ENETWORK     = "network"     // connectivity or timeout failure
	ENOCONTENT   = "no_content"  // document structure unrecognized
	ENOTFOUND    = "not_found"   // entity or remote entry not found
	EUNAVAILABLE = "unavailable" // required external dependency missing
)

// Error represents an application-specific error. Errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("gloss error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
