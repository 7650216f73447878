package scorelib

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFLICT = "conflict"  // record already exists
	ECORRUPT  = "corrupt"   // stored bytes do not parse
	EINTERNAL = "internal"  // underlying I/O or environment failure
	EINVALID  = "invalid"   // validation failed
	ENOTFOUND = "not_found" // record does not exist
	EPARTIAL  = "partial"   // multi-step operation completed only some steps
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract the machine-readable code.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("scorelib error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available. Otherwise
// returns EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of the error, if
// available. Otherwise returns a generic error message.
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
