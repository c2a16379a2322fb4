package mailscout

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EBLOCKED  = "blocked"  // domain is on the placeholder denylist
	EINVALID  = "invalid"  // input validation failed
	EINTERNAL = "internal" // unexpected internal error
)

// Error represents an application error with a machine-readable code and a
// human-readable message. The code is used by callers to map errors onto
// their own response shapes; the message is safe to show to end users.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mailscout error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL; nil returns "".
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
// Non-application errors always return "Internal error."; nil returns "".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
