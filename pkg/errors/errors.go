package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternalServer     = errors.New("internal server error")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// Story player error taxonomy
var (
	ErrSourceUnavailable  = errors.New("source unavailable")
	ErrDecodeFailure      = errors.New("decode failure")
	ErrReadFailure        = errors.New("read failure")
	ErrPersistFailure     = errors.New("persist failure")
	ErrPerUserFetchFailed = errors.New("per-user fetch failure")
)

// Error codes carried by Error.Code
const (
	CodeSourceUnavailable   = "source_unavailable"
	CodeDecodeFailure       = "decode_failure"
	CodeReadFailure         = "read_failure"
	CodePersistFailure      = "persist_failure"
	CodePerUserFetchFailure = "per_user_fetch_failure"
)

var codeSentinels = map[string]error{
	CodeSourceUnavailable:   ErrSourceUnavailable,
	CodeDecodeFailure:       ErrDecodeFailure,
	CodeReadFailure:         ErrReadFailure,
	CodePersistFailure:      ErrPersistFailure,
	CodePerUserFetchFailure: ErrPerUserFetchFailed,
}

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel registered for the error code.
func (e *Error) Is(target error) bool {
	sentinel, ok := codeSentinels[e.Code]
	return ok && sentinel == target
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// SourceUnavailable marks err as a directory/page source failure.
func SourceUnavailable(err error) error {
	return WrapWithCode(err, CodeSourceUnavailable, "source unavailable")
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode returns the error code if it exists
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound returns true if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSourceUnavailable returns true if the page source could not be read
func IsSourceUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}

// IsServiceUnavailable returns true if the error is a service unavailable error
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
