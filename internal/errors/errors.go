package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error for callers that need to branch on it
type Code string

const (
	// CodeUnknown is the code of any foreign error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument marks malformed input that cannot be coerced
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound marks a missing character, item, spell or class
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists marks an attempt to add something already held
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal marks a broken invariant or storage failure
	CodeInternal Code = "internal"

	// CodeUnavailable marks a reference source or store that cannot be reached
	CodeUnavailable Code = "unavailable"

	// CodeValidation marks a well formed request the rules refuse
	CodeValidation Code = "validation"
)

// Error carries a code, a message, an optional cause and free form metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key to the error and returns it for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err. A coded cause keeps its code and metadata.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var coded *Error
	if errors.As(err, &coded) {
		return &Error{
			Code:    coded.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(coded.Meta),
		}
	}

	return &Error{Code: CodeUnknown, Message: message, Cause: err}
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides whatever code it carried
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func Unavailablef(format string, args ...any) *Error { return Newf(CodeUnavailable, format, args...) }

func Validation(message string) *Error { return New(CodeValidation, message) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

// Is reports whether any error in the chain carries code
func Is(err error, code Code) bool {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code == code
	}
	return false
}

func IsNotFound(err error) bool { return Is(err, CodeNotFound) }

func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }

func IsAlreadyExists(err error) bool { return Is(err, CodeAlreadyExists) }

func IsInternal(err error) bool { return Is(err, CodeInternal) }

func IsUnavailable(err error) bool { return Is(err, CodeUnavailable) }

func IsValidation(err error) bool { return Is(err, CodeValidation) }

// IsRejected is true for an illegal transition such as acquiring a class
// already held, leveling one that is not, or equipping a misc item.
// Rejections leave the document unchanged.
func IsRejected(err error) bool {
	return IsAlreadyExists(err) || IsNotFound(err) || IsValidation(err)
}

// GetCode returns the outermost code in the chain, CodeUnknown for foreign errors
func GetCode(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
