// Package errors defines the framework's structured error codes.
// Tree and focus violations are programming errors in the host
// application; they are surfaced immediately and never retried.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode classifies a framework error.
type ErrorCode string

const (
	// Tree errors: cycle creation, detaching the root, attaching a node
	// that already has a parent.
	ErrCodeInvalidTreeOp ErrorCode = "INVALID_TREE_OP"

	// Focus errors: focusing a hidden or non-focusable node.
	ErrCodeNotFocusable ErrorCode = "NOT_FOCUSABLE"

	// Unknown node handle.
	ErrCodeNoSuchNode ErrorCode = "NO_SUCH_NODE"

	// Backend errors.
	ErrCodeBackendInit ErrorCode = "BACKEND_INIT"

	// Theme errors.
	ErrCodeThemeParse ErrorCode = "THEME_PARSE"

	// Generic errors.
	ErrCodeInternal     ErrorCode = "INTERNAL"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Error is a coded error with optional context and cause.
type Error struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Context    map[string]any
}

// New creates a coded error.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a coded error with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to an existing error.
// Returns nil when err is nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

// WithContext adds a context key-value pair to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Code, e.Message)

	if len(e.Context) > 0 {
		sb.WriteString(" {")
		first := true
		for k, v := range e.Context {
			if !first {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%s: %v", k, v)
			first = false
		}
		sb.WriteString("}")
	}

	if e.Underlying != nil {
		fmt.Fprintf(&sb, ": %v", e.Underlying)
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Underlying
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	coded, ok := err.(*Error)
	if !ok {
		return false
	}
	return coded.Code == code
}

// GetCode extracts the code from an error, ErrCodeInternal for foreign
// errors and "" for nil.
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}
	coded, ok := err.(*Error)
	if !ok {
		return ErrCodeInternal
	}
	return coded.Code
}
