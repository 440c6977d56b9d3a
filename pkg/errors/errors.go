// Package errors provides structured error types for modchart.
//
// Every failure a caller can act on carries a [Code], so the CLI and the
// HTTP service can react without matching on message text:
//
//	INVALID_INPUT      malformed request or arguments
//	INVALID_CONFIG     configuration that no dialect can represent
//	INVALID_GRAPH      bad node IDs, dangling edges, duplicate nodes
//	INVALID_DIALECT    unknown dialect name
//	INVALID_FORMAT     unknown graph file or output format
//	INVALID_PATH       unsafe file path
//	UNRESOLVED_STYLE   a node or edge uses a type the configuration lacks
//	MISSING_REGION     a document lacks the chart region sentinels
//	NOT_FOUND          unknown route or resource
//	FILE_NOT_FOUND     missing input file
//	UNSUPPORTED        valid request the chosen dialect cannot serve
//	INTERNAL_ERROR     anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfig, "unknown theme %q", name)
//	if errors.Is(err, errors.ErrCodeInvalidConfig) {
//	    // reject the request
//	}
//
//	err = errors.Wrap(errors.ErrCodeInvalidGraph, origErr, "read %s", path)
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidConfig  Code = "INVALID_CONFIG"
	ErrCodeInvalidGraph   Code = "INVALID_GRAPH"
	ErrCodeInvalidDialect Code = "INVALID_DIALECT"
	ErrCodeInvalidFormat  Code = "INVALID_FORMAT"
	ErrCodeInvalidPath    Code = "INVALID_PATH"

	ErrCodeUnresolvedStyle Code = "UNRESOLVED_STYLE"
	ErrCodeMissingRegion   Code = "MISSING_REGION"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// IsInput reports whether c blames the caller's input: one of the INVALID_*
// codes, UNRESOLVED_STYLE or MISSING_REGION. Retrying such a request
// unchanged fails the same way.
func (c Code) IsInput() bool {
	switch c {
	case ErrCodeUnresolvedStyle, ErrCodeMissingRegion:
		return true
	}
	return strings.HasPrefix(string(c), "INVALID_")
}

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return code != "" && GetCode(err) == code
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// if there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage renders err for a terminal: messages along the chain joined
// with ": ", without code prefixes.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + UserMessage(e.Cause)
}
