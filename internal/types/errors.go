package types

import (
	"errors"
	"fmt"
)

// Sentinel errors carried by InvalidArgumentError.
var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidID        = errors.New("invalid id")
)

// SyntaxError is returned when a directive is locally malformed or when
// applying it would break an ordering or cardinality rule.
type SyntaxError struct {
	// Command is the textual form of the offending directive.
	Command string
	Reason  string
}

func (e *SyntaxError) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("syntax error: %s", e.Reason)
	}
	return fmt.Sprintf("syntax error: %s: %s", e.Command, e.Reason)
}

// UnexpectedTokenError is returned for an unrecognized directive keyword.
type UnexpectedTokenError struct {
	Keyword string
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %q", e.Keyword)
}

// InvalidArgumentError is returned when a directive argument fails validation.
//
// Err is one of ErrInvalidTimestamp, ErrMissingArgument or ErrInvalidID, so
// callers can test the kind with errors.Is.
type InvalidArgumentError struct {
	Err     error
	Keyword string
	Value   string
	Reason  string
}

func (e *InvalidArgumentError) Error() string {
	msg := e.Err.Error()
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Keyword != "" {
		return e.Keyword + ": " + msg
	}
	return msg
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// IOError wraps a failure of the reader that supplies lines.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read error: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Error attaches the 1-based line number to the innermost parse error.
type Error struct {
	Err  error
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UnsupportedSourceError is returned when a file is neither cue text nor a
// FLAC stream.
type UnsupportedSourceError struct {
	Path   string
	Reason string
}

func (e *UnsupportedSourceError) Error() string {
	return fmt.Sprintf("%s: unsupported source: %s", e.Path, e.Reason)
}
