package cuesheet

import (
	"github.com/simonhull/cuesheet/internal/flac"
	"github.com/simonhull/cuesheet/internal/types"
)

// Error is an alias to types.Error. It carries the 1-based line number of a
// failed line and unwraps to the underlying error.
type Error = types.Error

// SyntaxError is an alias to types.SyntaxError.
type SyntaxError = types.SyntaxError

// UnexpectedTokenError is an alias to types.UnexpectedTokenError.
type UnexpectedTokenError = types.UnexpectedTokenError

// InvalidArgumentError is an alias to types.InvalidArgumentError.
type InvalidArgumentError = types.InvalidArgumentError

// IOError is an alias to types.IOError.
type IOError = types.IOError

// UnsupportedSourceError is an alias to types.UnsupportedSourceError.
type UnsupportedSourceError = types.UnsupportedSourceError

// Argument error kinds, matched with errors.Is.
var (
	ErrInvalidTimestamp = types.ErrInvalidTimestamp
	ErrMissingArgument  = types.ErrMissingArgument
	ErrInvalidID        = types.ErrInvalidID
)

// ErrNoCueSheet is returned by Open for a FLAC file without an embedded cue
// sheet.
var ErrNoCueSheet = flac.ErrNoCueSheet
