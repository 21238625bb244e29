package cuesheet

import (
	"io"

	"github.com/simonhull/cuesheet/internal/types"
)

// Source is an alias to types.Source.
type Source = types.Source

// Re-export source constants.
const (
	SourceUnknown = types.SourceUnknown
	SourceText    = types.SourceText
	SourceFLAC    = types.SourceFLAC
)

// DetectSource is a wrapper around types.DetectSource.
func DetectSource(r io.ReaderAt, size int64, path string) (Source, error) {
	return types.DetectSource(r, size, path)
}
