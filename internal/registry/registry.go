// Package registry maps source kinds to readers for embedded cue sheets.
package registry

import (
	"io"

	"github.com/simonhull/cuesheet/internal/types"
)

// EmbeddedReader is implemented by container packages that can carry a cue
// sheet inside an audio file.
type EmbeddedReader interface {
	// ReadEmbedded extracts the cue sheet from the file. path names the
	// FILE entry when a sheet is converted from binary data.
	ReadEmbedded(r io.ReaderAt, size int64, path string) (*types.Embedded, error)
}

// readers maps sources to their readers.
var readers = make(map[types.Source]EmbeddedReader)

// Register registers a reader for a source.
// This is called by container packages during initialization (init functions).
func Register(source types.Source, reader EmbeddedReader) {
	readers[source] = reader
}

// Get returns the reader for a given source.
// Returns nil if no reader is registered for the source.
func Get(source types.Source) EmbeddedReader {
	return readers[source]
}
