package types

import (
	"bytes"
	"io"
)

// Source is the kind of file a cue sheet is read from.
type Source int

const (
	// SourceUnknown represents an unrecognized file.
	SourceUnknown Source = iota
	// SourceText represents a plain cue sheet text file.
	SourceText
	// SourceFLAC represents a FLAC stream carrying an embedded cue sheet.
	SourceFLAC
)

func (s Source) String() string {
	switch s {
	case SourceText:
		return "text"
	case SourceFLAC:
		return "FLAC"
	default:
		return "unknown"
	}
}

// Extensions returns common file extensions for this source.
func (s Source) Extensions() []string {
	switch s {
	case SourceText:
		return []string{".cue"}
	case SourceFLAC:
		return []string{".flac"}
	default:
		return nil
	}
}

// binaryMagic lists signatures of audio containers that can not carry a
// text cue sheet.
var binaryMagic = [][]byte{
	[]byte("ID3"),
	[]byte("OggS"),
	[]byte("RIFF"),
	[]byte("FORM"),
}

// DetectSource determines the source kind by examining magic bytes.
//
// A FLAC stream starts with "fLaC". Files shorter than four bytes, including
// empty files, are treated as text: an empty cue sheet is valid.
func DetectSource(r io.ReaderAt, size int64, path string) (Source, error) {
	if size < 4 {
		return SourceText, nil
	}

	magic := make([]byte, 4)
	if _, err := r.ReadAt(magic, 0); err != nil && err != io.EOF {
		return SourceUnknown, &UnsupportedSourceError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	if string(magic) == "fLaC" {
		return SourceFLAC, nil
	}

	for _, m := range binaryMagic {
		if bytes.HasPrefix(magic, m) {
			return SourceUnknown, &UnsupportedSourceError{
				Path:   path,
				Reason: "audio container without cue sheet support",
			}
		}
	}

	return SourceText, nil
}
