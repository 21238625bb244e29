// Package flac reads cue sheets embedded in FLAC files.
//
// Rippers store cue sheets in FLAC files in two ways: as the text of a
// CUESHEET Vorbis comment, or as a binary CUESHEET metadata block. The text
// form carries titles and performers and is preferred.
package flac

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"

	"github.com/simonhull/cuesheet/internal/registry"
	"github.com/simonhull/cuesheet/internal/types"
)

// ErrNoCueSheet is returned when a FLAC file carries no cue sheet.
var ErrNoCueSheet = errors.New("no embedded cue sheet")

// commentKey is the Vorbis comment holding cue sheet text.
const commentKey = "CUESHEET"

func init() {
	registry.Register(types.SourceFLAC, reader{})
}

type reader struct{}

func (reader) ReadEmbedded(r io.ReaderAt, size int64, path string) (*types.Embedded, error) {
	return Read(io.NewSectionReader(r, 0, size), path)
}

// Read extracts the embedded cue sheet from a FLAC stream. path names the
// FILE entry of a sheet converted from the binary block.
func Read(r io.Reader, path string) (*types.Embedded, error) {
	f, err := flac.ParseMetadata(r)
	if err != nil {
		return nil, fmt.Errorf("parse FLAC metadata: %w", err)
	}

	var (
		sampleRate uint32
		block      *flac.MetaDataBlock
	)
	for _, meta := range f.Meta {
		switch meta.Type {
		case flac.StreamInfo:
			sampleRate = streamInfoSampleRate(meta.Data)
		case flac.VorbisComment:
			text, err := commentCueSheet(meta)
			if err != nil {
				return nil, err
			}
			if text != "" {
				return &types.Embedded{Text: text, SampleRate: sampleRate}, nil
			}
		case flac.CueSheet:
			block = meta
		}
	}

	if block == nil {
		return nil, ErrNoCueSheet
	}

	cs, err := parseCueSheetBlock(block.Data)
	if err != nil {
		return nil, fmt.Errorf("parse CUESHEET block: %w", err)
	}
	sheet, err := cs.toCueSheet(filepath.Base(path), sampleRate)
	if err != nil {
		return nil, err
	}
	return &types.Embedded{Sheet: sheet, SampleRate: sampleRate}, nil
}

func commentCueSheet(meta *flac.MetaDataBlock) (string, error) {
	cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
	if err != nil {
		return "", fmt.Errorf("parse Vorbis comments: %w", err)
	}
	values, err := cmts.Get(commentKey)
	if err != nil {
		return "", fmt.Errorf("read %s comment: %w", commentKey, err)
	}
	if len(values) == 0 {
		return "", nil
	}
	return values[0], nil
}

// streamInfoSampleRate extracts the 20-bit sample rate packed at bytes 10-12
// of STREAMINFO.
func streamInfoSampleRate(data []byte) uint32 {
	if len(data) < 13 {
		return 0
	}
	return uint32(data[10])<<12 | uint32(data[11])<<4 | uint32(data[12])>>4
}
