package flac

import (
	"fmt"

	"github.com/simonhull/cuesheet/internal/binary"
	"github.com/simonhull/cuesheet/internal/lex"
	"github.com/simonhull/cuesheet/internal/types"
)

// Track numbers FLAC reserves for the lead-out.
const (
	leadOutCD    = 170
	leadOutOther = 255
)

// cueSheetBlock is a decoded CUESHEET metadata block.
type cueSheetBlock struct {
	MediaCatalogNumber string
	LeadIn             uint64
	IsCD               bool
	Tracks             []cueTrack
}

type cueTrack struct {
	Offset      uint64 // samples from start of audio
	Number      byte   // 1-99, 170/255 = lead-out
	ISRC        string
	IsAudio     bool
	PreEmphasis bool
	Indices     []cueIndex
}

type cueIndex struct {
	Offset uint64 // samples from start of track
	Number byte
}

// parseCueSheetBlock decodes the body of a CUESHEET metadata block.
// Layout: https://xiph.org/flac/format.html#metadata_block_cuesheet
func parseCueSheetBlock(data []byte) (*cueSheetBlock, error) {
	r := binary.NewReader(data, "CUESHEET")

	block := &cueSheetBlock{
		MediaCatalogNumber: r.String(128, "media catalog number"),
		LeadIn:             binary.Read[uint64](r, "lead-in"),
	}
	block.IsCD = binary.Read[uint8](r, "flags")&0x80 != 0
	r.Skip(258, "reserved")
	trackCount := int(binary.Read[uint8](r, "track count"))
	if err := r.Err(); err != nil {
		return nil, err
	}

	block.Tracks = make([]cueTrack, 0, trackCount)
	for i := 0; i < trackCount; i++ {
		track := parseCueTrack(r)
		if err := r.Err(); err != nil {
			return nil, fmt.Errorf("parse track %d: %w", i, err)
		}
		block.Tracks = append(block.Tracks, track)
	}
	return block, nil
}

// parseCueTrack reads one track and its index points. Errors are left on r.
func parseCueTrack(r *binary.Reader) cueTrack {
	track := cueTrack{
		Offset: binary.Read[uint64](r, "track offset"),
		Number: binary.Read[uint8](r, "track number"),
		ISRC:   r.String(12, "ISRC"),
	}
	flags := binary.Read[uint8](r, "track flags")
	track.IsAudio = flags&0x80 == 0
	track.PreEmphasis = flags&0x40 != 0
	r.Skip(13, "reserved")

	count := int(binary.Read[uint8](r, "index count"))
	track.Indices = make([]cueIndex, 0, count)
	for j := 0; j < count && r.Err() == nil; j++ {
		idx := cueIndex{
			Offset: binary.Read[uint64](r, "index offset"),
			Number: binary.Read[uint8](r, "index number"),
		}
		r.Skip(3, "reserved")
		track.Indices = append(track.Indices, idx)
	}
	return track
}

// toCueSheet converts a decoded block into a document with a single FILE
// entry named name. Sample offsets become timestamps at sampleRate.
func (c *cueSheetBlock) toCueSheet(name string, sampleRate uint32) (*types.CueSheet, error) {
	if sampleRate == 0 {
		return nil, fmt.Errorf("CUESHEET block without sample rate")
	}

	sheet := &types.CueSheet{}
	if v, err := lex.FixedDigits(c.MediaCatalogNumber, types.CatalogDigits); err == nil {
		sheet.Header.Catalog = &v
	}

	file := types.File{Name: name, Format: "WAVE"}
	for _, tr := range c.Tracks {
		if tr.Number == leadOutCD || tr.Number == leadOutOther || tr.Number == 0 || tr.Number > 99 {
			continue
		}

		track := types.Track{ID: tr.Number, Format: "AUDIO", ISRC: tr.ISRC}
		if !tr.IsAudio {
			track.Format = "MODE1/2352"
			track.Flags = append(track.Flags, "DATA")
		}
		if tr.PreEmphasis {
			track.Flags = append(track.Flags, "PRE")
		}
		for _, idx := range tr.Indices {
			if idx.Number > 99 {
				continue
			}
			samples := tr.Offset + idx.Offset
			track.Indices = append(track.Indices, types.Index{
				ID:        idx.Number,
				BeginTime: types.TimeStampFromFrames(samples * types.FramesPerSecond / uint64(sampleRate)),
			})
		}
		file.Tracks = append(file.Tracks, track)
	}

	sheet.Files = append(sheet.Files, file)
	return sheet, nil
}
