// Package types provides the cue sheet document model.
//
// This package defines CueSheet, Header, File, Track, Index and TimeStamp,
// along with the error types shared by the tokenizer and the builder.
package types

import (
	"fmt"
	"iter"
)

// CatalogDigits is the length of a media catalog number (UPC/EAN).
const CatalogDigits = 13

// CueSheet is a parsed cue sheet.
//
// A CueSheet is built append-only, one directive at a time, and is not
// modified once parsing completes.
type CueSheet struct {
	Header   Header
	Files    []File
	Comments []string
}

// Header holds disc level metadata.
type Header struct {
	Title      []string
	Performer  []string
	Songwriter []string
	// Catalog is nil until a CATALOG directive is applied.
	Catalog    *uint64
	CDTextFile string
}

// File is one physical audio or data file and the tracks it contains.
type File struct {
	Name   string
	Format string // WAVE, BINARY, MP3, ...
	Tracks []Track
}

// Track is one logical track inside a File.
type Track struct {
	ID         uint8 // 1-99
	Format     string
	Title      []string
	Performer  []string
	Songwriter []string
	Pregap     *TimeStamp
	Postgap    *TimeStamp
	ISRC       string
	Flags      []string
	Indices    []Index
}

// Index is an index point inside a Track. Index 1 marks the track start,
// index 0 the start of the pregap.
type Index struct {
	ID        uint8 // 0-99
	BeginTime TimeStamp
}

// CatalogString returns the catalog zero padded to 13 digits, or "" when unset.
func (h *Header) CatalogString() string {
	if h.Catalog == nil {
		return ""
	}
	return fmt.Sprintf("%0*d", CatalogDigits, *h.Catalog)
}

// FirstFile returns the first FILE entry, usually the only one.
func (c *CueSheet) FirstFile() *File {
	if len(c.Files) == 0 {
		return nil
	}
	return &c.Files[0]
}

// LastFile returns the last FILE entry.
func (c *CueSheet) LastFile() *File {
	if len(c.Files) == 0 {
		return nil
	}
	return &c.Files[len(c.Files)-1]
}

// LastTrack returns the last TRACK of the last FILE.
func (c *CueSheet) LastTrack() *Track {
	f := c.LastFile()
	if f == nil || len(f.Tracks) == 0 {
		return nil
	}
	return &f.Tracks[len(f.Tracks)-1]
}

// Tracks iterates over the tracks of every file in order.
func (c *CueSheet) Tracks() iter.Seq[*Track] {
	return func(yield func(*Track) bool) {
		for i := range c.Files {
			for j := range c.Files[i].Tracks {
				if !yield(&c.Files[i].Tracks[j]) {
					return
				}
			}
		}
	}
}

// TrackCount returns the number of tracks across all files.
func (c *CueSheet) TrackCount() int {
	n := 0
	for i := range c.Files {
		n += len(c.Files[i].Tracks)
	}
	return n
}

// Index returns the index point with the given id.
func (t *Track) Index(id uint8) (Index, bool) {
	for _, idx := range t.Indices {
		if idx.ID == id {
			return idx, true
		}
	}
	return Index{}, false
}

// StartTime returns the time of INDEX 01. Tracks without INDEX 01 fall back
// to their first index, and tracks without indices report false.
func (t *Track) StartTime() (TimeStamp, bool) {
	if idx, ok := t.Index(1); ok {
		return idx.BeginTime, true
	}
	if len(t.Indices) > 0 {
		return t.Indices[0].BeginTime, true
	}
	return TimeStamp{}, false
}
