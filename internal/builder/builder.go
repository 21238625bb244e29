// Package builder folds tokenized commands into a cue sheet document.
//
// The Builder keeps an explicit cursor on the current file and track.
// TITLE, PERFORMER and SONGWRITER go to the current track when there is one
// and to the disc header otherwise; every other track level directive needs
// a current track.
package builder

import (
	"strings"

	"github.com/simonhull/cuesheet/internal/command"
	"github.com/simonhull/cuesheet/internal/types"
)

// State is the section the builder is logically inside.
type State int

const (
	// Global means no FILE has been seen yet.
	Global State = iota
	// InFile means a FILE has been seen but it has no TRACK yet.
	InFile
	// InTrack means the current FILE has at least one TRACK.
	InTrack
)

func (s State) String() string {
	switch s {
	case InFile:
		return "file"
	case InTrack:
		return "track"
	default:
		return "global"
	}
}

// Builder applies commands to a CueSheet. The zero value is not usable; use
// New.
type Builder struct {
	sheet *types.CueSheet
	file  int // index into sheet.Files, -1 before the first FILE
	track int // index into the current file's Tracks, -1 before its first TRACK

	// hasISRC records an ISRC on the current track, which may be empty.
	hasISRC bool
}

// New returns a Builder over an empty CueSheet.
func New() *Builder {
	return &Builder{sheet: &types.CueSheet{}, file: -1, track: -1}
}

// Sheet returns the document built so far.
func (b *Builder) Sheet() *types.CueSheet {
	return b.sheet
}

// State reports the current section.
func (b *Builder) State() State {
	switch {
	case b.track >= 0:
		return InTrack
	case b.file >= 0:
		return InFile
	default:
		return Global
	}
}

func (b *Builder) currentFile() *types.File {
	if b.file < 0 {
		return nil
	}
	return &b.sheet.Files[b.file]
}

func (b *Builder) currentTrack() *types.Track {
	if b.track < 0 {
		return nil
	}
	return &b.sheet.Files[b.file].Tracks[b.track]
}

func fail(cmd command.Command, reason string) error {
	return &types.SyntaxError{Command: cmd.String(), Reason: reason}
}

// Apply applies one command. A failed command leaves the document unchanged.
//
// Command strings point into the tokenized line; they are cloned here so the
// document does not keep input buffers alive.
func (b *Builder) Apply(cmd command.Command) error {
	h := &b.sheet.Header
	tk := b.currentTrack()
	cmd.Text = strings.Clone(cmd.Text)
	text := cmd.Text

	switch cmd.Kind {
	case command.Empty:
		return nil

	case command.Rem:
		b.sheet.Comments = append(b.sheet.Comments, text)

	case command.Title:
		if tk != nil {
			tk.Title = append(tk.Title, text)
		} else {
			h.Title = append(h.Title, text)
		}

	case command.Performer:
		if tk != nil {
			tk.Performer = append(tk.Performer, text)
		} else {
			h.Performer = append(h.Performer, text)
		}

	case command.Songwriter:
		if tk != nil {
			tk.Songwriter = append(tk.Songwriter, text)
		} else {
			h.Songwriter = append(h.Songwriter, text)
		}

	case command.Catalog:
		if h.Catalog != nil {
			return fail(cmd, "multiple CATALOG commands are not allowed")
		}
		v := cmd.Catalog
		h.Catalog = &v

	case command.CDTextFile:
		h.CDTextFile = text

	case command.File:
		b.sheet.Files = append(b.sheet.Files, types.File{Name: text, Format: strings.Clone(cmd.Format)})
		b.file = len(b.sheet.Files) - 1
		b.track = -1
		b.hasISRC = false

	case command.Track:
		f := b.currentFile()
		if f == nil {
			return fail(cmd, "no current file")
		}
		if cmd.ID < 1 || cmd.ID > 99 {
			return &types.InvalidArgumentError{
				Err:     types.ErrInvalidID,
				Keyword: "TRACK",
				Value:   cmd.String(),
				Reason:  "track number must be between 1 and 99",
			}
		}
		f.Tracks = append(f.Tracks, types.Track{ID: cmd.ID, Format: strings.Clone(cmd.Format)})
		b.track = len(f.Tracks) - 1
		b.hasISRC = false

	case command.Index:
		if tk == nil {
			return fail(cmd, "no current track")
		}
		if cmd.ID > 99 {
			return &types.InvalidArgumentError{
				Err:     types.ErrInvalidID,
				Keyword: "INDEX",
				Value:   cmd.String(),
				Reason:  "index number must be between 0 and 99",
			}
		}
		if tk.Postgap != nil {
			return fail(cmd, "INDEX must come before POSTGAP")
		}
		tk.Indices = append(tk.Indices, types.Index{ID: cmd.ID, BeginTime: cmd.Time})

	case command.Pregap:
		switch {
		case tk == nil:
			return fail(cmd, "no current track")
		case tk.Pregap != nil:
			return fail(cmd, "multiple PREGAP commands are not allowed in one track")
		case len(tk.Indices) > 0:
			return fail(cmd, "PREGAP must come before INDEX")
		}
		ts, err := gap(cmd)
		if err != nil {
			return err
		}
		tk.Pregap = &ts

	case command.Postgap:
		switch {
		case tk == nil:
			return fail(cmd, "no current track")
		case tk.Postgap != nil:
			return fail(cmd, "multiple POSTGAP commands are not allowed in one track")
		}
		ts, err := gap(cmd)
		if err != nil {
			return err
		}
		tk.Postgap = &ts

	case command.ISRC:
		switch {
		case tk == nil:
			return fail(cmd, "no current track")
		case b.hasISRC:
			return fail(cmd, "multiple ISRC commands are not allowed in one track")
		}
		tk.ISRC = text
		b.hasISRC = true

	case command.Flags:
		switch {
		case tk == nil:
			return fail(cmd, "no current track")
		case tk.Flags != nil:
			return fail(cmd, "multiple FLAGS commands are not allowed in one track")
		}
		tk.Flags = cmd.FlagList()
	}

	return nil
}

func gap(cmd command.Command) (types.TimeStamp, error) {
	ts, err := types.ParseTimeStamp(cmd.Text)
	if err != nil {
		if ie, ok := err.(*types.InvalidArgumentError); ok {
			ie.Keyword = cmd.Kind.String()
		}
		return types.TimeStamp{}, err
	}
	return ts, nil
}
