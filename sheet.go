package cuesheet

import (
	"time"

	"github.com/simonhull/cuesheet/internal/types"
)

// CueSheet is an alias to types.CueSheet.
type CueSheet = types.CueSheet

// Header is an alias to types.Header.
type Header = types.Header

// File is an alias to types.File. It corresponds to one FILE directive.
type File = types.File

// Track is an alias to types.Track.
type Track = types.Track

// Index is an alias to types.Index.
type Index = types.Index

// TimeStamp is an alias to types.TimeStamp.
type TimeStamp = types.TimeStamp

// FramesPerSecond is the CD frame rate used by TimeStamp.
const FramesPerSecond = types.FramesPerSecond

// MaxTimeStamp is the largest representable TimeStamp.
var MaxTimeStamp = types.MaxTimeStamp

// ParseTimeStamp parses MM:SS:FF. Seconds must be below 60 and frames below 75.
func ParseTimeStamp(s string) (TimeStamp, error) {
	return types.ParseTimeStamp(s)
}

// NewTimeStamp builds a TimeStamp, rejecting out of range seconds or frames.
func NewTimeStamp(minutes, seconds, frames uint32) (TimeStamp, error) {
	return types.NewTimeStamp(minutes, seconds, frames)
}

// NormalizeTimeStamp builds a TimeStamp, carrying overflow into the next unit.
func NormalizeTimeStamp(minutes, seconds, frames uint32) TimeStamp {
	return types.NormalizeTimeStamp(minutes, seconds, frames)
}

// TimeStampFromDuration converts a duration, truncating sub-frame remainders.
func TimeStampFromDuration(d time.Duration) TimeStamp {
	return types.TimeStampFromDuration(d)
}

// TimeStampFromFrames converts a total frame count.
func TimeStampFromFrames(frames uint64) TimeStamp {
	return types.TimeStampFromFrames(frames)
}
