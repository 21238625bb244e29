package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FramesPerSecond is the CD frame rate.
const FramesPerSecond = 75

// maxMinutes keeps minutes*60 within a uint32.
const maxMinutes = math.MaxUint32/60 - 1

// TimeStamp is a frame accurate position in MM:SS:FF form.
//
// Seconds are stored as a total so minutes are unbounded; frames are always
// below FramesPerSecond.
type TimeStamp struct {
	seconds uint32
	frames  uint8
}

// NewTimeStamp builds a TimeStamp, rejecting seconds >= 60 or frames >= 75.
func NewTimeStamp(minutes, seconds, frames uint32) (TimeStamp, error) {
	if seconds >= 60 {
		return TimeStamp{}, &InvalidArgumentError{
			Err:    ErrInvalidTimestamp,
			Reason: fmt.Sprintf("seconds must be below 60, got %d", seconds),
		}
	}
	if frames >= FramesPerSecond {
		return TimeStamp{}, &InvalidArgumentError{
			Err:    ErrInvalidTimestamp,
			Reason: fmt.Sprintf("frames must be below %d, got %d", FramesPerSecond, frames),
		}
	}
	if minutes > maxMinutes {
		return TimeStamp{}, &InvalidArgumentError{
			Err:    ErrInvalidTimestamp,
			Reason: fmt.Sprintf("minutes out of range: %d", minutes),
		}
	}
	return TimeStamp{seconds: minutes*60 + seconds, frames: uint8(frames)}, nil
}

// MaxTimeStamp is the largest representable position. Conversions that
// would exceed it are clamped to it.
var MaxTimeStamp = TimeStamp{seconds: math.MaxUint32, frames: FramesPerSecond - 1}

// NormalizeTimeStamp builds a TimeStamp, carrying frame overflow into seconds
// and second overflow into minutes. It is meant for programmatic construction;
// parsed input always goes through the strict path. Results beyond
// MaxTimeStamp are clamped.
func NormalizeTimeStamp(minutes, seconds, frames uint32) TimeStamp {
	total := (uint64(minutes)*60+uint64(seconds))*FramesPerSecond + uint64(frames)
	return TimeStampFromFrames(total)
}

// TimeStampFromFrames converts a total frame count, clamping at MaxTimeStamp.
func TimeStampFromFrames(total uint64) TimeStamp {
	if total/FramesPerSecond > math.MaxUint32 {
		return MaxTimeStamp
	}
	return TimeStamp{
		seconds: uint32(total / FramesPerSecond),
		frames:  uint8(total % FramesPerSecond),
	}
}

// TimeStampFromDuration converts a wall-clock duration. Sub-frame remainders
// are truncated, negative durations map to zero and durations beyond
// MaxTimeStamp are clamped.
func TimeStampFromDuration(d time.Duration) TimeStamp {
	if d <= 0 {
		return TimeStamp{}
	}
	secs := d / time.Second
	if secs > math.MaxUint32 {
		return MaxTimeStamp
	}
	rem := d % time.Second
	return TimeStamp{
		seconds: uint32(secs),
		frames:  uint8(rem * FramesPerSecond / time.Second),
	}
}

// ParseTimeStamp parses "<minutes>:<SS>:<FF>". Seconds and frames must be
// exactly two digits.
func ParseTimeStamp(s string) (TimeStamp, error) {
	invalid := func(reason string) error {
		return &InvalidArgumentError{Err: ErrInvalidTimestamp, Value: s, Reason: reason}
	}

	m, rest, ok := strings.Cut(s, ":")
	if !ok {
		return TimeStamp{}, invalid("expected MM:SS:FF")
	}
	sec, fr, ok := strings.Cut(rest, ":")
	if !ok {
		return TimeStamp{}, invalid("expected MM:SS:FF")
	}
	if m == "" || !allDigits(m) {
		return TimeStamp{}, invalid("minutes must be decimal digits")
	}
	if len(sec) != 2 || !allDigits(sec) {
		return TimeStamp{}, invalid("seconds must be two digits")
	}
	if len(fr) != 2 || !allDigits(fr) {
		return TimeStamp{}, invalid("frames must be two digits")
	}

	minutes, err := strconv.ParseUint(m, 10, 32)
	if err != nil {
		return TimeStamp{}, invalid("minutes out of range")
	}
	seconds, _ := strconv.ParseUint(sec, 10, 32)
	frames, _ := strconv.ParseUint(fr, 10, 32)

	ts, err := NewTimeStamp(uint32(minutes), uint32(seconds), uint32(frames))
	if err != nil {
		ie := err.(*InvalidArgumentError)
		ie.Value = s
		return TimeStamp{}, ie
	}
	return ts, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Minutes returns the minute component.
func (t TimeStamp) Minutes() uint32 { return t.seconds / 60 }

// Seconds returns the second component (0-59).
func (t TimeStamp) Seconds() uint32 { return t.seconds % 60 }

// Frames returns the frame component (0-74).
func (t TimeStamp) Frames() uint32 { return uint32(t.frames) }

// TotalSeconds returns whole seconds, ignoring frames.
func (t TimeStamp) TotalSeconds() uint32 { return t.seconds }

// TotalFrames returns the position as a frame count.
func (t TimeStamp) TotalFrames() uint64 {
	return uint64(t.seconds)*FramesPerSecond + uint64(t.frames)
}

// Duration converts to wall-clock time.
func (t TimeStamp) Duration() time.Duration {
	// Round frames up so TimeStampFromDuration maps the result back to the
	// same frame.
	return time.Duration(t.seconds)*time.Second +
		(time.Duration(t.frames)*time.Second+FramesPerSecond-1)/FramesPerSecond
}

// IsZero reports whether the timestamp is 00:00:00.
func (t TimeStamp) IsZero() bool {
	return t.seconds == 0 && t.frames == 0
}

// String formats as MM:SS:FF.
func (t TimeStamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Minutes(), t.Seconds(), t.Frames())
}
