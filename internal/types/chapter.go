package types

import (
	"fmt"
	"time"
)

// Chapter is a playable span derived from a track of a File.
//
//	for _, ch := range sheet.Files[0].Chapters(fileDuration) {
//	    fmt.Printf("[%d] %s: %s - %s\n", ch.Index, ch.Title, ch.StartTime, ch.EndTime)
//	}
type Chapter struct {
	Index     int           `json:"index"`
	Title     string        `json:"title"`
	StartTime time.Duration `json:"start_time"`
	EndTime   time.Duration `json:"end_time"`
}

// Chapters converts the tracks of f to chapters.
//
// Each chapter runs from the track's start (INDEX 01) to the start of the
// next track in the same file. The last chapter ends at fileDuration, which
// may be 0 when the audio length is unknown. Tracks without any index are
// skipped.
func (f *File) Chapters(fileDuration time.Duration) []Chapter {
	type span struct {
		track *Track
		start time.Duration
	}

	spans := make([]span, 0, len(f.Tracks))
	for i := range f.Tracks {
		ts, ok := f.Tracks[i].StartTime()
		if !ok {
			continue
		}
		spans = append(spans, span{track: &f.Tracks[i], start: ts.Duration()})
	}
	if len(spans) == 0 {
		return nil
	}

	chapters := make([]Chapter, len(spans))
	for i, s := range spans {
		end := fileDuration
		if i < len(spans)-1 {
			end = spans[i+1].start
		}
		if end < s.start {
			// Out of order index points; leave the end open.
			end = 0
		}

		title := fmt.Sprintf("Track %02d", s.track.ID)
		if len(s.track.Title) > 0 {
			title = s.track.Title[0]
		}

		chapters[i] = Chapter{
			Index:     i + 1,
			Title:     title,
			StartTime: s.start,
			EndTime:   end,
		}
	}
	return chapters
}
