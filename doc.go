// Package cuesheet parses CD cue sheets.
//
// A cue sheet is a line oriented text file describing the layout of a disc
// image: which audio files make up the disc, where each track starts within
// them, and disc and track metadata such as titles and performers.
//
// # Quick Start
//
// Parsing a cue sheet from a string:
//
//	sheet, err := cuesheet.Parse(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(sheet.Header.Title)
//	for t := range sheet.Tracks() {
//		start, _ := t.StartTime()
//		fmt.Printf("%02d %s %v\n", t.ID, start, t.Title)
//	}
//
// Reading one from disk, including cue sheets embedded in FLAC files:
//
//	sheet, err := cuesheet.Open("album.flac")
//
// # Supported Directives
//
//	REM, TITLE, PERFORMER, SONGWRITER, CATALOG, CDTEXTFILE,
//	FILE, TRACK, INDEX, PREGAP, POSTGAP, ISRC, FLAGS
//
// Keywords are case-insensitive; arguments are kept as written. TITLE,
// PERFORMER and SONGWRITER describe the disc until the first TRACK of the
// current FILE and the current track after it.
//
// # Timestamps
//
// Positions are MM:SS:FF with 75 frames per second. Parsed timestamps are
// strict: seconds must be below 60 and frames below 75. NormalizeTimeStamp
// carries overflow instead, for values computed by a program.
//
// # Error Handling
//
// Parse stops at the first line that fails and returns an *Error holding
// the line number. The cause is one of:
//
//   - *SyntaxError: a malformed line or a directive in the wrong place
//   - *UnexpectedTokenError: an unknown keyword
//   - *InvalidArgumentError: a bad argument, matching ErrInvalidTimestamp,
//     ErrMissingArgument or ErrInvalidID with errors.Is
//   - *IOError: the underlying reader failed
//
// ParseLenient and WithLenientParsing skip bad lines instead. Parser and
// Decoder process input a line at a time for callers that want to handle
// each failure themselves.
//
// # Concurrency
//
// Parsing is synchronous. OpenMany parses several files in parallel:
//
//	sheets, err := cuesheet.OpenMany(ctx, paths, cuesheet.WithConcurrency(4))
//
// # Logging
//
// Diagnostics go to a log/slog logger set with WithLogger. By default
// nothing is logged.
package cuesheet
