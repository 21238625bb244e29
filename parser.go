package cuesheet

import (
	"strings"

	"github.com/simonhull/cuesheet/internal/builder"
	"github.com/simonhull/cuesheet/internal/command"
)

// State is the section a Parser is logically inside.
type State = builder.State

// Re-export parser states.
const (
	StateGlobal  = builder.Global
	StateInFile  = builder.InFile
	StateInTrack = builder.InTrack
)

// byteOrderMark is stripped from the start of the first line.
const byteOrderMark = "\uFEFF"

// Parser builds a CueSheet one line at a time.
//
// It is meant for callers that read lines themselves and want to decide what
// to do with each failure:
//
//	p := cuesheet.NewParser()
//	for _, line := range lines {
//		if err := p.ParseLine(line); err != nil {
//			log.Printf("skipping: %v", err)
//		}
//	}
//	sheet := p.Sheet()
//
// A line that fails leaves the document as it was, so parsing can continue
// after any error. A Parser is not safe for concurrent use.
type Parser struct {
	b    *builder.Builder
	line int
}

// NewParser returns a Parser over an empty document.
func NewParser() *Parser {
	return &Parser{b: builder.New()}
}

// ParseLine tokenizes and applies one line. Errors are *Error values
// carrying the line's 1-based number.
func (p *Parser) ParseLine(line string) error {
	p.line++
	if err := p.apply(line); err != nil {
		return &Error{Line: p.line, Err: err}
	}
	return nil
}

func (p *Parser) apply(line string) error {
	if p.line == 1 {
		line = strings.TrimPrefix(line, byteOrderMark)
	}
	cmd, err := command.Parse(line)
	if err != nil {
		return err
	}
	return p.b.Apply(cmd)
}

// Line returns the number of lines consumed so far.
func (p *Parser) Line() int {
	return p.line
}

// Sheet returns the document built so far. It stays owned by the Parser
// until parsing is finished.
func (p *Parser) Sheet() *CueSheet {
	return p.b.Sheet()
}

// State reports whether the parser is before any FILE, inside a FILE with
// no track yet, or inside a TRACK.
func (p *Parser) State() State {
	return p.b.State()
}

// Parse parses a complete cue sheet, stopping at the first bad line.
//
// Lines may end in "\n" or "\r\n" and a leading byte order mark is ignored.
// The returned error is an *Error; use errors.As to reach the typed cause:
//
//	sheet, err := cuesheet.Parse(text)
//	var se *cuesheet.SyntaxError
//	if errors.As(err, &se) {
//		fmt.Println(se.Reason)
//	}
//
// WithLenientParsing turns Parse into ParseLenient.
func Parse(text string, opts ...Option) (*CueSheet, error) {
	return parseText(text, buildOptions(opts))
}

// ParseLenient parses a complete cue sheet, dropping every line that fails
// to tokenize or apply. It never fails.
func ParseLenient(text string, opts ...Option) *CueSheet {
	options := buildOptions(opts)
	options.lenient = true
	sheet, _ := parseText(text, options)
	return sheet
}

func parseText(text string, options *parseOptions) (*CueSheet, error) {
	p := NewParser()
	for line := range strings.Lines(text) {
		if err := p.ParseLine(line); err != nil {
			if !options.lenient {
				return nil, err
			}
			logSkipped(options, err)
		}
	}
	return p.Sheet(), nil
}

func logSkipped(options *parseOptions, err error) {
	if pe, ok := err.(*Error); ok {
		options.logger.Debug("skipping invalid line", "line", pe.Line, "err", pe.Err)
		return
	}
	options.logger.Debug("skipping invalid line", "err", err)
}
