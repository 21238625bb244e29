package cuesheet

import (
	"bufio"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decoder reads a cue sheet from a stream.
//
// Input with a UTF-8 byte order mark has it removed. Input with a UTF-16 byte
// order mark is decoded to UTF-8. Anything else is passed through unchanged.
type Decoder struct {
	p       *Parser
	scanner *bufio.Scanner
	options *parseOptions
	err     error // sticky read failure
}

// NewDecoder returns a Decoder reading lines from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return newDecoder(r, buildOptions(opts))
}

func newDecoder(r io.Reader, options *parseOptions) *Decoder {
	scanner := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	scanner.Buffer(make([]byte, 0, min(4096, options.maxLineSize)), options.maxLineSize)

	return &Decoder{
		p:       NewParser(),
		scanner: scanner,
		options: options,
	}
}

// Next consumes one line. It returns io.EOF once the input is exhausted.
//
// Without WithLenientParsing a bad line is returned as an *Error and the
// Decoder stays usable: the next call continues with the following line.
// With it, bad lines are logged and skipped, and only read failures are
// returned.
func (d *Decoder) Next() error {
	if d.err != nil {
		return d.err
	}
	for {
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				d.err = &Error{Line: d.p.Line() + 1, Err: &IOError{Err: err}}
				return d.err
			}
			d.err = io.EOF
			return d.err
		}

		err := d.p.ParseLine(d.scanner.Text())
		if err == nil {
			return nil
		}
		if !d.options.lenient {
			return err
		}
		logSkipped(d.options, err)
	}
}

// Decode reads the remaining input and returns the document.
//
// Without WithLenientParsing the first bad line ends decoding and no
// document is returned; Sheet still gives access to what was parsed before
// it.
func (d *Decoder) Decode() (*CueSheet, error) {
	for {
		err := d.Next()
		if err == io.EOF {
			return d.p.Sheet(), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Line returns the number of lines consumed so far.
func (d *Decoder) Line() int {
	return d.p.Line()
}

// Sheet returns the document built so far.
func (d *Decoder) Sheet() *CueSheet {
	return d.p.Sheet()
}

// Read parses a cue sheet from r. It is shorthand for NewDecoder(r).Decode().
func Read(r io.Reader, opts ...Option) (*CueSheet, error) {
	return NewDecoder(r, opts...).Decode()
}
