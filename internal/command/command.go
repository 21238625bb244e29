// Package command turns a single cue sheet line into a Command.
//
// Tokenizing is independent of any document state: the same line always
// produces the same Command. Whether the Command may be applied at the
// current position is decided by the builder.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/simonhull/cuesheet/internal/lex"
	"github.com/simonhull/cuesheet/internal/types"
)

// Kind identifies the directive a Command was parsed from.
type Kind int

const (
	// Empty marks a blank line. It is not an error and has no effect.
	Empty Kind = iota
	Rem
	Title
	Performer
	Songwriter
	Catalog
	CDTextFile
	File
	Track
	Index
	Pregap
	Postgap
	ISRC
	Flags
)

var keywords = map[string]Kind{
	"REM":        Rem,
	"TITLE":      Title,
	"PERFORMER":  Performer,
	"SONGWRITER": Songwriter,
	"CATALOG":    Catalog,
	"CDTEXTFILE": CDTextFile,
	"FILE":       File,
	"TRACK":      Track,
	"INDEX":      Index,
	"PREGAP":     Pregap,
	"POSTGAP":    Postgap,
	"ISRC":       ISRC,
	"FLAGS":      Flags,
}

// String returns the directive keyword.
func (k Kind) String() string {
	switch k {
	case Rem:
		return "REM"
	case Title:
		return "TITLE"
	case Performer:
		return "PERFORMER"
	case Songwriter:
		return "SONGWRITER"
	case Catalog:
		return "CATALOG"
	case CDTextFile:
		return "CDTEXTFILE"
	case File:
		return "FILE"
	case Track:
		return "TRACK"
	case Index:
		return "INDEX"
	case Pregap:
		return "PREGAP"
	case Postgap:
		return "POSTGAP"
	case ISRC:
		return "ISRC"
	case Flags:
		return "FLAGS"
	default:
		return "EMPTY"
	}
}

// Command is one tokenized directive.
//
// Which fields are meaningful depends on Kind:
//
//	Rem, Title, Performer, Songwriter, CDTextFile, ISRC  Text
//	Pregap, Postgap                                      Text (a timestamp, checked on apply)
//	Catalog                                              Catalog
//	File                                                 Text (name), Format
//	Track                                                ID, Format
//	Index                                                ID, Time
//	Flags                                                Text (space separated flags, see FlagList)
//
// String fields are substrings of the parsed line.
type Command struct {
	Kind    Kind
	Text    string
	Format  string
	ID      uint8
	Catalog uint64
	Time    types.TimeStamp
}

// FlagList splits a FLAGS payload at each single space. Runs of spaces
// produce empty flags.
func (c Command) FlagList() []string {
	return strings.Split(c.Text, " ")
}

// String formats the command back to directive text.
func (c Command) String() string {
	switch c.Kind {
	case Rem:
		return "REM " + c.Text
	case Title, Performer, Songwriter, CDTextFile:
		return c.Kind.String() + ` "` + c.Text + `"`
	case Catalog:
		return fmt.Sprintf("CATALOG %0*d", types.CatalogDigits, c.Catalog)
	case File:
		return `FILE "` + c.Text + `" ` + c.Format
	case Track:
		return fmt.Sprintf("TRACK %02d %s", c.ID, c.Format)
	case Index:
		return fmt.Sprintf("INDEX %02d %s", c.ID, c.Time)
	case Pregap, Postgap, ISRC:
		if c.Text == "" {
			return c.Kind.String() + ` ""`
		}
		return c.Kind.String() + " " + c.Text
	case Flags:
		return "FLAGS " + strings.Join(c.FlagList(), " ")
	default:
		return ""
	}
}

// Parse tokenizes one line. Surrounding whitespace is ignored and a blank
// line yields an Empty command.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: Empty}, nil
	}

	// Comments are by far the most common free-text line; skip the keyword
	// lookup for them.
	if rest, err := lex.Keyword(line, "REM"); err == nil {
		return Command{Kind: Rem, Text: strings.TrimSpace(rest)}, nil
	}

	content, word, hasArgs := lex.Token(line)
	kind, ok := keywords[strings.ToUpper(word)]
	if !ok {
		return Command{}, &types.UnexpectedTokenError{Keyword: word}
	}
	if !hasArgs || content == "" {
		return Command{}, &types.InvalidArgumentError{
			Err:     types.ErrMissingArgument,
			Keyword: kind.String(),
		}
	}

	switch kind {
	case Rem:
		return Command{Kind: Rem, Text: content}, nil
	case Title, Performer, Songwriter, CDTextFile, Pregap, Postgap, ISRC:
		// `""` yields an empty value; a missing value was rejected above.
		text, err := lex.QuotedOrBare(content)
		if err != nil {
			return Command{}, syntaxError(kind, content, err)
		}
		return Command{Kind: kind, Text: text}, nil
	case Catalog:
		v, err := lex.FixedDigits(content, types.CatalogDigits)
		if err != nil {
			return Command{}, &types.InvalidArgumentError{
				Err:     types.ErrInvalidID,
				Keyword: kind.String(),
				Value:   content,
				Reason:  fmt.Sprintf("catalog must be %d digits", types.CatalogDigits),
			}
		}
		return Command{Kind: Catalog, Catalog: v}, nil
	case File:
		return parseFile(content)
	case Track:
		return parseTrack(content)
	case Index:
		return parseIndex(content)
	case Flags:
		return Command{Kind: Flags, Text: content}, nil
	}
	return Command{}, &types.UnexpectedTokenError{Keyword: word}
}

func syntaxError(kind Kind, content string, err error) error {
	return &types.SyntaxError{
		Command: kind.String() + " " + content,
		Reason:  err.Error(),
	}
}

// parseFile handles `"name" FORMAT` and `name FORMAT`.
func parseFile(content string) (Command, error) {
	var name, format string
	if strings.HasPrefix(content, `"`) {
		inner, rest, err := lex.LeadingQuoted(content)
		if err != nil {
			return Command{}, syntaxError(File, content, err)
		}
		name, format = inner, rest
	} else {
		i := strings.LastIndexAny(content, " \t")
		if i < 0 {
			return Command{}, &types.InvalidArgumentError{
				Err:     types.ErrMissingArgument,
				Keyword: File.String(),
				Reason:  "expected file name and format",
			}
		}
		name, format = strings.TrimRight(content[:i], " \t"), content[i+1:]
		if strings.IndexByte(name, '"') >= 0 {
			return Command{}, syntaxError(File, content, lex.ErrUnbalancedQuote)
		}
	}

	if name == "" || format == "" {
		return Command{}, &types.InvalidArgumentError{
			Err:     types.ErrMissingArgument,
			Keyword: File.String(),
			Reason:  "expected file name and format",
		}
	}
	if strings.ContainsAny(format, " \t\"") {
		return Command{}, &types.SyntaxError{
			Command: "FILE " + content,
			Reason:  "format must be a single token",
		}
	}
	return Command{Kind: File, Text: name, Format: format}, nil
}

// fixedID parses the two digit id shared by TRACK and INDEX.
func fixedID(kind Kind, s string) (uint8, error) {
	v, err := lex.FixedDigits(s, 2)
	if err != nil {
		return 0, &types.InvalidArgumentError{
			Err:     types.ErrInvalidID,
			Keyword: kind.String(),
			Value:   s,
			Reason:  "id must be two digits",
		}
	}
	return uint8(v), nil
}

func parseTrack(content string) (Command, error) {
	format, id, ok := lex.Token(content)
	if !ok || format == "" {
		return Command{}, &types.InvalidArgumentError{
			Err:     types.ErrMissingArgument,
			Keyword: Track.String(),
			Reason:  "expected track number and format",
		}
	}
	n, err := fixedID(Track, id)
	if err != nil {
		return Command{}, err
	}
	if strings.ContainsAny(format, " \t") {
		return Command{}, &types.SyntaxError{
			Command: "TRACK " + content,
			Reason:  "format must be a single token",
		}
	}
	return Command{Kind: Track, ID: n, Format: format}, nil
}

func parseIndex(content string) (Command, error) {
	stamp, id, ok := lex.Token(content)
	if !ok || stamp == "" {
		return Command{}, &types.InvalidArgumentError{
			Err:     types.ErrMissingArgument,
			Keyword: Index.String(),
			Reason:  "expected index number and timestamp",
		}
	}
	n, err := fixedID(Index, id)
	if err != nil {
		return Command{}, err
	}
	ts, err := types.ParseTimeStamp(stamp)
	if err != nil {
		var ie *types.InvalidArgumentError
		if errors.As(err, &ie) {
			ie.Keyword = Index.String()
		}
		return Command{}, err
	}
	return Command{Kind: Index, ID: n, Time: ts}, nil
}
