// Package lex holds the small string primitives the command tokenizer is
// built from. Every helper returns substrings of its input; nothing is copied.
package lex

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNoMatch is returned when the input does not start with the expected
	// token.
	ErrNoMatch = errors.New("no match")
	// ErrUnbalancedQuote is returned for a '"' outside a fully quoted value.
	ErrUnbalancedQuote = errors.New("unbalanced quote")
	// ErrDigits is returned when a fixed width number has the wrong shape.
	ErrDigits = errors.New("wrong number of digits")
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// Keyword matches k case-insensitively at the start of input, followed by a
// separating space, and returns the remaining content.
func Keyword(input, k string) (string, error) {
	if len(input) <= len(k) || !strings.EqualFold(input[:len(k)], k) || !isSpace(input[len(k)]) {
		return "", ErrNoMatch
	}
	return input[len(k)+1:], nil
}

// Token splits content at the first space or tab. It returns the remaining
// content with leading blanks removed and the first token. ok is false when
// content holds a single token.
func Token(content string) (rest, first string, ok bool) {
	i := strings.IndexAny(content, " \t")
	if i < 0 {
		return "", content, false
	}
	return strings.TrimLeft(content[i+1:], " \t"), content[:i], true
}

// QuotedOrBare returns the inner text of a value wrapped in double quotes, or
// the value itself when it is not quoted. No escape processing is done.
func QuotedOrBare(content string) (string, error) {
	if len(content) >= 2 && content[0] == '"' && content[len(content)-1] == '"' {
		inner := content[1 : len(content)-1]
		if strings.IndexByte(inner, '"') >= 0 {
			return "", ErrUnbalancedQuote
		}
		return inner, nil
	}
	if strings.IndexByte(content, '"') >= 0 {
		return "", ErrUnbalancedQuote
	}
	return content, nil
}

// LeadingQuoted splits a value that starts with a quoted field, as in
// `"name with spaces.wav" WAVE`, returning the inner text and what follows the
// closing quote.
func LeadingQuoted(content string) (inner, rest string, err error) {
	if len(content) == 0 || content[0] != '"' {
		return "", "", ErrNoMatch
	}
	end := strings.IndexByte(content[1:], '"')
	if end < 0 {
		return "", "", ErrUnbalancedQuote
	}
	inner = content[1 : end+1]
	rest = content[end+2:]
	if rest != "" && !isSpace(rest[0]) {
		return "", "", ErrUnbalancedQuote
	}
	return inner, strings.TrimLeft(rest, " \t"), nil
}

// FixedDigits parses s as exactly n ASCII decimal digits.
func FixedDigits(s string, n int) (uint64, error) {
	if len(s) != n {
		return 0, ErrDigits
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrDigits
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, ErrDigits
	}
	return v, nil
}
