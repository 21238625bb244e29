package lex

import (
	"errors"
	"testing"
)

func TestKeyword(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		keyword string
		want    string
		wantErr bool
	}{
		{"exact case", "REM hello", "REM", "hello", false},
		{"lower case", "rem hello", "REM", "hello", false},
		{"tab separator", "REM\thello", "REM", "hello", false},
		{"keeps extra spaces", "REM  hello", "REM", " hello", false},
		{"prefix of longer word", "REMARK hello", "REM", "", true},
		{"keyword alone", "REM", "REM", "", true},
		{"other keyword", "TITLE x", "REM", "", true},
		{"empty input", "", "REM", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Keyword(tt.input, tt.keyword)
			if tt.wantErr {
				if !errors.Is(err, ErrNoMatch) {
					t.Fatalf("expected ErrNoMatch, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		content   string
		wantFirst string
		wantRest  string
		wantOK    bool
	}{
		{"01 AUDIO", "01", "AUDIO", true},
		{"01   AUDIO", "01", "AUDIO", true},
		{"01\t00:00:00", "01", "00:00:00", true},
		{"single", "single", "", false},
		{"a b c", "a", "b c", true},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			rest, first, ok := Token(tt.content)
			if first != tt.wantFirst || rest != tt.wantRest || ok != tt.wantOK {
				t.Errorf("Token(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.content, rest, first, ok, tt.wantRest, tt.wantFirst, tt.wantOK)
			}
		})
	}
}

func TestQuotedOrBare(t *testing.T) {
	tests := []struct {
		content string
		want    string
		wantErr bool
	}{
		{`"Hello World"`, "Hello World", false},
		{`Hello World`, "Hello World", false},
		{`""`, "", false},
		{`"C:\Music\a.wav"`, `C:\Music\a.wav`, false},
		{`"unterminated`, "", true},
		{`say "hi"`, "", true},
		{`"a" "b"`, "", true},
		{`"`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got, err := QuotedOrBare(tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrUnbalancedQuote) {
					t.Fatalf("expected ErrUnbalancedQuote, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLeadingQuoted(t *testing.T) {
	tests := []struct {
		content   string
		wantInner string
		wantRest  string
		wantErr   error
	}{
		{`"track 1.wav" WAVE`, "track 1.wav", "WAVE", nil},
		{`"a.wav"   MP3`, "a.wav", "MP3", nil},
		{`"a.wav"`, "a.wav", "", nil},
		{`"a.wav"WAVE`, "", "", ErrUnbalancedQuote},
		{`"a.wav WAVE`, "", "", ErrUnbalancedQuote},
		{`a.wav WAVE`, "", "", ErrNoMatch},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			inner, rest, err := LeadingQuoted(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if inner != tt.wantInner || rest != tt.wantRest {
				t.Errorf("got (%q, %q), want (%q, %q)", inner, rest, tt.wantInner, tt.wantRest)
			}
		})
	}
}

func TestFixedDigits(t *testing.T) {
	tests := []struct {
		s       string
		n       int
		want    uint64
		wantErr bool
	}{
		{"01", 2, 1, false},
		{"99", 2, 99, false},
		{"1", 2, 0, true},
		{"001", 2, 0, true},
		{"1a", 2, 0, true},
		{"+1", 2, 0, true},
		{"1234567890123", 13, 1234567890123, false},
		{"123", 13, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := FixedDigits(tt.s, tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrDigits) {
					t.Fatalf("expected ErrDigits, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
