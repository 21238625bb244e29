package cuesheet_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/cuesheet"
)

func writeFile(t testing.TB, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// createTestFLAC builds a metadata-only FLAC stream. When cue is not empty it
// is stored in a CUESHEET Vorbis comment.
func createTestFLAC(t testing.TB, cue string) []byte {
	t.Helper()

	info := make([]byte, 34)
	info[10], info[11], info[12] = 0x0A, 0xC4, 0x42 // 44100 Hz, stereo

	cmts := flacvorbis.New()
	require.NoError(t, cmts.Add("TITLE", "Night Harbor"))
	if cue != "" {
		require.NoError(t, cmts.Add("CUESHEET", cue))
	}
	comment := cmts.Marshal()

	f := &flac.File{Meta: []*flac.MetaDataBlock{
		{Type: flac.StreamInfo, Data: info},
		&comment,
	}}
	return f.Marshal()
}

func TestOpen_Text(t *testing.T) {
	sheet, err := cuesheet.Open("testdata/album.cue")
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.TrackCount())
	assert.Equal(t, []string{"Night Harbor"}, sheet.Header.Title)
}

func TestOpen_EmbeddedFLAC(t *testing.T) {
	path := writeFile(t, "album.flac", createTestFLAC(t, readFixture(t)))

	sheet, err := cuesheet.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 4, sheet.TrackCount())
	assert.Equal(t, "4540774349197", sheet.Header.CatalogString())
}

func TestOpen_EmbeddedFLACParseError(t *testing.T) {
	path := writeFile(t, "album.flac", createTestFLAC(t, "TITLE \"A\"\nBOGUS LINE\n"))

	_, err := cuesheet.Open(path)
	var pe *cuesheet.Error
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, 2, pe.Line)

	sheet, err := cuesheet.Open(path, cuesheet.WithLenientParsing())
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, sheet.Header.Title)
}

func TestOpen_FLACWithoutCueSheet(t *testing.T) {
	path := writeFile(t, "song.flac", createTestFLAC(t, ""))

	_, err := cuesheet.Open(path)
	assert.ErrorIs(t, err, cuesheet.ErrNoCueSheet)
}

func TestOpen_UnsupportedSource(t *testing.T) {
	path := writeFile(t, "song.mp3", []byte("ID3\x04\x00\x00\x00\x00\x00\x00"))

	_, err := cuesheet.Open(path)
	var ue *cuesheet.UnsupportedSourceError
	require.True(t, errors.As(err, &ue), "got %v", err)
	assert.Equal(t, path, ue.Path)
}

func TestOpen_Missing(t *testing.T) {
	_, err := cuesheet.Open(filepath.Join(t.TempDir(), "missing.cue"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.cue", nil)

	sheet, err := cuesheet.Open(path)
	require.NoError(t, err)
	assert.Empty(t, sheet.Files)
}

func TestOpenContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sheet, err := cuesheet.OpenContext(ctx, "testdata/album.cue")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sheet)

	sheet, err = cuesheet.OpenContext(context.Background(), "testdata/album.cue")
	require.NoError(t, err)
	assert.NotNil(t, sheet)
}

func TestOpenMany(t *testing.T) {
	flacPath := writeFile(t, "album.flac", createTestFLAC(t, "FILE \"a.wav\" WAVE\nTRACK 01 AUDIO\nINDEX 01 00:00:00\n"))
	paths := []string{"testdata/album.cue", flacPath, "testdata/album.cue"}

	sheets, err := cuesheet.OpenMany(context.Background(), paths, cuesheet.WithConcurrency(2))
	require.NoError(t, err)
	require.Len(t, sheets, 3)

	// Results keep input order.
	assert.Equal(t, 4, sheets[0].TrackCount())
	assert.Equal(t, 1, sheets[1].TrackCount())
	assert.Equal(t, 4, sheets[2].TrackCount())
}

func TestOpenMany_Empty(t *testing.T) {
	sheets, err := cuesheet.OpenMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, sheets)
}

// TestOpenMany_Cancellation verifies that a cancelled context fails the batch.
func TestOpenMany_Cancellation(t *testing.T) {
	paths := make([]string, 5)
	for i := range paths {
		paths[i] = "testdata/album.cue"
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sheets, err := cuesheet.OpenMany(ctx, paths)
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if sheets != nil {
		t.Error("expected nil sheets on error")
	}
}

// TestOpenMany_PartialFailure verifies the result is all or nothing.
func TestOpenMany_PartialFailure(t *testing.T) {
	paths := []string{
		"testdata/album.cue",
		"/nonexistent/album.cue",
		"testdata/album.cue",
	}

	sheets, err := cuesheet.OpenMany(context.Background(), paths)
	if err == nil {
		t.Fatal("expected error from nonexistent file")
	}
	if sheets != nil {
		t.Error("expected nil sheets on partial failure")
	}
	assert.Contains(t, err.Error(), "/nonexistent/album.cue")
}
