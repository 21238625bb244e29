package cuesheet

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/cuesheet/internal/registry"
)

// Open reads the cue sheet at path.
//
// The path may name a cue sheet text file or a FLAC file with an embedded
// cue sheet. FLAC files are recognized by their magic bytes, not their
// extension. An embedded CUESHEET Vorbis comment is parsed like a text file;
// failing that, the binary CUESHEET block is converted.
//
// Options can be provided to customize parsing behavior:
//
//	sheet, err := cuesheet.Open("album.cue",
//	    cuesheet.WithLenientParsing(),
//	)
//	if err != nil {
//		return err
//	}
//	for t := range sheet.Tracks() {
//		fmt.Println(t.ID, t.Title)
//	}
func Open(path string, opts ...Option) (*CueSheet, error) {
	return open(path, buildOptions(opts))
}

func open(path string, options *parseOptions) (*CueSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	sheet, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return sheet, nil
}

// openReader parses from an io.ReaderAt (internal, for testing)
func openReader(r io.ReaderAt, size int64, path string, options *parseOptions) (*CueSheet, error) {
	source, err := DetectSource(r, size, path)
	if err != nil {
		return nil, err
	}
	options.logger.Debug("detected source", "path", path, "source", source, "size", size)

	if source == SourceText {
		return newDecoder(io.NewSectionReader(r, 0, size), options).Decode()
	}

	reader := registry.Get(source)
	if reader == nil {
		return nil, &UnsupportedSourceError{Path: path, Reason: fmt.Sprintf("no reader for %s files", source)}
	}
	embedded, err := reader.ReadEmbedded(r, size, path)
	if err != nil {
		return nil, err
	}
	if embedded.Sheet != nil {
		options.logger.Debug("converted binary cue sheet", "path", path, "source", source, "sample_rate", embedded.SampleRate)
		return embedded.Sheet, nil
	}
	return parseText(embedded.Text, options)
}

// OpenContext opens a cue sheet with context support for cancellation.
//
// This is a thin wrapper around Open() that checks context before starting.
func OpenContext(ctx context.Context, path string, opts ...Option) (*CueSheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple cue sheets concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines, or
// the limit set with WithConcurrency. Results are returned in the same order
// as the input paths.
//
// If any file fails, no sheets are returned and the first error is.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	sheets, err := cuesheet.OpenMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*CueSheet, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := buildOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]*CueSheet, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			sheet, err := open(path, options)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = sheet
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
