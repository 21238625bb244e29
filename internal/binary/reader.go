// Package binary reads big-endian fields from metadata blocks with bounds
// checking.
package binary

import (
	"encoding/binary"
	"fmt"
)

// Reader walks a byte slice field by field.
//
// Errors are deferred: after the first failed read every later read returns
// the zero value, and Err reports the original failure. This keeps decoders
// free of an error check per field:
//
//	r := binary.NewReader(data, "CUESHEET")
//	offset := binary.Read[uint64](r, "track offset")
//	number := binary.Read[uint8](r, "track number")
//	if err := r.Err(); err != nil {
//		return err
//	}
type Reader struct {
	data   []byte
	offset int
	block  string
	err    error
}

// NewReader returns a Reader over data. block names the structure being
// decoded in error messages.
func NewReader(data []byte, block string) *Reader {
	return &Reader{data: data, block: block}
}

// take returns the next n bytes and advances, or records an error.
func (r *Reader) take(n int, what string) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || r.offset+n > len(r.data) {
		r.err = fmt.Errorf("%s: read of %d bytes at offset %d would exceed block size %d while reading %s",
			r.block, n, r.offset, len(r.data), what)
		return nil
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b
}

// Read reads a value of type T and advances past it.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		if b := r.take(1, what); b != nil {
			return T(b[0])
		}
	case uint16:
		if b := r.take(2, what); b != nil {
			return T(binary.BigEndian.Uint16(b))
		}
	case uint32:
		if b := r.take(4, what); b != nil {
			return T(binary.BigEndian.Uint32(b))
		}
	case uint64:
		if b := r.take(8, what); b != nil {
			return T(binary.BigEndian.Uint64(b))
		}
	}
	return zero
}

// String reads a fixed width field, dropping trailing NUL padding.
func (r *Reader) String(n int, what string) string {
	b := r.take(n, what)
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}

// Skip advances past n reserved bytes.
func (r *Reader) Skip(n int, what string) {
	r.take(n, what)
}

// Err returns the first error encountered, if any.
func (r *Reader) Err() error {
	return r.err
}
