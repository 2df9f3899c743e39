// Package span provides a bounds-checked cursor over an immutable byte
// buffer. All multi-byte reads are little-endian, matching the PSX data.
package span

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxTransfer caps a single Bytes call. 131072 bytes is the largest
// single asset on the disc (a 256x1024 4bpp texture).
const MaxTransfer = 131072

// ErrOutOfBounds is returned when a read or seek would pass the end of
// the underlying buffer.
var ErrOutOfBounds = errors.New("span: out of bounds")

// Span is a read cursor over a borrowed byte slice. The zero value is an
// empty span. Spans do not copy or own their data.
type Span struct {
	data []byte
	off  int
}

// New returns a span over data with the cursor at offset 0.
func New(data []byte) *Span {
	return &Span{data: data}
}

// Len returns the total length of the underlying buffer.
func (s *Span) Len() int { return len(s.data) }

// Offset returns the current cursor position.
func (s *Span) Offset() int { return s.off }

// Remaining returns the number of unread bytes.
func (s *Span) Remaining() int { return len(s.data) - s.off }

// Seek sets the cursor to an absolute offset.
func (s *Span) Seek(off int) error {
	if off < 0 || off > len(s.data) {
		return fmt.Errorf("%w: seek to %d in %d-byte span", ErrOutOfBounds, off, len(s.data))
	}
	s.off = off
	return nil
}

func (s *Span) advance(n int) ([]byte, error) {
	if s.off+n > len(s.data) {
		return nil, fmt.Errorf("%w: read %d bytes at offset %d of %d", ErrOutOfBounds, n, s.off, len(s.data))
	}
	b := s.data[s.off : s.off+n]
	s.off += n
	return b, nil
}

// U8 reads one unsigned byte.
func (s *Span) U8() (uint8, error) {
	b, err := s.advance(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// I8 reads one signed byte.
func (s *Span) I8() (int8, error) {
	v, err := s.U8()
	return int8(v), err
}

// U16 reads a little-endian unsigned 16-bit value.
func (s *Span) U16() (uint16, error) {
	b, err := s.advance(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a little-endian signed 16-bit value.
func (s *Span) I16() (int16, error) {
	v, err := s.U16()
	return int16(v), err
}

// U32 reads a little-endian unsigned 32-bit value.
func (s *Span) U32() (uint32, error) {
	b, err := s.advance(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian signed 32-bit value.
func (s *Span) I32() (int32, error) {
	v, err := s.U32()
	return int32(v), err
}

// Bytes copies the next n raw bytes and advances the cursor. n is capped
// at MaxTransfer.
func (s *Span) Bytes(n int) ([]byte, error) {
	if n < 0 || n > MaxTransfer {
		return nil, fmt.Errorf("span: transfer of %d bytes exceeds limit %d", n, MaxTransfer)
	}
	b, err := s.advance(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
