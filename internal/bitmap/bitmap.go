// Package bitmap expands the packed pixel formats found on the disc into
// flat RGBA8 buffers and applies CLUT lookups.
package bitmap

import (
	"errors"
	"fmt"

	"fft-map-extractor/internal/pixel"
	"fft-map-extractor/internal/span"
)

// ErrPaletteIndex is returned when a pixel index or palette bank falls
// outside the palette buffer.
var ErrPaletteIndex = errors.New("bitmap: palette index out of range")

// Palette geometry for palettized images: 16 colors per row, 4 bytes per
// color.
const (
	PaletteColumns = 16
	PaletteRowSize = PaletteColumns * 4
)

// Image is a fully materialized RGBA8 pixel buffer, 4 bytes per pixel.
type Image struct {
	Width  int
	Height int
	Data   []byte
	Valid  bool
}

// Read4BPP expands width*height 4-bit pixel indices into an RGBA8 buffer.
// Each source byte holds two pixels: the low nibble is emitted first, the
// high nibble second. The index is replicated across all four output
// bytes so the buffer can be palettized in place later.
func Read4BPP(s *span.Span, width, height int) (Image, error) {
	dims := width * height
	onDisk := dims / 2

	data := make([]byte, 0, dims*4)
	for i := 0; i < onDisk; i++ {
		raw, err := s.U8()
		if err != nil {
			return Image{}, fmt.Errorf("bitmap: 4bpp pixel %d: %w", i*2, err)
		}

		right := raw & 0x0F
		left := raw >> 4
		data = append(data, right, right, right, right)
		data = append(data, left, left, left, left)
	}

	return Image{Width: width, Height: height, Data: data, Valid: true}, nil
}

// Read16BPP expands width*height packed 16-bit colors into an RGBA8
// buffer using the canonical packed-color conversion.
func Read16BPP(s *span.Span, width, height int) (Image, error) {
	dims := width * height

	data := make([]byte, 0, dims*4)
	for i := 0; i < dims; i++ {
		v, err := s.U16()
		if err != nil {
			return Image{}, fmt.Errorf("bitmap: 16bpp pixel %d: %w", i, err)
		}
		c := pixel.FromPacked(v)
		data = append(data, c.R, c.G, c.B, c.A)
	}

	return Image{Width: width, Height: height, Data: data, Valid: true}, nil
}

// Palettize replaces each stored pixel index in a 4bpp-expanded image
// with the palette entry at that index in the selected bank. The palette
// is itself a decoded 16-column image with one row per bank.
func Palettize(img *Image, palette *Image, bank int) error {
	offset := bank * PaletteRowSize
	if offset < 0 || offset+PaletteRowSize > len(palette.Data) {
		return fmt.Errorf("%w: bank %d of %d-byte palette", ErrPaletteIndex, bank, len(palette.Data))
	}

	for i := 0; i < len(img.Data); i += 4 {
		idx := int(img.Data[i])
		if idx >= PaletteColumns {
			return fmt.Errorf("%w: pixel index %d", ErrPaletteIndex, idx)
		}
		copy(img.Data[i:i+4], palette.Data[offset+idx*4:offset+idx*4+4])
	}
	return nil
}

// FromCLUT materializes a decoded color lookup table as a 16x16 palette
// image usable with Palettize.
func FromCLUT(c *pixel.CLUT) Image {
	data := make([]byte, 0, len(c.Colors)*4)
	for _, col := range c.Colors {
		data = append(data, col.R, col.G, col.B, col.A)
	}
	return Image{Width: PaletteColumns, Height: len(c.Colors) / PaletteColumns, Data: data, Valid: true}
}

// ScaleIndexed multiplies raw 4-bit index values by 17 so the image is
// viewable as grayscale (15*17 = 255). Diagnostic aid only; palettized
// output never needs it.
func ScaleIndexed(img *Image) {
	if img == nil || !img.Valid || img.Data == nil {
		return
	}
	for i := 0; i < len(img.Data); i += 4 {
		img.Data[i+0] *= 17
		img.Data[i+1] *= 17
		img.Data[i+2] *= 17
		img.Data[i+3] = 0xFF
	}
}
