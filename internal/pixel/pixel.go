// Package pixel holds the pure color conversions used across the asset
// formats: PSX 15-bit packed color, 1.3.12 fixed-point color, and the
// indexed color lookup tables (CLUTs).
package pixel

import (
	"fmt"

	"fft-map-extractor/internal/span"
)

// RGBA is the canonical 32-bit output color, 8 bits per channel.
type RGBA struct {
	R, G, B, A uint8
}

// Transparent reports whether all four channels are zero.
func (c RGBA) Transparent() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

// expand5 widens a 5-bit channel to 8 bits by replicating the top three
// bits into the low three. This is the exact PSX expansion, not c*8.
func expand5(c uint16) uint8 {
	return uint8((c << 3) | (c >> 2))
}

// FromPacked converts a 16-bit packed color (5 bits each of R, G, B in
// the low 15 bits, alpha flag in bit 15) to RGBA.
func FromPacked(v uint16) RGBA {
	out := RGBA{
		R: expand5(v & 0x1F),
		G: expand5((v >> 5) & 0x1F),
		B: expand5((v >> 10) & 0x1F),
	}
	if v&0x8000 != 0 {
		out.A = 0xFF
	}
	return out
}

// Fixed16 is a signed 1.3.12 fixed-point value; 4096 represents 1.0.
type Fixed16 int16

// FixedScale is the Fixed16 value of 1.0.
const FixedScale = 4096

// Float converts the fixed-point value to a float.
func (f Fixed16) Float() float64 {
	return float64(f) / FixedScale
}

// FixedRGB is a fixed-point color triple, as stored for lights.
type FixedRGB struct {
	R, G, B Fixed16
}

// RGBA converts the fixed color to 8-bit channels, rounding half up and
// clamping to [0,255]. Alpha is fully opaque.
func (c FixedRGB) RGBA() RGBA {
	return RGBA{
		R: fixedChannel(c.R),
		G: fixedChannel(c.G),
		B: fixedChannel(c.B),
		A: 0xFF,
	}
}

func fixedChannel(f Fixed16) uint8 {
	v := int(f.Float()*255 + 0.5)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// RGB8 is a plain byte triple, used for ambient and background colors.
type RGB8 struct {
	R, G, B uint8
}

// RGBA widens the triple with an opaque alpha.
func (c RGB8) RGBA() RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// CLUT layout: a 16x16 grid of packed colors, addressable as 16 banks
// of 16 colors each.
const (
	CLUTBankCount  = 16
	CLUTBankColors = 16
)

// CLUT is a decoded 256-entry color lookup table.
type CLUT struct {
	Colors [CLUTBankCount * CLUTBankColors]RGBA
}

// Bank returns the 16 colors of one palette bank.
func (c *CLUT) Bank(i int) []RGBA {
	return c.Colors[i*CLUTBankColors : (i+1)*CLUTBankColors]
}

// DecodeCLUT reads 16 rows of 16 packed colors, row-major, from the
// cursor.
func DecodeCLUT(s *span.Span) (CLUT, error) {
	var clut CLUT
	for i := range clut.Colors {
		v, err := s.U16()
		if err != nil {
			return CLUT{}, fmt.Errorf("pixel: clut entry %d: %w", i, err)
		}
		clut.Colors[i] = FromPacked(v)
	}
	return clut, nil
}
