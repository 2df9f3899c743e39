package mesh

import (
	"fmt"

	"fft-map-extractor/internal/pixel"
	"fft-map-extractor/internal/span"
)

// LightCount is the fixed number of directional light slots.
const LightCount = 3

// Light is one directional light. A slot whose color components sum to
// zero is disabled.
type Light struct {
	Color    pixel.FixedRGB
	Position Position
}

// Enabled reports whether the light slot is in use.
func (l Light) Enabled() bool {
	return int(l.Color.R)+int(l.Color.G)+int(l.Color.B) != 0
}

// Lighting holds the directional lights, ambient color and the two
// background gradient colors of one mesh.
type Lighting struct {
	Lights           [LightCount]Light
	Ambient          pixel.RGB8
	BackgroundTop    pixel.RGB8
	BackgroundBottom pixel.RGB8
	Unknown          [3]byte
}

// EnabledCount returns the number of enabled lights.
func (l *Lighting) EnabledCount() int {
	n := 0
	for _, light := range l.Lights {
		if light.Enabled() {
			n++
		}
	}
	return n
}

// DecodeLighting reads the lighting-and-background chunk. The light
// colors are stored channel-major (all three reds, then greens, then
// blues) while the positions are stored per light.
func DecodeLighting(s *span.Span) (Lighting, error) {
	var l Lighting

	for ch := 0; ch < 3; ch++ {
		for i := 0; i < LightCount; i++ {
			v, err := s.I16()
			if err != nil {
				return Lighting{}, fmt.Errorf("mesh: light %d color channel %d: %w", i, ch, err)
			}
			switch ch {
			case 0:
				l.Lights[i].Color.R = pixel.Fixed16(v)
			case 1:
				l.Lights[i].Color.G = pixel.Fixed16(v)
			case 2:
				l.Lights[i].Color.B = pixel.Fixed16(v)
			}
		}
	}

	for i := 0; i < LightCount; i++ {
		x, err := s.I16()
		if err != nil {
			return Lighting{}, fmt.Errorf("mesh: light %d position: %w", i, err)
		}
		y, _ := s.I16()
		z, err := s.I16()
		if err != nil {
			return Lighting{}, fmt.Errorf("mesh: light %d position: %w", i, err)
		}
		l.Lights[i].Position = Position{X: x, Y: y, Z: z}
	}

	for _, dst := range []*pixel.RGB8{&l.Ambient, &l.BackgroundTop, &l.BackgroundBottom} {
		r, err := s.U8()
		if err != nil {
			return Lighting{}, fmt.Errorf("mesh: lighting colors: %w", err)
		}
		g, _ := s.U8()
		b, err := s.U8()
		if err != nil {
			return Lighting{}, fmt.Errorf("mesh: lighting colors: %w", err)
		}
		*dst = pixel.RGB8{R: r, G: g, B: b}
	}

	tail, err := s.Bytes(3)
	if err != nil {
		return Lighting{}, fmt.Errorf("mesh: lighting tail: %w", err)
	}
	copy(l.Unknown[:], tail)

	return l, nil
}
