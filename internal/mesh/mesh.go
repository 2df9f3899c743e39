// Package mesh decodes a map mesh resource: a 196-byte pointer header
// followed by optional geometry, palette, lighting and terrain chunks at
// the offsets the header names.
package mesh

import (
	"errors"
	"fmt"

	"fft-map-extractor/internal/gns"
	"fft-map-extractor/internal/pixel"
	"fft-map-extractor/internal/span"
)

// ErrCorrupt is returned when a chunk violates the structural bounds the
// format declares. A decode never returns partially filled structures.
var ErrCorrupt = errors.New("mesh: corrupt resource")

// Meta summarizes a decoded mesh: which sub-chunks were present and the
// decoded counts.
type Meta struct {
	HasGeometry bool
	HasCLUT     bool
	HasLighting bool
	HasTerrain  bool

	PolygonCount   int
	TexTriCount    int
	TexQuadCount   int
	UntexTriCount  int
	UntexQuadCount int
	LightCount     int
}

// Mesh is one fully decoded mesh resource together with the map state
// it belongs to. Absent sub-chunks stay zero-valued with the matching
// Meta flag false.
type Mesh struct {
	State    gns.State
	Header   Header
	Geometry Geometry
	CLUT     pixel.CLUT
	Lighting Lighting
	Terrain  Terrain
	Meta     Meta
}

// Decode parses a whole mesh resource buffer for the given state.
func Decode(data []byte, state gns.State) (Mesh, error) {
	s := span.New(data)

	header, err := DecodeHeader(s)
	if err != nil {
		return Mesh{}, err
	}

	m := Mesh{State: state, Header: header}

	if ptr := header.Geometry(); ptr != 0 {
		if err := s.Seek(int(ptr)); err != nil {
			return Mesh{}, fmt.Errorf("mesh: geometry pointer %#x: %w", ptr, err)
		}
		geo, err := DecodeGeometry(s)
		if err != nil {
			return Mesh{}, err
		}
		m.Geometry = geo
		m.Meta.HasGeometry = true
		m.Meta.PolygonCount = len(geo.Polygons)
		m.Meta.TexTriCount = geo.TexTriCount
		m.Meta.TexQuadCount = geo.TexQuadCount
		m.Meta.UntexTriCount = geo.UntexTriCount
		m.Meta.UntexQuadCount = geo.UntexQuadCount
	}

	if ptr := header.CLUTColor(); ptr != 0 {
		if err := s.Seek(int(ptr)); err != nil {
			return Mesh{}, fmt.Errorf("mesh: clut pointer %#x: %w", ptr, err)
		}
		clut, err := pixel.DecodeCLUT(s)
		if err != nil {
			return Mesh{}, err
		}
		m.CLUT = clut
		m.Meta.HasCLUT = true
	}

	if ptr := header.Lighting(); ptr != 0 {
		if err := s.Seek(int(ptr)); err != nil {
			return Mesh{}, fmt.Errorf("mesh: lighting pointer %#x: %w", ptr, err)
		}
		lighting, err := DecodeLighting(s)
		if err != nil {
			return Mesh{}, err
		}
		m.Lighting = lighting
		m.Meta.HasLighting = true
		m.Meta.LightCount = lighting.EnabledCount()
	}

	if ptr := header.Terrain(); ptr != 0 {
		if err := s.Seek(int(ptr)); err != nil {
			return Mesh{}, fmt.Errorf("mesh: terrain pointer %#x: %w", ptr, err)
		}
		terrain, err := DecodeTerrain(s)
		if err != nil {
			return Mesh{}, err
		}
		m.Terrain = terrain
		m.Meta.HasTerrain = true
	}

	return m, nil
}
