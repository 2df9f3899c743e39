package mesh

import (
	"fmt"

	"fft-map-extractor/internal/pixel"
	"fft-map-extractor/internal/span"
)

// Polygon capacity bounds declared by the format. Counts at or above
// these reject the whole geometry chunk.
const (
	MaxTexturedTris    = 512
	MaxTexturedQuads   = 768
	MaxUntexturedTris  = 64
	MaxUntexturedQuads = 256
)

// PolygonKind distinguishes the four on-disk polygon classes.
type PolygonKind uint8

const (
	TexturedTriangle PolygonKind = iota
	TexturedQuad
	UntexturedTriangle
	UntexturedQuad
)

func (k PolygonKind) String() string {
	switch k {
	case TexturedTriangle:
		return "TexturedTriangle"
	case TexturedQuad:
		return "TexturedQuad"
	case UntexturedTriangle:
		return "UntexturedTriangle"
	case UntexturedQuad:
		return "UntexturedQuad"
	default:
		return "Unknown"
	}
}

// VertexCount returns 3 for triangles, 4 for quads.
func (k PolygonKind) VertexCount() int {
	if k == TexturedQuad || k == UntexturedQuad {
		return 4
	}
	return 3
}

// Textured reports whether polygons of this kind carry texture data.
func (k PolygonKind) Textured() bool {
	return k == TexturedTriangle || k == TexturedQuad
}

// Position is a vertex position in map units.
type Position struct {
	X, Y, Z int16
}

// Normal is a fixed-point surface normal.
type Normal struct {
	X, Y, Z pixel.Fixed16
}

// TexCoord addresses a texel on the 256-wide texture page.
type TexCoord struct {
	U, V uint8
}

// Vertex bundles the per-vertex data gathered across the read passes.
type Vertex struct {
	Position Position
	Normal   Normal
	TexCoord TexCoord
}

// TileLocation ties a textured polygon to its terrain tile.
type TileLocation struct {
	X         uint8
	Z         uint8
	Elevation uint8 // 0 or 1
}

// UnpackTileLocation splits the two-byte tile reference: byte 0 packs
// the elevation in bit 0 and z in bits 1-7, byte 1 is x.
func UnpackTileLocation(b0, b1 uint8) TileLocation {
	return TileLocation{
		Elevation: b0 & 0x1,
		Z:         b0 >> 1,
		X:         b1,
	}
}

// TexturePacked is the bit-packed byte 6 of a polygon's texture info.
type TexturePacked struct {
	Page    uint8 // bits 0-1: texture page
	Image   uint8 // bits 2-3: which physical texture image to sample
	Unknown uint8 // bits 4-7
}

// UnpackTexture splits texture-info byte 6.
func UnpackTexture(b uint8) TexturePacked {
	return TexturePacked{
		Page:    b & 0x3,
		Image:   (b >> 2) & 0x3,
		Unknown: b >> 4,
	}
}

// Polygon is one decoded triangle or quad. Textured polygons carry
// palette/page/tile data; untextured ones carry 4 bytes of unknown
// per-polygon data instead.
type Polygon struct {
	Kind     PolygonKind
	Vertices [4]Vertex // Kind.VertexCount() entries used

	// Textured polygons only.
	PaletteBank uint8
	Texture     TexturePacked
	TexUnknown  [2]uint8 // texture-info bytes 3 and 7
	Tile        TileLocation

	// Untextured polygons only.
	Unknown [4]byte
}

// Textured reports whether the polygon carries texture data.
func (p *Polygon) Textured() bool { return p.Kind.Textured() }

// Geometry is the full ordered polygon set of one mesh, in the on-disk
// grouping: textured triangles, textured quads, untextured triangles,
// untextured quads.
type Geometry struct {
	Polygons []Polygon

	TexTriCount    int
	TexQuadCount   int
	UntexTriCount  int
	UntexQuadCount int
}

// DecodeGeometry reads the geometry chunk at the cursor's position. The
// on-disk layout is column-oriented: after the four polygon counts, each
// attribute (positions, normals, texture info, untextured info, tile
// locations) is stored as its own consecutive pass over the polygon
// order, so the decoder walks the buffer once per attribute.
func DecodeGeometry(s *span.Span) (Geometry, error) {
	n, err := s.U16()
	if err != nil {
		return Geometry{}, fmt.Errorf("mesh: geometry counts: %w", err)
	}
	p, _ := s.U16()
	q, _ := s.U16()
	r, err := s.U16()
	if err != nil {
		return Geometry{}, fmt.Errorf("mesh: geometry counts: %w", err)
	}

	if n >= MaxTexturedTris || p >= MaxTexturedQuads || q >= MaxUntexturedTris || r >= MaxUntexturedQuads {
		return Geometry{}, fmt.Errorf("%w: polygon counts %d/%d/%d/%d exceed %d/%d/%d/%d",
			ErrCorrupt, n, p, q, r, MaxTexturedTris, MaxTexturedQuads, MaxUntexturedTris, MaxUntexturedQuads)
	}

	geo := Geometry{
		TexTriCount:    int(n),
		TexQuadCount:   int(p),
		UntexTriCount:  int(q),
		UntexQuadCount: int(r),
	}

	total := geo.TexTriCount + geo.TexQuadCount + geo.UntexTriCount + geo.UntexQuadCount
	geo.Polygons = make([]Polygon, total)
	for i := range geo.Polygons {
		switch {
		case i < geo.TexTriCount:
			geo.Polygons[i].Kind = TexturedTriangle
		case i < geo.TexTriCount+geo.TexQuadCount:
			geo.Polygons[i].Kind = TexturedQuad
		case i < geo.TexTriCount+geo.TexQuadCount+geo.UntexTriCount:
			geo.Polygons[i].Kind = UntexturedTriangle
		default:
			geo.Polygons[i].Kind = UntexturedQuad
		}
	}

	if err := geo.readPositions(s); err != nil {
		return Geometry{}, err
	}
	if err := geo.readNormals(s); err != nil {
		return Geometry{}, err
	}
	if err := geo.readTextureInfo(s); err != nil {
		return Geometry{}, err
	}
	if err := geo.readUntexturedInfo(s); err != nil {
		return Geometry{}, err
	}
	if err := geo.readTileLocations(s); err != nil {
		return Geometry{}, err
	}

	return geo, nil
}

// readPositions covers every polygon class.
func (g *Geometry) readPositions(s *span.Span) error {
	for i := range g.Polygons {
		poly := &g.Polygons[i]
		for v := 0; v < poly.Kind.VertexCount(); v++ {
			x, err := s.I16()
			if err != nil {
				return fmt.Errorf("mesh: polygon %d position: %w", i, err)
			}
			y, _ := s.I16()
			z, err := s.I16()
			if err != nil {
				return fmt.Errorf("mesh: polygon %d position: %w", i, err)
			}
			poly.Vertices[v].Position = Position{X: x, Y: y, Z: z}
		}
	}
	return nil
}

// readNormals covers textured polygons only.
func (g *Geometry) readNormals(s *span.Span) error {
	textured := g.TexTriCount + g.TexQuadCount
	for i := 0; i < textured; i++ {
		poly := &g.Polygons[i]
		for v := 0; v < poly.Kind.VertexCount(); v++ {
			x, err := s.I16()
			if err != nil {
				return fmt.Errorf("mesh: polygon %d normal: %w", i, err)
			}
			y, _ := s.I16()
			z, err := s.I16()
			if err != nil {
				return fmt.Errorf("mesh: polygon %d normal: %w", i, err)
			}
			poly.Vertices[v].Normal = Normal{
				X: pixel.Fixed16(x),
				Y: pixel.Fixed16(y),
				Z: pixel.Fixed16(z),
			}
		}
	}
	return nil
}

// readTextureInfo covers textured polygons: 10 bytes for a triangle, 12
// for a quad (the extra two are the fourth texture coordinate).
func (g *Geometry) readTextureInfo(s *span.Span) error {
	textured := g.TexTriCount + g.TexQuadCount
	for i := 0; i < textured; i++ {
		poly := &g.Polygons[i]

		size := 10
		if poly.Kind == TexturedQuad {
			size = 12
		}
		b, err := s.Bytes(size)
		if err != nil {
			return fmt.Errorf("mesh: polygon %d texture info: %w", i, err)
		}

		poly.Vertices[0].TexCoord = TexCoord{U: b[0], V: b[1]}
		poly.PaletteBank = b[2] & 0xF
		poly.TexUnknown[0] = b[3]
		poly.Vertices[1].TexCoord = TexCoord{U: b[4], V: b[5]}
		poly.Texture = UnpackTexture(b[6])
		poly.TexUnknown[1] = b[7]
		poly.Vertices[2].TexCoord = TexCoord{U: b[8], V: b[9]}
		if poly.Kind == TexturedQuad {
			poly.Vertices[3].TexCoord = TexCoord{U: b[10], V: b[11]}
		}
	}
	return nil
}

// readUntexturedInfo covers untextured polygons, continuing the polygon
// index after the textured classes.
func (g *Geometry) readUntexturedInfo(s *span.Span) error {
	start := g.TexTriCount + g.TexQuadCount
	for i := start; i < len(g.Polygons); i++ {
		b, err := s.Bytes(4)
		if err != nil {
			return fmt.Errorf("mesh: polygon %d untextured info: %w", i, err)
		}
		copy(g.Polygons[i].Unknown[:], b)
	}
	return nil
}

// readTileLocations covers textured polygons only.
func (g *Geometry) readTileLocations(s *span.Span) error {
	textured := g.TexTriCount + g.TexQuadCount
	for i := 0; i < textured; i++ {
		b0, err := s.U8()
		if err != nil {
			return fmt.Errorf("mesh: polygon %d tile location: %w", i, err)
		}
		b1, err := s.U8()
		if err != nil {
			return fmt.Errorf("mesh: polygon %d tile location: %w", i, err)
		}
		g.Polygons[i].Tile = UnpackTileLocation(b0, b1)
	}
	return nil
}
