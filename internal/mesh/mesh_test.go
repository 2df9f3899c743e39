package mesh

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fft-map-extractor/internal/gns"
	"fft-map-extractor/internal/pixel"
	"fft-map-extractor/internal/span"
)

type builder struct {
	buf []byte
}

func (b *builder) u8(v uint8)   { b.buf = append(b.buf, v) }
func (b *builder) u16(v uint16) { b.buf = binary.LittleEndian.AppendUint16(b.buf, v) }
func (b *builder) i16(v int16)  { b.u16(uint16(v)) }
func (b *builder) u32(v uint32) { b.buf = binary.LittleEndian.AppendUint32(b.buf, v) }

func (b *builder) fill(n int, v uint8) {
	for i := 0; i < n; i++ {
		b.u8(v)
	}
}

// buildResource assembles a complete synthetic mesh resource: one
// textured triangle, one untextured quad, a CLUT, lighting and a 2x2
// two-level terrain.
func buildResource(t *testing.T) []byte {
	t.Helper()

	const (
		geometryOff = HeaderSize
		clutOff     = geometryOff + 84
		lightingOff = clutOff + 512
		terrainOff  = lightingOff + 48
	)

	var b builder
	for i := 0; i < HeaderSize/4; i++ {
		switch i {
		case slotGeometry:
			b.u32(geometryOff)
		case slotCLUTColor:
			b.u32(clutOff)
		case slotLighting:
			b.u32(lightingOff)
		case slotTerrain:
			b.u32(terrainOff)
		default:
			b.u32(0)
		}
	}

	// Geometry counts: 1 textured triangle, 1 untextured quad.
	b.u16(1)
	b.u16(0)
	b.u16(0)
	b.u16(1)

	// Positions, triangle then quad.
	b.i16(1)
	b.i16(-2)
	b.i16(3)
	b.i16(4)
	b.i16(5)
	b.i16(6)
	b.i16(7)
	b.i16(8)
	b.i16(9)
	for v := 0; v < 4; v++ {
		b.i16(int16(100 + v))
		b.i16(int16(200 + v))
		b.i16(int16(300 + v))
	}

	// Normals, triangle only.
	b.i16(4096)
	b.i16(0)
	b.i16(0)
	b.i16(0)
	b.i16(4096)
	b.i16(0)
	b.i16(0)
	b.i16(0)
	b.i16(-4096)

	// Texture info, triangle only: 10 bytes.
	b.u8(10) // u0
	b.u8(11) // v0
	b.u8(0x05)
	b.u8(0xAA)
	b.u8(12) // u1
	b.u8(13) // v1
	b.u8(0xF6) // page 2, image 1, unknown 0xF
	b.u8(0xBB)
	b.u8(14) // u2
	b.u8(15) // v2

	// Untextured info, quad only.
	b.u8(1)
	b.u8(2)
	b.u8(3)
	b.u8(4)

	// Tile location, triangle only: elevation 1, z 3, x 9.
	b.u8(0x07)
	b.u8(0x09)

	if len(b.buf) != clutOff {
		t.Fatalf("geometry chunk ends at %d, want %d", len(b.buf), clutOff)
	}

	// CLUT: entry 0 opaque white, entry 1 transparent black, rest zero.
	b.u16(0xFFFF)
	b.fill(510, 0)

	if len(b.buf) != lightingOff {
		t.Fatalf("clut chunk ends at %d, want %d", len(b.buf), lightingOff)
	}

	// Lighting: channel-major colors. Light 0 red, light 1 half green,
	// light 2 disabled.
	b.i16(4096)
	b.i16(0)
	b.i16(0) // reds
	b.i16(0)
	b.i16(2048)
	b.i16(0) // greens
	b.i16(0)
	b.i16(0)
	b.i16(0) // blues
	b.i16(10)
	b.i16(-20)
	b.i16(30) // light 0 position
	b.i16(0)
	b.i16(0)
	b.i16(0)
	b.i16(0)
	b.i16(0)
	b.i16(0)
	b.u8(1)
	b.u8(2)
	b.u8(3) // ambient
	b.u8(4)
	b.u8(5)
	b.u8(6) // background top
	b.u8(7)
	b.u8(8)
	b.u8(9) // background bottom
	b.u8(0xA)
	b.u8(0xB)
	b.u8(0xC)

	if len(b.buf) != terrainOff {
		t.Fatalf("lighting chunk ends at %d, want %d", len(b.buf), terrainOff)
	}

	// Terrain: 2x2, two levels. Tile (0,1,0) gets distinctive values,
	// the rest stay zero.
	b.u8(2)
	b.u8(2)
	for level := 0; level < TerrainLevels; level++ {
		for z := 0; z < 2; z++ {
			for x := 0; x < 2; x++ {
				if level == 0 && x == 1 && z == 0 {
					b.u8(0xD3) // surface Road with junk in the top bits
					b.u8(0)
					b.u8(4)    // sloped height bottom
					b.u8(0x45) // depth 2, sloped height top 5
					b.u8(0x85) // incline north
					b.u8(0)
					b.u8(0xC9) // pass through, shading 2, no walk, no select
					b.u8(0x12)
					continue
				}
				b.fill(8, 0)
			}
		}
	}

	return b.buf
}

func TestDecodeFullResource(t *testing.T) {
	m, err := Decode(buildResource(t), gns.DefaultState)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	wantMeta := Meta{
		HasGeometry:    true,
		HasCLUT:        true,
		HasLighting:    true,
		HasTerrain:     true,
		PolygonCount:   2,
		TexTriCount:    1,
		UntexQuadCount: 1,
		LightCount:     2,
	}
	if diff := cmp.Diff(wantMeta, m.Meta); diff != "" {
		t.Errorf("Meta mismatch (-want +got):\n%s", diff)
	}

	tri := m.Geometry.Polygons[0]
	if tri.Kind != TexturedTriangle {
		t.Errorf("polygon 0 kind = %v, want TexturedTriangle", tri.Kind)
	}
	wantV0 := Vertex{
		Position: Position{X: 1, Y: -2, Z: 3},
		Normal:   Normal{X: pixel.FixedScale},
		TexCoord: TexCoord{U: 10, V: 11},
	}
	if diff := cmp.Diff(wantV0, tri.Vertices[0]); diff != "" {
		t.Errorf("triangle vertex 0 mismatch (-want +got):\n%s", diff)
	}
	if tri.PaletteBank != 5 {
		t.Errorf("PaletteBank = %d, want 5", tri.PaletteBank)
	}
	wantTex := TexturePacked{Page: 2, Image: 1, Unknown: 0xF}
	if diff := cmp.Diff(wantTex, tri.Texture); diff != "" {
		t.Errorf("texture bits mismatch (-want +got):\n%s", diff)
	}
	wantTile := TileLocation{X: 9, Z: 3, Elevation: 1}
	if diff := cmp.Diff(wantTile, tri.Tile); diff != "" {
		t.Errorf("tile location mismatch (-want +got):\n%s", diff)
	}

	quad := m.Geometry.Polygons[1]
	if quad.Kind != UntexturedQuad {
		t.Errorf("polygon 1 kind = %v, want UntexturedQuad", quad.Kind)
	}
	if got := quad.Unknown; got != [4]byte{1, 2, 3, 4} {
		t.Errorf("untextured info = %v, want [1 2 3 4]", got)
	}
	wantQuadPos := Position{X: 103, Y: 203, Z: 303}
	if diff := cmp.Diff(wantQuadPos, quad.Vertices[3].Position); diff != "" {
		t.Errorf("quad vertex 3 position mismatch (-want +got):\n%s", diff)
	}

	if got, want := m.CLUT.Colors[0], (pixel.RGBA{R: 255, G: 255, B: 255, A: 255}); got != want {
		t.Errorf("CLUT color 0 = %v, want %v", got, want)
	}
	if !m.CLUT.Colors[1].Transparent() {
		t.Errorf("CLUT color 1 = %v, want transparent", m.CLUT.Colors[1])
	}

	if !m.Lighting.Lights[0].Enabled() || !m.Lighting.Lights[1].Enabled() {
		t.Error("lights 0 and 1 should be enabled")
	}
	if m.Lighting.Lights[2].Enabled() {
		t.Error("light 2 should be disabled")
	}
	wantLight0 := Light{
		Color:    pixel.FixedRGB{R: pixel.FixedScale},
		Position: Position{X: 10, Y: -20, Z: 30},
	}
	if diff := cmp.Diff(wantLight0, m.Lighting.Lights[0]); diff != "" {
		t.Errorf("light 0 mismatch (-want +got):\n%s", diff)
	}
	if got, want := m.Lighting.Ambient, (pixel.RGB8{R: 1, G: 2, B: 3}); got != want {
		t.Errorf("ambient = %v, want %v", got, want)
	}
	if got, want := m.Lighting.BackgroundBottom, (pixel.RGB8{R: 7, G: 8, B: 9}); got != want {
		t.Errorf("background bottom = %v, want %v", got, want)
	}

	wantTerrainTile := Tile{
		Surface:            SurfaceRoad,
		SlopedHeightBottom: 4,
		SlopedHeightTop:    5,
		Depth:              2,
		Slope:              SlopeInclineNorth,
		Flags: TileFlags{
			PassThroughOnly: true,
			Shading:         2,
			CannotWalk:      true,
			CannotSelect:    true,
		},
		CameraDirections: 0x12,
	}
	if diff := cmp.Diff(wantTerrainTile, m.Terrain.Tile(0, 1, 0)); diff != "" {
		t.Errorf("terrain tile (0,1,0) mismatch (-want +got):\n%s", diff)
	}
	if got := m.Terrain.Tile(1, 0, 1); got != (Tile{}) {
		t.Errorf("terrain tile (1,0,1) = %+v, want zero tile", got)
	}
}

func TestDecodeEmptyHeader(t *testing.T) {
	m, err := Decode(make([]byte, HeaderSize), gns.DefaultState)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(Meta{}, m.Meta); diff != "" {
		t.Errorf("Meta mismatch for all-absent resource (-want +got):\n%s", diff)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	_, err := Decode(make([]byte, HeaderSize-1), gns.DefaultState)
	if !errors.Is(err, span.ErrOutOfBounds) {
		t.Fatalf("Decode error = %v, want ErrOutOfBounds", err)
	}
}

func TestDecodeGeometryRejectsOversizedCounts(t *testing.T) {
	tests := []struct {
		name       string
		n, p, q, r uint16
	}{
		{"textured triangles", MaxTexturedTris, 0, 0, 0},
		{"textured quads", 0, MaxTexturedQuads, 0, 0},
		{"untextured triangles", 0, 0, MaxUntexturedTris, 0},
		{"untextured quads", 0, 0, 0, MaxUntexturedQuads},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b builder
			b.u16(tt.n)
			b.u16(tt.p)
			b.u16(tt.q)
			b.u16(tt.r)
			_, err := DecodeGeometry(span.New(b.buf))
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("DecodeGeometry error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestDecodeTerrainRejectsOversizedGrid(t *testing.T) {
	_, err := DecodeTerrain(span.New([]byte{MaxTerrainX + 1, 1}))
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("DecodeTerrain error = %v, want ErrCorrupt", err)
	}
}

func TestUnpackTileLocation(t *testing.T) {
	tests := []struct {
		b0, b1 uint8
		want   TileLocation
	}{
		{0x00, 0x00, TileLocation{}},
		{0x07, 0x09, TileLocation{X: 9, Z: 3, Elevation: 1}},
		{0xFE, 0x10, TileLocation{X: 16, Z: 127, Elevation: 0}},
	}
	for _, tt := range tests {
		if got := UnpackTileLocation(tt.b0, tt.b1); got != tt.want {
			t.Errorf("UnpackTileLocation(%#02x, %#02x) = %+v, want %+v", tt.b0, tt.b1, got, tt.want)
		}
	}
}

func TestUnpackTexture(t *testing.T) {
	tests := []struct {
		b    uint8
		want TexturePacked
	}{
		{0x00, TexturePacked{}},
		{0xF6, TexturePacked{Page: 2, Image: 1, Unknown: 0xF}},
		{0x0F, TexturePacked{Page: 3, Image: 3, Unknown: 0}},
	}
	for _, tt := range tests {
		if got := UnpackTexture(tt.b); got != tt.want {
			t.Errorf("UnpackTexture(%#02x) = %+v, want %+v", tt.b, got, tt.want)
		}
	}
}

func TestUnpackDepthHeight(t *testing.T) {
	depth, height := UnpackDepthHeight(0x45)
	if depth != 2 || height != 5 {
		t.Errorf("UnpackDepthHeight(0x45) = (%d, %d), want (2, 5)", depth, height)
	}
	depth, height = UnpackDepthHeight(0xFF)
	if depth != 7 || height != 31 {
		t.Errorf("UnpackDepthHeight(0xFF) = (%d, %d), want (7, 31)", depth, height)
	}
}

func TestSurfaceString(t *testing.T) {
	if got := SurfaceRoad.String(); got != "Road" {
		t.Errorf("SurfaceRoad.String() = %q, want %q", got, "Road")
	}
	if got := Surface(0x3F).String(); got != "Unknown(0x3f)" {
		t.Errorf("Surface(0x3F).String() = %q", got)
	}
}

func TestHeaderSlots(t *testing.T) {
	var b builder
	for i := 0; i < HeaderSize/4; i++ {
		b.u32(uint32(i * 4))
	}
	h, err := DecodeHeader(span.New(b.buf))
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got := h.Geometry(); got != 0x40 {
		t.Errorf("Geometry() = %#x, want 0x40", got)
	}
	if got := h.CLUTColor(); got != 0x44 {
		t.Errorf("CLUTColor() = %#x, want 0x44", got)
	}
	if got := h.Lighting(); got != 0x64 {
		t.Errorf("Lighting() = %#x, want 0x64", got)
	}
	if got := h.Terrain(); got != 0x68 {
		t.Errorf("Terrain() = %#x, want 0x68", got)
	}
	if got := h.AnimatedMesh(7); got != 0xAC {
		t.Errorf("AnimatedMesh(7) = %#x, want 0xAC", got)
	}
	if got := h.RenderProps(); got != 0xC0 {
		t.Errorf("RenderProps() = %#x, want 0xC0", got)
	}
}
