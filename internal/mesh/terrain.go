package mesh

import (
	"fmt"

	"fft-map-extractor/internal/span"
)

// Terrain grid bounds and the fixed number of elevation levels.
const (
	MaxTerrainX   = 17
	MaxTerrainZ   = 18
	TerrainLevels = 2
)

// Surface is a tile's surface material (the low 6 bits of the first
// tile byte).
type Surface uint8

const (
	SurfaceNaturalSurface Surface = 0x00
	SurfaceSandArea       Surface = 0x01
	SurfaceStalactite     Surface = 0x02
	SurfaceGrassland      Surface = 0x03
	SurfaceThicket        Surface = 0x04
	SurfaceSnow           Surface = 0x05
	SurfaceRockyCliff     Surface = 0x06
	SurfaceGravel         Surface = 0x07
	SurfaceWasteland      Surface = 0x08
	SurfaceSwamp          Surface = 0x09
	SurfaceMarsh          Surface = 0x0A
	SurfacePoisonedMarsh  Surface = 0x0B
	SurfaceLavaRocks      Surface = 0x0C
	SurfaceIce            Surface = 0x0D
	SurfaceWaterway       Surface = 0x0E
	SurfaceRiver          Surface = 0x0F
	SurfaceLake           Surface = 0x10
	SurfaceSea            Surface = 0x11
	SurfaceLava           Surface = 0x12
	SurfaceRoad           Surface = 0x13
	SurfaceWoodenFloor    Surface = 0x14
	SurfaceStoneFloor     Surface = 0x15
	SurfaceRoof           Surface = 0x16
	SurfaceStoneWall      Surface = 0x17
	SurfaceSky            Surface = 0x18
	SurfaceDarkness       Surface = 0x19
	SurfaceSalt           Surface = 0x1A
	SurfaceBook           Surface = 0x1B
	SurfaceObstacle       Surface = 0x1C
	SurfaceRug            Surface = 0x1D
	SurfaceBareGround     Surface = 0x1E
)

var surfaceNames = map[Surface]string{
	SurfaceNaturalSurface: "Natural Surface",
	SurfaceSandArea:       "Sand Area",
	SurfaceStalactite:     "Stalactite",
	SurfaceGrassland:      "Grassland",
	SurfaceThicket:        "Thicket",
	SurfaceSnow:           "Snow",
	SurfaceRockyCliff:     "Rocky Cliff",
	SurfaceGravel:         "Gravel",
	SurfaceWasteland:      "Wasteland",
	SurfaceSwamp:          "Swamp",
	SurfaceMarsh:          "Marsh",
	SurfacePoisonedMarsh:  "Poisoned Marsh",
	SurfaceLavaRocks:      "Lava Rocks",
	SurfaceIce:            "Ice",
	SurfaceWaterway:       "Waterway",
	SurfaceRiver:          "River",
	SurfaceLake:           "Lake",
	SurfaceSea:            "Sea",
	SurfaceLava:           "Lava",
	SurfaceRoad:           "Road",
	SurfaceWoodenFloor:    "Wooden Floor",
	SurfaceStoneFloor:     "Stone Floor",
	SurfaceRoof:           "Roof",
	SurfaceStoneWall:      "Stone Wall",
	SurfaceSky:            "Sky",
	SurfaceDarkness:       "Darkness",
	SurfaceSalt:           "Salt",
	SurfaceBook:           "Book",
	SurfaceObstacle:       "Obstacle",
	SurfaceRug:            "Rug",
	SurfaceBareGround:     "Bare Ground",
}

func (s Surface) String() string {
	if name, ok := surfaceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%#02x)", uint8(s))
}

// SlopeShape encodes how a tile's surface is tilted.
type SlopeShape uint8

const (
	SlopeFlat             SlopeShape = 0x00
	SlopeInclineNorth     SlopeShape = 0x85
	SlopeInclineEast      SlopeShape = 0x52
	SlopeInclineSouth     SlopeShape = 0x25
	SlopeInclineWest      SlopeShape = 0x58
	SlopeConvexNortheast  SlopeShape = 0x41
	SlopeConvexSoutheast  SlopeShape = 0x11
	SlopeConvexSouthwest  SlopeShape = 0x14
	SlopeConvexNorthwest  SlopeShape = 0x44
	SlopeConcaveNortheast SlopeShape = 0x96
	SlopeConcaveSoutheast SlopeShape = 0x66
	SlopeConcaveSouthwest SlopeShape = 0x69
	SlopeConcaveNorthwest SlopeShape = 0x99
)

func (s SlopeShape) String() string {
	switch s {
	case SlopeFlat:
		return "Flat"
	case SlopeInclineNorth:
		return "Incline North"
	case SlopeInclineEast:
		return "Incline East"
	case SlopeInclineSouth:
		return "Incline South"
	case SlopeInclineWest:
		return "Incline West"
	case SlopeConvexNortheast:
		return "Convex Northeast"
	case SlopeConvexSoutheast:
		return "Convex Southeast"
	case SlopeConvexSouthwest:
		return "Convex Southwest"
	case SlopeConvexNorthwest:
		return "Convex Northwest"
	case SlopeConcaveNortheast:
		return "Concave Northeast"
	case SlopeConcaveSoutheast:
		return "Concave Southeast"
	case SlopeConcaveSouthwest:
		return "Concave Southwest"
	case SlopeConcaveNorthwest:
		return "Concave Northwest"
	default:
		return fmt.Sprintf("Unknown(%#02x)", uint8(s))
	}
}

// TileFlags are the walkability and shading bits unpacked from one
// flags byte.
type TileFlags struct {
	PassThroughOnly bool  // bit 0: units may pass but not stop
	Shading         uint8 // bits 2-3
	CannotWalk      bool  // bit 6
	CannotSelect    bool  // bit 7
}

// UnpackTileFlags splits the tile flags byte.
func UnpackTileFlags(b uint8) TileFlags {
	return TileFlags{
		PassThroughOnly: b&0x01 != 0,
		Shading:         (b >> 2) & 0x3,
		CannotWalk:      b&0x40 != 0,
		CannotSelect:    b&0x80 != 0,
	}
}

// UnpackDepthHeight splits the byte packing water depth (top 3 bits)
// and sloped height top (low 5 bits).
func UnpackDepthHeight(b uint8) (depth, heightTop uint8) {
	return b >> 5, b & 0x1F
}

// Tile is one terrain cell. Flat tiles occasionally encode a sloped
// height top of 1 instead of 0; that inconsistency is in the shipped
// data and is stored as read.
type Tile struct {
	Surface            Surface
	SlopedHeightBottom uint8
	SlopedHeightTop    uint8 // delta from bottom to top of the slope
	Depth              uint8
	Slope              SlopeShape
	Flags              TileFlags
	CameraDirections   uint8 // auto-rotate direction bitmask
}

// Terrain is the two-level tile grid of one mesh. Tiles are stored
// row-major by z within each elevation level.
type Terrain struct {
	XCount int
	ZCount int
	Levels [TerrainLevels][]Tile
}

// Tile returns the tile at (x, z) on the given elevation level.
func (t *Terrain) Tile(level, x, z int) Tile {
	return t.Levels[level][z*t.XCount+x]
}

// DecodeTerrain reads the terrain chunk at the cursor's position.
func DecodeTerrain(s *span.Span) (Terrain, error) {
	xCount, err := s.U8()
	if err != nil {
		return Terrain{}, fmt.Errorf("mesh: terrain counts: %w", err)
	}
	zCount, err := s.U8()
	if err != nil {
		return Terrain{}, fmt.Errorf("mesh: terrain counts: %w", err)
	}

	if xCount > MaxTerrainX || zCount > MaxTerrainZ {
		return Terrain{}, fmt.Errorf("%w: terrain %dx%d exceeds %dx%d",
			ErrCorrupt, xCount, zCount, MaxTerrainX, MaxTerrainZ)
	}

	t := Terrain{XCount: int(xCount), ZCount: int(zCount)}
	for level := 0; level < TerrainLevels; level++ {
		t.Levels[level] = make([]Tile, 0, t.XCount*t.ZCount)
		for z := 0; z < t.ZCount; z++ {
			for x := 0; x < t.XCount; x++ {
				tile, err := decodeTile(s)
				if err != nil {
					return Terrain{}, fmt.Errorf("mesh: terrain tile (%d,%d,%d): %w", level, x, z, err)
				}
				t.Levels[level] = append(t.Levels[level], tile)
			}
		}
	}

	return t, nil
}

func decodeTile(s *span.Span) (Tile, error) {
	b, err := s.Bytes(8)
	if err != nil {
		return Tile{}, err
	}

	depth, heightTop := UnpackDepthHeight(b[3])

	return Tile{
		Surface:            Surface(b[0] & 0x3F),
		SlopedHeightBottom: b[2],
		SlopedHeightTop:    heightTop,
		Depth:              depth,
		Slope:              SlopeShape(b[4]),
		Flags:              UnpackTileFlags(b[6]),
		CameraDirections:   b[7],
	}, nil
}
