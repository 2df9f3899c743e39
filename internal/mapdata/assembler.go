// Package mapdata assembles everything a map needs out of the disc
// image: the GNS record list, the primary/override/alternate meshes and
// the per-state texture pages.
package mapdata

import (
	"errors"
	"fmt"

	"fft-map-extractor/internal/bitmap"
	"fft-map-extractor/internal/gns"
	"fft-map-extractor/internal/mesh"
	"fft-map-extractor/internal/span"
	"fft-map-extractor/internal/vfs"
)

// Texture pages are always 256x1024 4bpp, palettized later by the
// consumer since one page serves several palette banks.
const (
	TextureWidth  = 256
	TextureHeight = 1024
)

var (
	// ErrUnknownMap is returned for a map id with no catalog entry.
	ErrUnknownMap = errors.New("mapdata: unknown map id")
	// ErrUnusableMap is returned for catalog entries whose GNS file is
	// a placeholder stub.
	ErrUnusableMap = errors.New("mapdata: map has no resources")
	// ErrBadState is returned when a primary or override mesh record
	// carries a non-default state.
	ErrBadState = errors.New("mapdata: non-default state on base mesh")
)

// Texture is one decoded texture page tagged with the state it serves.
type Texture struct {
	State gns.State
	Image bitmap.Image
}

// MapData is the complete decoded asset set of one map.
type MapData struct {
	Info    MapInfo
	Records []gns.Record

	Primary     mesh.Mesh
	HasPrimary  bool
	Override    mesh.Mesh
	HasOverride bool
	AltMeshes   []mesh.Mesh
	Textures    []Texture
}

// Assembler reads maps out of one open disc image.
type Assembler struct {
	archive *vfs.Archive
}

// NewAssembler wraps an open archive. The assembler inherits the
// archive's sequential-use-only constraint.
func NewAssembler(archive *vfs.Archive) *Assembler {
	return &Assembler{archive: archive}
}

// Read decodes map id into a fresh MapData. Repeated reads of the same
// id against the same image produce equal results.
func (a *Assembler) Read(id int) (*MapData, error) {
	info, ok := Info(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMap, id)
	}
	if !info.Usable {
		return nil, fmt.Errorf("%w: %d", ErrUnusableMap, id)
	}

	dir, err := a.archive.ReadFile(info.File)
	if err != nil {
		return nil, fmt.Errorf("mapdata: map %d directory: %w", id, err)
	}
	records, err := gns.DecodeRecords(dir)
	if err != nil {
		return nil, fmt.Errorf("mapdata: map %d directory: %w", id, err)
	}

	md := &MapData{Info: info, Records: records}
	for i, rec := range records {
		if err := a.addRecord(md, rec); err != nil {
			return nil, fmt.Errorf("mapdata: map %d record %d (%s): %w", id, i, rec.Type, err)
		}
	}

	return md, nil
}

func (a *Assembler) addRecord(md *MapData, rec gns.Record) error {
	switch rec.Type {
	case gns.RecordTexture:
		return a.addTexture(md, rec)

	case gns.RecordMeshPrimary:
		if md.HasPrimary {
			return nil
		}
		if !rec.State.IsDefault() {
			return fmt.Errorf("%w: %s", ErrBadState, rec.State)
		}
		m, err := a.readMesh(rec)
		if err != nil {
			return err
		}
		md.Primary = m
		md.HasPrimary = true

	case gns.RecordMeshOverride:
		if md.HasOverride {
			return nil
		}
		if !rec.State.IsDefault() {
			return fmt.Errorf("%w: %s", ErrBadState, rec.State)
		}
		m, err := a.readMesh(rec)
		if err != nil {
			return err
		}
		md.Override = m
		md.HasOverride = true

	case gns.RecordMeshAlt:
		m, err := a.readMesh(rec)
		if err != nil {
			return err
		}
		md.AltMeshes = append(md.AltMeshes, m)
	}
	// Other record types carry no map resources.

	return nil
}

func (a *Assembler) addTexture(md *MapData, rec gns.Record) error {
	data, err := a.archive.ReadSectors(rec.Sector, rec.Length)
	if err != nil {
		return err
	}
	img, err := bitmap.Read4BPP(span.New(data), TextureWidth, TextureHeight)
	if err != nil {
		return err
	}
	md.Textures = append(md.Textures, Texture{State: rec.State, Image: img})
	return nil
}

func (a *Assembler) readMesh(rec gns.Record) (mesh.Mesh, error) {
	data, err := a.archive.ReadSectors(rec.Sector, rec.Length)
	if err != nil {
		return mesh.Mesh{}, err
	}
	return mesh.Decode(data, rec.State)
}
