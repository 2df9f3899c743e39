// Package vfs reads files out of the raw FFT disc image. The image has no
// usable filesystem layer; every file is addressed by a hardcoded
// (sector, length) pair from the catalog and reassembled from raw
// 2352-byte sectors.
package vfs

import (
	"errors"
	"fmt"
	"os"
)

// Raw sector layout of the PSX disc dump (Mode 2 Form 1): a 24-byte
// header (sync + address + subheader) before each 2048-byte payload.
const (
	SectorSize       = 2048
	SectorSizeRaw    = 2352
	SectorHeaderSize = 24
)

// ErrShortRead is returned when a sector read comes back with fewer
// bytes than the sector payload size.
var ErrShortRead = errors.New("vfs: short sector read")

// Archive is an open disc image. It is safe for sequential use only;
// callers must not share one Archive across goroutines.
type Archive struct {
	f *os.File
}

// Open opens the disc image at path read-only.
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vfs: open %s: %w", path, err)
	}
	return &Archive{f: f}, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	return a.f.Close()
}

// ReadSectors assembles length bytes starting at the given logical
// sector, skipping each raw sector's header and concatenating payloads.
// The last sector is truncated to the remaining requested length.
func (a *Archive) ReadSectors(sector uint32, length uint32) ([]byte, error) {
	out := make([]byte, 0, length)
	occupied := (length + SectorSize - 1) / SectorSize

	var buf [SectorSize]byte
	for i := uint32(0); i < occupied; i++ {
		seekTo := int64(sector+i)*SectorSizeRaw + SectorHeaderSize
		n, err := a.f.ReadAt(buf[:], seekTo)
		if err != nil || n != SectorSize {
			return nil, fmt.Errorf("%w: sector %d (%d of %d bytes)", ErrShortRead, sector+i, n, SectorSize)
		}

		remaining := length - uint32(len(out))
		if remaining > SectorSize {
			remaining = SectorSize
		}
		out = append(out, buf[:remaining]...)
	}

	return out, nil
}

// ReadFile reads the catalog entry for id.
func (a *Archive) ReadFile(id FileID) ([]byte, error) {
	desc, ok := Desc(id)
	if !ok {
		return nil, fmt.Errorf("vfs: no catalog entry for file id %d", id)
	}
	data, err := a.ReadSectors(desc.Sector, desc.Length)
	if err != nil {
		return nil, fmt.Errorf("vfs: read %s: %w", desc.Name, err)
	}
	return data, nil
}
