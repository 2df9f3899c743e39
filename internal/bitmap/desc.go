package bitmap

import (
	"fmt"

	"fft-map-extractor/internal/span"
	"fft-map-extractor/internal/vfs"
)

// Desc describes one non-map image resource: its pixel dimensions, where
// the pixel data and palettes sit inside the file, and the repeat tiling
// for files that pack several logical images.
type Desc struct {
	Name  string
	Entry vfs.FileID

	Width  int
	Height int

	DataOffset int
	PalOffset  int
	PalCount   int
	PalDefault int

	Repeat       int
	RepeatOffset int
}

// DescList covers the event and UI graphics this library knows how to
// decode. Offsets were established by reverse engineering the US release.
var DescList = []Desc{
	{Name: "BONUS.BIN", Entry: vfs.EventBonusBin, Width: 256, Height: 200, PalOffset: 25600, PalCount: 6, Repeat: 36, RepeatOffset: 26624},
	{Name: "CHAPTER1.BIN", Entry: vfs.EventChapter1Bin, Width: 256, Height: 62, PalOffset: 8160, PalCount: 1},
	{Name: "CHAPTER2.BIN", Entry: vfs.EventChapter2Bin, Width: 256, Height: 62, PalOffset: 8160, PalCount: 1},
	{Name: "CHAPTER3.BIN", Entry: vfs.EventChapter3Bin, Width: 256, Height: 62, PalOffset: 8160, PalCount: 1},
	{Name: "CHAPTER4.BIN", Entry: vfs.EventChapter4Bin, Width: 256, Height: 62, PalOffset: 8160, PalCount: 1},
	{Name: "EVTCHR.BIN", Entry: vfs.EventEvtchrBin, Width: 256, Height: 200, DataOffset: 2560, PalOffset: 1920, PalCount: 7, Repeat: 137, RepeatOffset: 30720},
	{Name: "FRAME.BIN", Entry: vfs.EventFrameBin, Width: 256, Height: 288, PalOffset: 36864, PalCount: 22, PalDefault: 5},
	{Name: "ITEM.BIN", Entry: vfs.EventItemBin, Width: 256, Height: 256, PalOffset: 32768, PalCount: 16},
	{Name: "UNIT.BIN", Entry: vfs.EventUnitBin, Width: 256, Height: 480, PalOffset: 61440, PalCount: 128},
	{Name: "WLDFACE.BIN", Entry: vfs.EventWldfaceBin, Width: 256, Height: 240, PalOffset: 30720, PalCount: 64, Repeat: 4, RepeatOffset: 32768},
	{Name: "WLDFACE4.BIN", Entry: vfs.EventWldface4Bin, Width: 256, Height: 240, PalOffset: 30720, PalCount: 64},
	{Name: "OTHER.SPR", Entry: vfs.BattleOtherSpr, Width: 256, Height: 256, DataOffset: 1024, PalOffset: 0, PalCount: 32},
}

// DescByEntry finds the descriptor for a file id.
func DescByEntry(entry vfs.FileID) (Desc, error) {
	for _, d := range DescList {
		if d.Entry == entry {
			return d, nil
		}
	}
	return Desc{}, fmt.Errorf("bitmap: no image descriptor for file id %d", entry)
}

// Repeats returns the number of logical images packed in the file, at
// least 1.
func (d Desc) Repeats() int {
	if d.Repeat > 0 {
		return d.Repeat
	}
	return 1
}

// DecodeDesc decodes one logical image from a descriptor-described file:
// the repeat'th tiled image, palettized with the given bank.
func DecodeDesc(file []byte, d Desc, repeat, bank int) (Image, error) {
	s := span.New(file)

	if err := s.Seek(d.DataOffset + d.RepeatOffset*repeat); err != nil {
		return Image{}, fmt.Errorf("bitmap: %s image %d: %w", d.Name, repeat, err)
	}
	img, err := Read4BPP(s, d.Width, d.Height)
	if err != nil {
		return Image{}, fmt.Errorf("bitmap: %s image %d: %w", d.Name, repeat, err)
	}

	if err := s.Seek(d.PalOffset); err != nil {
		return Image{}, fmt.Errorf("bitmap: %s palette: %w", d.Name, err)
	}
	palette, err := Read16BPP(s, PaletteColumns, d.PalCount)
	if err != nil {
		return Image{}, fmt.Errorf("bitmap: %s palette: %w", d.Name, err)
	}

	if err := Palettize(&img, &palette, bank); err != nil {
		return Image{}, fmt.Errorf("bitmap: %s bank %d: %w", d.Name, bank, err)
	}
	return img, nil
}
