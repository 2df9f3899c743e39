// Package export turns decoded RGBA buffers into image files on disk.
package export

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"fft-map-extractor/internal/bitmap"
)

// Format selects the output encoding.
type Format string

const (
	FormatWebP Format = "webp"
	FormatBMP  Format = "bmp"
	FormatTGA  Format = "tga"
)

// ParseFormat validates a format name from config or flags.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatWebP, FormatBMP, FormatTGA:
		return Format(s), nil
	}
	return "", fmt.Errorf("export: unknown format %q (want webp, bmp or tga)", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// ToImage wraps a decoded buffer as a non-premultiplied image. The pixel
// data is shared, not copied.
func ToImage(img *bitmap.Image) *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Data,
		Stride: img.Width * 4,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// Scale produces a nearest-neighbour integer upscale, keeping the hard
// pixel edges of the source art.
func Scale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// WriteImage encodes img to path in the given format, creating parent
// directories as needed.
func WriteImage(path string, img image.Image, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	switch format {
	case FormatWebP:
		err = nativewebp.Encode(f, img, nil)
	case FormatBMP:
		err = bmp.Encode(f, img)
	case FormatTGA:
		err = tga.Encode(f, img)
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}
