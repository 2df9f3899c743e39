package pixel

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fft-map-extractor/internal/span"
)

func TestFromPacked(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   uint16
		want RGBA
	}{
		{"zero", 0x0000, RGBA{0, 0, 0, 0}},
		{"opaque black", 0x8000, RGBA{0, 0, 0, 255}},
		{"full white", 0xFFFF, RGBA{255, 255, 255, 255}},
		{"red only", 0x001F, RGBA{255, 0, 0, 0}},
		{"green only", 0x03E0, RGBA{0, 255, 0, 0}},
		{"blue only", 0x7C00, RGBA{0, 0, 255, 0}},
		// 5-bit 1 expands to 8, not 8*1=8 by luck: (1<<3)|(1>>2) = 8.
		{"low red bit", 0x0001, RGBA{8, 0, 0, 0}},
		// 5-bit 16 -> (16<<3)|(16>>2) = 128|4 = 132, not 128.
		{"mid red", 0x0010, RGBA{132, 0, 0, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromPacked(tc.in); got != tc.want {
				t.Errorf("FromPacked(%#04x) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransparent(t *testing.T) {
	if !FromPacked(0x0000).Transparent() {
		t.Error("all-zero packed color should be transparent")
	}
	if FromPacked(0x8000).Transparent() {
		t.Error("opaque black should not be transparent")
	}
	if FromPacked(0x0001).Transparent() {
		t.Error("non-zero channel should not be transparent")
	}
}

func TestFixed16(t *testing.T) {
	if got := Fixed16(4096).Float(); got != 1.0 {
		t.Errorf("Fixed16(4096).Float() = %v, want 1.0", got)
	}
	if got := Fixed16(2048).Float(); got != 0.5 {
		t.Errorf("Fixed16(2048).Float() = %v, want 0.5", got)
	}
	if got := Fixed16(-4096).Float(); got != -1.0 {
		t.Errorf("Fixed16(-4096).Float() = %v, want -1.0", got)
	}
}

func TestFixedRGB(t *testing.T) {
	c := FixedRGB{R: 4096, G: 4096, B: 4096}
	want := RGBA{255, 255, 255, 255}
	if got := c.RGBA(); got != want {
		t.Errorf("FixedRGB(1.0).RGBA() = %+v, want %+v", got, want)
	}

	// 0.5 * 255 = 127.5 rounds half up to 128.
	half := FixedRGB{R: 2048}
	if got := half.RGBA(); got.R != 128 {
		t.Errorf("FixedRGB(0.5).RGBA().R = %d, want 128", got.R)
	}

	// Values above 1.0 clamp.
	over := FixedRGB{R: 8192}
	if got := over.RGBA(); got.R != 255 {
		t.Errorf("FixedRGB(2.0).RGBA().R = %d, want 255", got.R)
	}
}

func TestRGB8(t *testing.T) {
	c := RGB8{R: 10, G: 20, B: 30}
	if got := c.RGBA(); got != (RGBA{10, 20, 30, 255}) {
		t.Errorf("RGB8.RGBA() = %+v", got)
	}
}

func TestDecodeCLUT(t *testing.T) {
	raw := make([]byte, 256*2)
	for i := 0; i < 256; i++ {
		// Give each entry a distinct red value with the alpha bit set.
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(0x8000|uint16(i%32)))
	}

	clut, err := DecodeCLUT(span.New(raw))
	if err != nil {
		t.Fatalf("DecodeCLUT: %v", err)
	}

	if got, want := clut.Colors[0], FromPacked(0x8000); got != want {
		t.Errorf("entry 0 = %+v, want %+v", got, want)
	}
	if got, want := clut.Colors[17], FromPacked(0x8000|17); got != want {
		t.Errorf("entry 17 = %+v, want %+v", got, want)
	}

	// Bank 1 starts at entry 16.
	if diff := cmp.Diff(clut.Colors[16:32], clut.Bank(1)); diff != "" {
		t.Errorf("Bank(1) mismatch (-want +got):\n%s", diff)
	}

	// Short buffer fails.
	if _, err := DecodeCLUT(span.New(raw[:100])); err == nil {
		t.Error("DecodeCLUT on short buffer should fail")
	}
}
