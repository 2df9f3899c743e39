package mesh

import (
	"fmt"

	"fft-map-extractor/internal/span"
)

// HeaderSize is the fixed size of the mesh pointer header: 49 32-bit
// intra-file byte offsets.
const HeaderSize = 196

// Header slot indices. Each named slot holds an absolute byte offset
// into the same resource buffer; zero means the sub-chunk is absent.
// The slots in between are reserved or of unknown purpose and are
// preserved as read.
const (
	slotGeometry      = 0x40 / 4
	slotCLUTColor     = 0x44 / 4
	slotLighting      = 0x64 / 4
	slotTerrain       = 0x68 / 4
	slotTextureAnim   = 0x6C / 4
	slotPaletteAnim   = 0x70 / 4
	slotCLUTGray      = 0x7C / 4
	slotMeshAnimInstr = 0x8C / 4
	slotAnimatedMesh1 = 0x90 / 4
	slotRenderProps   = 0xC0 / 4

	// AnimatedMeshSlots is the number of animated-mesh pointer slots.
	AnimatedMeshSlots = 8
)

// Header is the decoded 196-byte pointer table at the start of every
// mesh resource.
type Header struct {
	Pointers [HeaderSize / 4]uint32
}

func (h *Header) Geometry() uint32      { return h.Pointers[slotGeometry] }
func (h *Header) CLUTColor() uint32     { return h.Pointers[slotCLUTColor] }
func (h *Header) Lighting() uint32      { return h.Pointers[slotLighting] }
func (h *Header) Terrain() uint32       { return h.Pointers[slotTerrain] }
func (h *Header) TextureAnim() uint32   { return h.Pointers[slotTextureAnim] }
func (h *Header) PaletteAnim() uint32   { return h.Pointers[slotPaletteAnim] }
func (h *Header) CLUTGray() uint32      { return h.Pointers[slotCLUTGray] }
func (h *Header) MeshAnimInstr() uint32 { return h.Pointers[slotMeshAnimInstr] }
func (h *Header) RenderProps() uint32   { return h.Pointers[slotRenderProps] }

// AnimatedMesh returns the pointer for animated mesh slot i (0-7).
func (h *Header) AnimatedMesh(i int) uint32 {
	return h.Pointers[slotAnimatedMesh1+i]
}

// DecodeHeader reads the header's 49 pointers in on-disk order from the
// start of the cursor.
func DecodeHeader(s *span.Span) (Header, error) {
	var h Header
	for i := range h.Pointers {
		v, err := s.U32()
		if err != nil {
			return Header{}, fmt.Errorf("mesh: header slot %d: %w", i, err)
		}
		h.Pointers[i] = v
	}
	return h, nil
}
