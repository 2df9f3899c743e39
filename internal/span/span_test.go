package span

import (
	"errors"
	"testing"
)

// Raw bytes covering every fixed-width type, little-endian.
var testData = []byte{
	0x42,                   // u8 66
	0xFF,                   // u8 255
	0x80,                   // i8 -128
	0x7F,                   // i8 127
	0x34, 0x12,             // u16 4660
	0xFF, 0xFF,             // u16 65535
	0x00, 0x80,             // i16 -32768
	0xFF, 0x7F,             // i16 32767
	0x78, 0x56, 0x34, 0x12, // u32 305419896
	0xFF, 0xFF, 0xFF, 0xFF, // u32 4294967295
	0x00, 0x00, 0x00, 0x80, // i32 -2147483648
	0xFF, 0xFF, 0xFF, 0x7F, // i32 2147483647
}

func TestReadU8(t *testing.T) {
	s := New(testData)

	v, err := s.U8()
	if err != nil {
		t.Fatalf("U8: %v", err)
	}
	if v != 66 || s.Offset() != 1 {
		t.Errorf("got %d at offset %d, want 66 at 1", v, s.Offset())
	}

	v, err = s.U8()
	if err != nil {
		t.Fatalf("U8: %v", err)
	}
	if v != 255 || s.Offset() != 2 {
		t.Errorf("got %d at offset %d, want 255 at 2", v, s.Offset())
	}
}

func TestReadI8(t *testing.T) {
	s := New(testData)
	if err := s.Seek(2); err != nil {
		t.Fatal(err)
	}

	v, err := s.I8()
	if err != nil {
		t.Fatalf("I8: %v", err)
	}
	if v != -128 || s.Offset() != 3 {
		t.Errorf("got %d at offset %d, want -128 at 3", v, s.Offset())
	}

	v, err = s.I8()
	if err != nil {
		t.Fatalf("I8: %v", err)
	}
	if v != 127 || s.Offset() != 4 {
		t.Errorf("got %d at offset %d, want 127 at 4", v, s.Offset())
	}
}

func TestReadU16(t *testing.T) {
	s := New(testData)
	if err := s.Seek(4); err != nil {
		t.Fatal(err)
	}

	v, err := s.U16()
	if err != nil {
		t.Fatalf("U16: %v", err)
	}
	if v != 4660 || s.Offset() != 6 {
		t.Errorf("got %d at offset %d, want 4660 at 6", v, s.Offset())
	}

	v, err = s.U16()
	if err != nil {
		t.Fatalf("U16: %v", err)
	}
	if v != 65535 || s.Offset() != 8 {
		t.Errorf("got %d at offset %d, want 65535 at 8", v, s.Offset())
	}
}

func TestReadI16(t *testing.T) {
	s := New(testData)
	if err := s.Seek(8); err != nil {
		t.Fatal(err)
	}

	v, err := s.I16()
	if err != nil {
		t.Fatalf("I16: %v", err)
	}
	if v != -32768 || s.Offset() != 10 {
		t.Errorf("got %d at offset %d, want -32768 at 10", v, s.Offset())
	}

	v, err = s.I16()
	if err != nil {
		t.Fatalf("I16: %v", err)
	}
	if v != 32767 || s.Offset() != 12 {
		t.Errorf("got %d at offset %d, want 32767 at 12", v, s.Offset())
	}
}

func TestReadU32(t *testing.T) {
	s := New(testData)
	if err := s.Seek(12); err != nil {
		t.Fatal(err)
	}

	v, err := s.U32()
	if err != nil {
		t.Fatalf("U32: %v", err)
	}
	if v != 305419896 || s.Offset() != 16 {
		t.Errorf("got %d at offset %d, want 305419896 at 16", v, s.Offset())
	}

	v, err = s.U32()
	if err != nil {
		t.Fatalf("U32: %v", err)
	}
	if v != 4294967295 || s.Offset() != 20 {
		t.Errorf("got %d at offset %d, want 4294967295 at 20", v, s.Offset())
	}
}

func TestReadI32(t *testing.T) {
	s := New(testData)
	if err := s.Seek(20); err != nil {
		t.Fatal(err)
	}

	v, err := s.I32()
	if err != nil {
		t.Fatalf("I32: %v", err)
	}
	if v != -2147483648 || s.Offset() != 24 {
		t.Errorf("got %d at offset %d, want -2147483648 at 24", v, s.Offset())
	}

	v, err = s.I32()
	if err != nil {
		t.Fatalf("I32: %v", err)
	}
	if v != 2147483647 || s.Offset() != 28 {
		t.Errorf("got %d at offset %d, want 2147483647 at 28", v, s.Offset())
	}
}

func TestReadBytes(t *testing.T) {
	s := New(testData)

	b, err := s.Bytes(4)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	want := []byte{66, 255, 128, 127}
	for i := range want {
		if b[i] != want[i] {
			t.Errorf("byte %d: got %d, want %d", i, b[i], want[i])
		}
	}
	if s.Offset() != 4 {
		t.Errorf("offset after Bytes(4) = %d, want 4", s.Offset())
	}

	// Returned slice is a copy, not a view.
	b[0] = 0
	if testData[0] != 0x42 {
		t.Error("Bytes returned a view of the source buffer")
	}
}

func TestOutOfBounds(t *testing.T) {
	s := New([]byte{0x01})

	if _, err := s.U16(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("U16 on 1-byte span: got %v, want ErrOutOfBounds", err)
	}
	// A failed read must not move the cursor.
	if s.Offset() != 0 {
		t.Errorf("offset moved to %d on failed read", s.Offset())
	}

	if err := s.Seek(2); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Seek(2) on 1-byte span: got %v, want ErrOutOfBounds", err)
	}
	if err := s.Seek(1); err != nil {
		t.Errorf("Seek(len) should succeed: %v", err)
	}
	if _, err := s.U8(); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("U8 at end of span: got %v, want ErrOutOfBounds", err)
	}
}

func TestBytesOverLimit(t *testing.T) {
	s := New(make([]byte, MaxTransfer+1))
	if _, err := s.Bytes(MaxTransfer + 1); err == nil {
		t.Error("Bytes over MaxTransfer should fail")
	}
	if _, err := s.Bytes(MaxTransfer); err != nil {
		t.Errorf("Bytes at MaxTransfer should succeed: %v", err)
	}
}
