package bits

import (
	"errors"
	"testing"
)

func TestReadUint_LSBFirstOrder(t *testing.T) {
	// 0xB4 = 1011_0100: LSB-first bit sequence is 0,0,1,0,1,1,0,1
	r := NewReader([]byte{0xB4})

	got, err := r.ReadUint(3)
	if err != nil {
		t.Fatalf("ReadUint(3) error: %v", err)
	}
	if got != 0b100 {
		t.Errorf("ReadUint(3) = %#b, want 0b100", got)
	}

	got, err = r.ReadUint(5)
	if err != nil {
		t.Fatalf("ReadUint(5) error: %v", err)
	}
	if got != 0b10110 {
		t.Errorf("ReadUint(5) = %#b, want 0b10110", got)
	}
}

func TestReadUint_AcrossByteBoundary(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		n    uint
		want uint32
	}{
		{"16 bits little-endian", []byte{0x01, 0x00}, 16, 1},
		{"16 bits high byte", []byte{0x00, 0x01}, 16, 256},
		{"24 bits", []byte{0x08, 0x00, 0x00}, 24, 8},
		{"32 bits", []byte{0x78, 0x56, 0x34, 0x12}, 32, 0x12345678},
		{"12 bits spanning bytes", []byte{0xFF, 0x0F}, 12, 0x0FFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.data)
			got, err := r.ReadUint(tt.n)
			if err != nil {
				t.Fatalf("ReadUint(%d) error: %v", tt.n, err)
			}
			if got != tt.want {
				t.Errorf("ReadUint(%d) = %#x, want %#x", tt.n, got, tt.want)
			}
		})
	}
}

func TestReadUint_UnalignedSpan(t *testing.T) {
	// Read 4 bits then 16 bits crossing three bytes.
	r := NewReader([]byte{0x5A, 0xC3, 0x0F})
	if _, err := r.ReadUint(4); err != nil {
		t.Fatal(err)
	}
	got, err := r.ReadUint(16)
	if err != nil {
		t.Fatal(err)
	}
	// Remaining bits LSB-first: 0101 (rest of 0x5A), 11000011, 1111
	want := uint32(0x5)<<0 | uint32(0xC3)<<4 | uint32(0xF)<<12
	if got != want {
		t.Errorf("ReadUint(16) = %#x, want %#x", got, want)
	}
}

func TestReadUint_EndOfData(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadUint(8); err != nil {
		t.Fatalf("first read failed: %v", err)
	}
	_, err := r.ReadUint(1)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadUint past end = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReadUint_PartialOverrun(t *testing.T) {
	// 8 bits available, 9 requested: the read must fail whole.
	r := NewReader([]byte{0xFF})
	_, err := r.ReadUint(9)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("ReadUint(9) = %v, want ErrUnexpectedEOF", err)
	}
	// And the reader stays exhausted afterwards.
	if _, err := r.ReadUint(1); !errors.Is(err, ErrUnexpectedEOF) {
		t.Error("reader should remain exhausted after overrun")
	}
}

func TestReadUint_EmptyBuffer(t *testing.T) {
	for _, data := range [][]byte{nil, {}} {
		r := NewReader(data)
		if _, err := r.ReadUint(1); !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("ReadUint on %v buffer = %v, want ErrUnexpectedEOF", data, err)
		}
	}
}

func TestReadUint_WidthOutOfRange(t *testing.T) {
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	for _, n := range []uint{0, 33} {
		if _, err := r.ReadUint(n); err == nil {
			t.Errorf("ReadUint(%d) should fail", n)
		}
	}
}

func TestReadBool(t *testing.T) {
	// 0x05 = 0000_0101: bits LSB-first are 1,0,1,0,...
	r := NewReader([]byte{0x05})
	want := []bool{true, false, true, false}
	for i, w := range want {
		got, err := r.ReadBool()
		if err != nil {
			t.Fatalf("ReadBool #%d error: %v", i, err)
		}
		if got != w {
			t.Errorf("ReadBool #%d = %v, want %v", i, got, w)
		}
	}
}

func TestBitsReadAndRemaining(t *testing.T) {
	r := NewReader([]byte{0x00, 0x00})
	if r.BitsRead() != 0 || r.BitsRemaining() != 16 {
		t.Fatalf("fresh reader: read=%d remaining=%d", r.BitsRead(), r.BitsRemaining())
	}
	if _, err := r.ReadUint(5); err != nil {
		t.Fatal(err)
	}
	if r.BitsRead() != 5 {
		t.Errorf("BitsRead = %d, want 5", r.BitsRead())
	}
	if r.BitsRemaining() != 11 {
		t.Errorf("BitsRemaining = %d, want 11", r.BitsRemaining())
	}
}
