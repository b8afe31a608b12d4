package ogg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// makePage builds a syntactically valid page with a correct checksum.
func makePage(flags byte, seq uint32, lacing []byte, payload []byte) []byte {
	page := make([]byte, 0, HeaderSize+len(lacing)+len(payload))
	header := make([]byte, HeaderSize)
	copy(header, "OggS")
	header[5] = flags
	binary.LittleEndian.PutUint32(header[14:18], 0xCAFE)
	binary.LittleEndian.PutUint32(header[18:22], seq)
	header[26] = byte(len(lacing))
	page = append(page, header...)
	page = append(page, lacing...)
	page = append(page, payload...)

	crc := crcUpdate(0, page)
	binary.LittleEndian.PutUint32(page[22:26], crc)
	return page
}

func TestPackets_SinglePage(t *testing.T) {
	data := makePage(flagFirstPage, 0, []byte{5}, []byte("hello"))

	packets, err := Packets(data)
	if err != nil {
		t.Fatalf("Packets failed: %v", err)
	}
	if len(packets) != 1 || !bytes.Equal(packets[0], []byte("hello")) {
		t.Errorf("packets: got %q", packets)
	}
}

func TestPackets_MultiplePacketsOnePage(t *testing.T) {
	data := makePage(0, 0, []byte{3, 4}, []byte("abcwxyz"))

	packets, err := Packets(data)
	if err != nil {
		t.Fatalf("Packets failed: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("packets: got %d, want 2", len(packets))
	}
	if !bytes.Equal(packets[0], []byte("abc")) || !bytes.Equal(packets[1], []byte("wxyz")) {
		t.Errorf("packets: got %q", packets)
	}
}

func TestPackets_SpanningPacket(t *testing.T) {
	// A 300-byte packet split 255+45 across two pages, followed by a
	// 3-byte packet on the second page.
	long := bytes.Repeat([]byte{0xAB}, 300)
	data := makePage(flagFirstPage, 0, []byte{255}, long[:255])
	page2Payload := append(append([]byte(nil), long[255:]...), "end"...)
	data = append(data, makePage(flagContinued, 1, []byte{45, 3}, page2Payload)...)

	packets, err := Packets(data)
	if err != nil {
		t.Fatalf("Packets failed: %v", err)
	}
	if len(packets) != 2 {
		t.Fatalf("packets: got %d, want 2", len(packets))
	}
	if !bytes.Equal(packets[0], long) {
		t.Errorf("first packet: got %d bytes, want the 300-byte packet", len(packets[0]))
	}
	if !bytes.Equal(packets[1], []byte("end")) {
		t.Errorf("second packet: got %q", packets[1])
	}
}

func TestPackets_ZeroLengthPacket(t *testing.T) {
	data := makePage(0, 0, []byte{0}, nil)

	packets, err := Packets(data)
	if err != nil {
		t.Fatalf("Packets failed: %v", err)
	}
	if len(packets) != 1 || len(packets[0]) != 0 {
		t.Errorf("packets: got %q, want one empty packet", packets)
	}
}

func TestPackets_ChecksumMismatch(t *testing.T) {
	data := makePage(0, 0, []byte{5}, []byte("hello"))
	data[len(data)-1] ^= 0xFF

	_, err := Packets(data)
	if !errors.Is(err, ErrChecksum) {
		t.Fatalf("expected ErrChecksum, got %v", err)
	}
}

func TestPackets_ContinuityBroken(t *testing.T) {
	// The first page leaves a packet open but the second is not marked
	// as continued.
	data := makePage(0, 0, []byte{255}, bytes.Repeat([]byte{1}, 255))
	data = append(data, makePage(0, 1, []byte{2}, []byte("ab"))...)

	_, err := Packets(data)
	if !errors.Is(err, ErrContinuity) {
		t.Fatalf("expected ErrContinuity, got %v", err)
	}
}

func TestPackets_UnexpectedContinuation(t *testing.T) {
	data := makePage(flagContinued, 0, []byte{2}, []byte("ab"))

	_, err := Packets(data)
	if !errors.Is(err, ErrContinuity) {
		t.Fatalf("expected ErrContinuity, got %v", err)
	}
}

func TestPackets_EndsMidPacket(t *testing.T) {
	data := makePage(0, 0, []byte{255}, bytes.Repeat([]byte{1}, 255))

	_, err := Packets(data)
	if !errors.Is(err, ErrContinuity) {
		t.Fatalf("expected ErrContinuity, got %v", err)
	}
}

func TestPackets_PageErrorPropagates(t *testing.T) {
	_, err := Packets([]byte("not an ogg stream, just prose padding"))
	if !errors.Is(err, ErrCapturePattern) {
		t.Fatalf("expected ErrCapturePattern, got %v", err)
	}
}

func TestPackets_ReferencePage(t *testing.T) {
	packets, err := Packets(refPage)
	if err != nil {
		t.Fatalf("Packets failed: %v", err)
	}
	if len(packets) != 1 {
		t.Fatalf("packets: got %d, want 1", len(packets))
	}
	if len(packets[0]) != 30 {
		t.Errorf("packet: got %d bytes, want 30", len(packets[0]))
	}
}
