package vorbis

import (
	"errors"
	"reflect"
	"testing"
)

// setupPacket is a complete two-channel setup header: one codebook, one
// time-domain transform, one floor (type 1), one residue (type 0), one
// mapping with a single coupling step, and one mode.
var setupPacket = []byte{
	5, 118, 111, 114, 98, 105, 115, 0, 66, 67, 86, 1, 0, 8, 0, 0, 0, 49,
	76, 32, 197, 0, 0, 0, 0, 4, 0, 24, 8, 25, 8, 5, 16, 32, 160, 0, 2, 4,
	84, 0, 192, 64, 20, 0, 8, 16, 24, 232, 24, 46, 2, 2, 114, 9, 25, 5, 6,
	133, 99, 194, 57, 233, 180, 0, 0, 0, 0, 0, 0, 2, 0, 192, 0, 0, 0, 0,
	0, 0, 0, 128, 0, 2, 0, 0, 0, 4, 0, 0, 0, 0, 8,
}

func TestDecodeSetupHeader(t *testing.T) {
	h, err := DecodeSetupHeader(setupPacket, 2)
	if err != nil {
		t.Fatalf("DecodeSetupHeader failed: %v", err)
	}

	if len(h.Codebooks) != 1 {
		t.Fatalf("Codebooks: got %d, want 1", len(h.Codebooks))
	}
	cb := h.Codebooks[0]
	if cb.Dimensions != 1 || cb.Entries != 8 {
		t.Errorf("codebook: got %d dimensions, %d entries, want 1 and 8",
			cb.Dimensions, cb.Entries)
	}
	if want := []uint8{1, 3, 4, 7, 2, 5, 6, 7}; !reflect.DeepEqual(cb.CodewordLengths, want) {
		t.Errorf("codebook lengths: got %v, want %v", cb.CodewordLengths, want)
	}

	if len(h.TimeDomainTransforms) != 1 {
		t.Fatalf("TimeDomainTransforms: got %d, want 1", len(h.TimeDomainTransforms))
	}

	if len(h.Floors) != 1 {
		t.Fatalf("Floors: got %d, want 1", len(h.Floors))
	}
	f1, ok := h.Floors[0].(*Floor1)
	if !ok {
		t.Fatalf("floor: expected *Floor1, got %T", h.Floors[0])
	}
	if len(f1.XList) != 19 {
		t.Errorf("floor XList: got %d points, want 19", len(f1.XList))
	}

	if len(h.Residues) != 1 {
		t.Fatalf("Residues: got %d, want 1", len(h.Residues))
	}
	res := h.Residues[0]
	if res.Type != 0 || res.Begin != 0 || res.End != 8 || res.PartitionSize != 4 {
		t.Errorf("residue: got type %d, range [%d, %d), partition size %d",
			res.Type, res.Begin, res.End, res.PartitionSize)
	}
	if res.Classifications != 1 || res.Classbook != 0 {
		t.Errorf("residue: got %d classifications, classbook %d, want 1 and 0",
			res.Classifications, res.Classbook)
	}

	if len(h.Mappings) != 1 {
		t.Fatalf("Mappings: got %d, want 1", len(h.Mappings))
	}
	m := h.Mappings[0]
	if !reflect.DeepEqual(m.Magnitude, []uint8{0}) || !reflect.DeepEqual(m.Angle, []uint8{1}) {
		t.Errorf("mapping coupling: got %v/%v, want [0]/[1]", m.Magnitude, m.Angle)
	}
	if want := []uint8{0, 0}; !reflect.DeepEqual(m.Mux, want) {
		t.Errorf("mapping mux: got %v, want %v", m.Mux, want)
	}
	if want := []Submap{{Floor: 0, Residue: 0}}; !reflect.DeepEqual(m.Submaps, want) {
		t.Errorf("mapping submaps: got %+v, want %+v", m.Submaps, want)
	}

	if len(h.Modes) != 1 {
		t.Fatalf("Modes: got %d, want 1", len(h.Modes))
	}
	if !h.Modes[0].BlockFlag || h.Modes[0].Mapping != 0 {
		t.Errorf("mode: got %+v, want block flag set and mapping 0", h.Modes[0])
	}
}

func TestDecodeSetupHeader_InvalidChannels(t *testing.T) {
	_, err := DecodeSetupHeader(setupPacket, 0)
	if !errors.Is(err, ErrInvalidChannels) {
		t.Fatalf("expected ErrInvalidChannels, got %v", err)
	}
}

func TestDecodeSetupHeader_WrongPacketType(t *testing.T) {
	packet := append([]byte(nil), setupPacket...)
	packet[0] = 3

	_, err := DecodeSetupHeader(packet, 2)
	if !errors.Is(err, ErrPacketType) {
		t.Fatalf("expected ErrPacketType, got %v", err)
	}
}

func TestDecodeSetupHeader_BadPattern(t *testing.T) {
	packet := append([]byte(nil), setupPacket...)
	packet[1] = 'x'

	_, err := DecodeSetupHeader(packet, 2)
	if !errors.Is(err, ErrNotVorbis) {
		t.Fatalf("expected ErrNotVorbis, got %v", err)
	}
}

func TestDecodeSetupHeader_RecordErrorPropagates(t *testing.T) {
	packet := append([]byte(nil), setupPacket...)
	packet[8] = 0 // first codebook sync byte

	_, err := DecodeSetupHeader(packet, 2)
	if !errors.Is(err, ErrCodebookSync) {
		t.Fatalf("expected ErrCodebookSync, got %v", err)
	}
}

func TestDecodeSetupHeader_FramingBit(t *testing.T) {
	packet := append([]byte(nil), setupPacket...)
	packet[len(packet)-1] = 0 // clears the framing bit

	_, err := DecodeSetupHeader(packet, 2)
	if !errors.Is(err, ErrFramingBit) {
		t.Fatalf("expected ErrFramingBit, got %v", err)
	}
}

func TestDecodeSetupHeader_TrailingData(t *testing.T) {
	packet := append([]byte(nil), setupPacket...)
	packet = append(packet, 0)

	_, err := DecodeSetupHeader(packet, 2)
	if !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}

func TestDecodeSetupHeader_Truncated(t *testing.T) {
	_, err := DecodeSetupHeader(setupPacket[:40], 2)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}
