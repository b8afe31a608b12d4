package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// Header packet types. Every header packet starts with one of these
// followed by the six bytes "vorbis" (Vorbis I spec, section 4.2.1).
const (
	packetTypeIdentification = 1
	packetTypeComment        = 3
	packetTypeSetup          = 5
)

// headerPattern is the common header pattern after the type byte.
var headerPattern = [6]byte{'v', 'o', 'r', 'b', 'i', 's'}

// readCommonHeader consumes the packet type byte and the "vorbis"
// pattern, requiring the given packet type.
func readCommonHeader(r *bits.Reader, packetType uint32) error {
	t, err := r.ReadUint(8)
	if err != nil {
		return err
	}
	if t != packetType {
		return fmt.Errorf("%w: got %d, want %d", ErrPacketType, t, packetType)
	}
	for _, want := range headerPattern {
		b, err := r.ReadUint(8)
		if err != nil {
			return err
		}
		if byte(b) != want {
			return ErrNotVorbis
		}
	}
	return nil
}

// SetupHeader is the decoded third Vorbis header packet: every
// configuration record needed to decode audio packets, in bitstream
// order. All fields are immutable after decode.
type SetupHeader struct {
	Codebooks            []Codebook
	TimeDomainTransforms []TimeDomainTransform
	Floors               []Floor
	Residues             []Residue
	Mappings             []Mapping
	Modes                []Mode
}
