package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// DecodeSetupHeader decodes one complete setup-header packet. packet is
// the fully reassembled packet payload (including the leading \x05 and
// "vorbis" pattern); channels is the audio channel count from the
// identification header, which sizes the mapping coupling fields.
//
// The six record sequences are decoded in bitstream order, each
// preceded by its count field; any record failure aborts the whole
// decode with that record's error. After the trailing framing bit the
// packet must be exhausted apart from byte-alignment padding.
//
// Vorbis I spec, section 4.2.4.
func DecodeSetupHeader(packet []byte, channels int) (*SetupHeader, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}

	r := bits.NewReader(packet)
	if err := readCommonHeader(r, packetTypeSetup); err != nil {
		return nil, err
	}

	h := &SetupHeader{}

	count, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	h.Codebooks = make([]Codebook, count+1)
	for i := range h.Codebooks {
		cb, err := readCodebook(r)
		if err != nil {
			return nil, err
		}
		h.Codebooks[i] = *cb
	}

	count, err = r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	h.TimeDomainTransforms = make([]TimeDomainTransform, count+1)
	for i := range h.TimeDomainTransforms {
		tdt, err := readTimeDomainTransform(r)
		if err != nil {
			return nil, err
		}
		h.TimeDomainTransforms[i] = *tdt
	}

	count, err = r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	h.Floors = make([]Floor, count+1)
	for i := range h.Floors {
		if h.Floors[i], err = readFloor(r); err != nil {
			return nil, err
		}
	}

	count, err = r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	h.Residues = make([]Residue, count+1)
	for i := range h.Residues {
		res, err := readResidue(r)
		if err != nil {
			return nil, err
		}
		h.Residues[i] = *res
	}

	count, err = r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	h.Mappings = make([]Mapping, count+1)
	for i := range h.Mappings {
		m, err := readMapping(r, channels)
		if err != nil {
			return nil, err
		}
		h.Mappings[i] = *m
	}

	count, err = r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	h.Modes = make([]Mode, count+1)
	for i := range h.Modes {
		m, err := readMode(r)
		if err != nil {
			return nil, err
		}
		h.Modes[i] = *m
	}

	framing, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !framing {
		return nil, ErrFramingBit
	}

	// Only padding up to the next byte boundary may remain.
	if remaining := r.BitsRemaining(); remaining >= 8 {
		return nil, fmt.Errorf("%w: %d bits", ErrTrailingData, remaining)
	}

	return h, nil
}
