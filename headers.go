package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// IdentificationHeader is the first Vorbis header packet: the stream's
// basic audio parameters. Blocksizes are stored as exponents in the
// packet but exposed here as sample counts.
//
// Vorbis I spec, section 4.2.2.
type IdentificationHeader struct {
	Version        uint32
	Channels       uint8
	SampleRate     uint32
	BitrateMaximum int32
	BitrateNominal int32
	BitrateMinimum int32
	Blocksize0     uint16
	Blocksize1     uint16
}

// CommentHeader is the second Vorbis header packet: the vendor string
// and the user comment list, commonly known as Vorbis comments.
//
// Vorbis I spec, section 5.
type CommentHeader struct {
	Vendor   string
	Comments []string
}

// DecodeIdentificationHeader decodes and validates one identification
// header packet.
func DecodeIdentificationHeader(packet []byte) (*IdentificationHeader, error) {
	r := bits.NewReader(packet)
	if err := readCommonHeader(r, packetTypeIdentification); err != nil {
		return nil, err
	}

	version, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, version)
	}

	channels, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	if channels == 0 {
		return nil, ErrInvalidChannels
	}
	sampleRate, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	if sampleRate == 0 {
		return nil, ErrInvalidSampleRate
	}

	h := &IdentificationHeader{
		Channels:   uint8(channels),
		SampleRate: sampleRate,
	}
	for _, dst := range []*int32{&h.BitrateMaximum, &h.BitrateNominal, &h.BitrateMinimum} {
		v, err := r.ReadUint(32)
		if err != nil {
			return nil, err
		}
		*dst = int32(v)
	}

	// Blocksizes travel as exponents in a shared byte, blocksize 0 in
	// the low nibble.
	exp0, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	exp1, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	h.Blocksize0 = 1 << exp0
	h.Blocksize1 = 1 << exp1
	if h.Blocksize0 < 64 || h.Blocksize0 > 8192 ||
		h.Blocksize1 < 64 || h.Blocksize1 > 8192 ||
		h.Blocksize0 > h.Blocksize1 {
		return nil, fmt.Errorf("%w: %d/%d", ErrInvalidBlocksize, h.Blocksize0, h.Blocksize1)
	}

	framing, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !framing {
		return nil, ErrFramingBit
	}

	return h, nil
}

// DecodeCommentHeader decodes one comment header packet. Comment
// contents are passed through as-is; Vorbis says they are UTF-8 but
// many encoders disagree, so nothing is validated beyond lengths.
func DecodeCommentHeader(packet []byte) (*CommentHeader, error) {
	r := bits.NewReader(packet)
	if err := readCommonHeader(r, packetTypeComment); err != nil {
		return nil, err
	}

	vendor, err := readLengthPrefixed(r)
	if err != nil {
		return nil, err
	}
	h := &CommentHeader{Vendor: vendor}

	count, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	// Cap the initial allocation; a hostile count must not allocate
	// gigabytes before the reads start failing.
	capacity := int(count)
	if capacity > len(packet)/4 {
		capacity = len(packet) / 4
	}
	h.Comments = make([]string, 0, capacity)
	for i := uint32(0); i < count; i++ {
		comment, err := readLengthPrefixed(r)
		if err != nil {
			return nil, err
		}
		h.Comments = append(h.Comments, comment)
	}

	framing, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if !framing {
		return nil, ErrFramingBit
	}

	return h, nil
}

// readLengthPrefixed reads a 32-bit length followed by that many bytes.
func readLengthPrefixed(r *bits.Reader) (string, error) {
	length, err := r.ReadUint(32)
	if err != nil {
		return "", err
	}
	if int(length) > r.BitsRemaining()/8 {
		return "", ErrUnexpectedEOF
	}
	buf := make([]byte, length)
	for i := range buf {
		b, err := r.ReadUint(8)
		if err != nil {
			return "", err
		}
		buf[i] = byte(b)
	}
	return string(buf), nil
}
