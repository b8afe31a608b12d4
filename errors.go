package vorbis

import (
	"errors"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// ErrUnexpectedEOF is returned when a packet ends in the middle of a
// field. It is the same value the internal bit reader reports, so
// errors.Is works at every layer.
var ErrUnexpectedEOF = bits.ErrUnexpectedEOF

// Common packet header errors.
var (
	// ErrPacketType means the packet type byte did not match the
	// header being decoded (1 = identification, 3 = comment, 5 = setup).
	ErrPacketType = errors.New("vorbis: unexpected packet type")

	// ErrNotVorbis means the "vorbis" pattern after the type byte is
	// missing; the packet does not belong to a Vorbis stream.
	ErrNotVorbis = errors.New("vorbis: missing \"vorbis\" header pattern")

	// ErrFramingBit means a header's trailing framing bit was unset.
	ErrFramingBit = errors.New("vorbis: framing bit unset")

	// ErrTrailingData means the setup header left whole unread bytes in
	// the packet; a conformant header consumes its packet exactly.
	ErrTrailingData = errors.New("vorbis: unread bytes after setup header")
)

// Identification header errors.
var (
	ErrBadVersion        = errors.New("vorbis: unsupported bitstream version")
	ErrInvalidChannels   = errors.New("vorbis: channel count must be positive")
	ErrInvalidSampleRate = errors.New("vorbis: sample rate must be positive")

	// ErrInvalidBlocksize covers blocksizes outside [64, 8192] and
	// blocksize 0 exceeding blocksize 1.
	ErrInvalidBlocksize = errors.New("vorbis: invalid blocksize")
)

// Codebook errors.
var (
	// ErrCodebookSync means a codebook record did not start with the
	// 0x42 0x43 0x56 ("BCV") pattern.
	ErrCodebookSync = errors.New("vorbis: codebook sync pattern mismatch")

	// ErrCodebookEntryOverflow means an ordered codeword-length run
	// assigned more entries than the codebook declared.
	ErrCodebookEntryOverflow = errors.New("vorbis: ordered codeword lengths exceed entry count")

	// ErrCodebookLookupType means the 4-bit lookup type was a reserved
	// value (anything above 2).
	ErrCodebookLookupType = errors.New("vorbis: reserved codebook lookup type")

	// ErrCodebookTree means the codeword lengths do not describe a
	// consistent canonical Huffman code.
	ErrCodebookTree = errors.New("vorbis: codeword lengths not canonical")
)

// Floor errors.
var (
	ErrFloorType = errors.New("vorbis: invalid floor type")

	// ErrFloorNoPartitions means a floor1 record declared zero
	// partitions, leaving its class list empty.
	ErrFloorNoPartitions = errors.New("vorbis: floor1 has no partitions")

	// ErrFloorPoints means the floor1 x_list grew past 65 entries.
	ErrFloorPoints = errors.New("vorbis: floor1 x_list longer than 65 entries")
)

// Residue, mapping, mode and time-domain errors.
var (
	ErrResidueType = errors.New("vorbis: invalid residue type")

	ErrMappingType     = errors.New("vorbis: nonzero mapping type")
	ErrMappingReserved = errors.New("vorbis: mapping reserved field must be zero")

	// ErrCouplingChannel means a polar coupling step named an invalid
	// channel pair: magnitude == angle, or either out of range.
	ErrCouplingChannel = errors.New("vorbis: invalid coupling channel pair")

	// ErrMuxRange means a channel multiplex value referenced a
	// nonexistent submap.
	ErrMuxRange = errors.New("vorbis: channel mux exceeds submap count")

	ErrWindowType    = errors.New("vorbis: nonzero mode window type")
	ErrTransformType = errors.New("vorbis: nonzero mode transform type")

	// ErrTimeTransform means the reserved time-domain transform field
	// was nonzero.
	ErrTimeTransform = errors.New("vorbis: nonzero time-domain transform")
)
