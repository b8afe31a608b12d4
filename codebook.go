package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
	"github.com/llehouerou/go-vorbis/internal/huffman"
	"github.com/llehouerou/go-vorbis/internal/num"
)

// codebookSync is the fixed pattern opening every codebook record.
var codebookSync = [3]byte{0x42, 0x43, 0x56}

// Codebook is one VQ codebook: a canonical Huffman code over Entries
// symbols, optionally paired with a vector lookup table.
//
// Vorbis I spec, section 3.2.1.
type Codebook struct {
	Dimensions uint16
	Entries    uint32

	// Ordered selects between the two codeword-length encodings;
	// Sparse is only meaningful when Ordered is false.
	Ordered bool
	Sparse  bool

	// CodewordLengths has one entry per symbol. Lengths are in [1, 32];
	// 0 marks an unused sparse entry that has no codeword.
	CodewordLengths []uint8

	// LookupType is 0 (no vector lookup), 1 or 2.
	LookupType uint8

	// LookupTable is nil iff LookupType is 0.
	LookupTable *VectorLookupTable

	tree *huffman.Tree
}

// VectorLookupTable maps codebook symbols to multi-dimensional values.
//
// Vorbis I spec, section 3.2.1 (VQ lookup table decode).
type VectorLookupTable struct {
	MinimumValue  float32
	DeltaValue    float32
	ValueBits     uint8
	SequenceP     bool
	LookupValues  uint32
	Multiplicands []uint32
}

// readCodebook consumes exactly one codebook record.
func readCodebook(r *bits.Reader) (*Codebook, error) {
	for _, want := range codebookSync {
		b, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		if byte(b) != want {
			return nil, ErrCodebookSync
		}
	}

	dimensions, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	entries, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}

	cb := &Codebook{
		Dimensions: uint16(dimensions),
		Entries:    entries,
	}

	cb.Ordered, err = r.ReadBool()
	if err != nil {
		return nil, err
	}
	if cb.Ordered {
		cb.CodewordLengths, err = readOrderedLengths(r, entries)
	} else {
		cb.Sparse, err = r.ReadBool()
		if err != nil {
			return nil, err
		}
		cb.CodewordLengths, err = readUnorderedLengths(r, entries, cb.Sparse)
	}
	if err != nil {
		return nil, err
	}

	lookupType, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	cb.LookupType = uint8(lookupType)
	switch lookupType {
	case 0:
		// No vector lookup table.
	case 1, 2:
		cb.LookupTable, err = readLookupTable(r, uint8(lookupType), entries, dimensions)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrCodebookLookupType, lookupType)
	}

	// Derive the Huffman tree, feeding lengths in ascending symbol
	// order so equal-length symbols take codewords canonically.
	cb.tree = huffman.New()
	for symbol, length := range cb.CodewordLengths {
		if length == 0 {
			continue
		}
		if err := cb.tree.Add(length, uint32(symbol)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCodebookTree, err)
		}
	}

	return cb, nil
}

// readUnorderedLengths reads one 5-bit length per entry. In sparse mode
// each length is preceded by a used flag; unused entries stay 0.
func readUnorderedLengths(r *bits.Reader, entries uint32, sparse bool) ([]uint8, error) {
	lengths := make([]uint8, entries)
	for i := range lengths {
		if sparse {
			used, err := r.ReadBool()
			if err != nil {
				return nil, err
			}
			if !used {
				continue
			}
		}
		length, err := r.ReadUint(5)
		if err != nil {
			return nil, err
		}
		lengths[i] = uint8(length) + 1
	}
	return lengths, nil
}

// readOrderedLengths reads run lengths of consecutive entries sharing a
// codeword length, starting from a 5-bit initial length and increasing
// by one per run. Each run count is read with just enough bits to
// distinguish the entries still unassigned.
func readOrderedLengths(r *bits.Reader, entries uint32) ([]uint8, error) {
	lengths := make([]uint8, 0, entries)

	initial, err := r.ReadUint(5)
	if err != nil {
		return nil, err
	}
	length := uint8(initial) + 1

	var assigned uint32
	for assigned < entries {
		number, err := r.ReadUint(uint(num.Ilog(entries - assigned)))
		if err != nil {
			return nil, err
		}
		assigned += number
		if assigned > entries {
			return nil, fmt.Errorf("%w: %d of %d", ErrCodebookEntryOverflow, assigned, entries)
		}
		for ; number > 0; number-- {
			lengths = append(lengths, length)
		}
		length++
	}
	return lengths, nil
}

func readLookupTable(r *bits.Reader, lookupType uint8, entries, dimensions uint32) (*VectorLookupTable, error) {
	packedMin, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	minimum, err := num.Float32Unpack(packedMin)
	if err != nil {
		return nil, err
	}
	packedDelta, err := r.ReadUint(32)
	if err != nil {
		return nil, err
	}
	delta, err := num.Float32Unpack(packedDelta)
	if err != nil {
		return nil, err
	}
	valueBits, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	sequenceP, err := r.ReadBool()
	if err != nil {
		return nil, err
	}

	t := &VectorLookupTable{
		MinimumValue: minimum,
		DeltaValue:   delta,
		ValueBits:    uint8(valueBits) + 1,
		SequenceP:    sequenceP,
	}
	var lookupValues uint64
	if lookupType == 1 {
		lookupValues = uint64(num.Lookup1Values(entries, dimensions))
	} else {
		lookupValues = uint64(entries) * uint64(dimensions)
	}
	// The multiplicand list must fit in the bits the packet still has;
	// reject a hostile count before allocating for it. The product is
	// computed in uint64 because entries (24 bits) times dimensions
	// (16 bits) does not fit in uint32.
	if lookupValues > uint64(r.BitsRemaining())/uint64(t.ValueBits) {
		return nil, ErrUnexpectedEOF
	}
	t.LookupValues = uint32(lookupValues)

	t.Multiplicands = make([]uint32, t.LookupValues)
	for i := range t.Multiplicands {
		t.Multiplicands[i], err = r.ReadUint(uint(t.ValueBits))
		if err != nil {
			return nil, err
		}
	}
	return t, nil
}
