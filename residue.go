package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// Residue configures one residue vector coder. Books has one row per
// classification and eight columns, one per cascade stage; a column
// holds -1 when the corresponding cascade bit is clear and no book is
// coded for that stage.
//
// Vorbis I spec, section 8.6.1.
type Residue struct {
	Type            uint16
	Begin           uint32
	End             uint32
	PartitionSize   uint32
	Classifications uint8
	Classbook       uint8
	Cascade         []uint8
	Books           [][8]int16
}

func readResidue(r *bits.Reader) (*Residue, error) {
	residueType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if residueType > 2 {
		return nil, fmt.Errorf("%w: %d", ErrResidueType, residueType)
	}

	begin, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	end, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	partitionSize, err := r.ReadUint(24)
	if err != nil {
		return nil, err
	}
	classifications, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	classbook, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}

	res := &Residue{
		Type:            uint16(residueType),
		Begin:           begin,
		End:             end,
		PartitionSize:   partitionSize + 1,
		Classifications: uint8(classifications) + 1,
		Classbook:       uint8(classbook),
	}

	// Each cascade byte arrives as a 3-bit low part plus an optional
	// 5-bit high part.
	res.Cascade = make([]uint8, res.Classifications)
	for i := range res.Cascade {
		low, err := r.ReadUint(3)
		if err != nil {
			return nil, err
		}
		flag, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		var high uint32
		if flag {
			high, err = r.ReadUint(5)
			if err != nil {
				return nil, err
			}
		}
		res.Cascade[i] = uint8(high*8 + low)
	}

	res.Books = make([][8]int16, res.Classifications)
	for i, cascade := range res.Cascade {
		for j := 0; j < 8; j++ {
			if cascade&(1<<j) == 0 {
				res.Books[i][j] = -1
				continue
			}
			book, err := r.ReadUint(8)
			if err != nil {
				return nil, err
			}
			res.Books[i][j] = int16(book)
		}
	}

	return res, nil
}
