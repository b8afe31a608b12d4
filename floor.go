package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// Floor is one floor-curve configuration: either *Floor0 (LPC-style
// spectral envelope) or *Floor1 (piecewise-linear curve).
type Floor interface {
	// FloorType reports 0 or 1.
	FloorType() uint16
}

// Floor0 is the legacy LSP floor configuration.
//
// Vorbis I spec, section 6.2.
type Floor0 struct {
	Order           uint8
	Rate            uint16
	BarkMapSize     uint16
	AmplitudeBits   uint8
	AmplitudeOffset uint8
	Books           []uint8
}

// FloorType implements Floor.
func (*Floor0) FloorType() uint16 { return 0 }

// Floor1 is the piecewise-linear floor configuration. XList holds the
// curve's control-point frequencies: [0, 2^Rangebits] followed by the
// per-partition values in decode order. The bitstream's partition count
// is carried implicitly as len(PartitionClassList).
//
// Vorbis I spec, section 7.2.2.
type Floor1 struct {
	PartitionClassList []uint8
	MaximumClass       uint8
	Classes            []Floor1Class
	Multiplier         uint8
	Rangebits          uint8
	XList              []uint32
}

// FloorType implements Floor.
func (*Floor1) FloorType() uint16 { return 1 }

// Floor1Class describes one partition class. Masterbook is only
// meaningful when Subclasses is nonzero. SubclassBooks entries are
// stored bytes minus one; -1 means "no book" for that subclass.
type Floor1Class struct {
	Dimensions    uint8
	Subclasses    uint8
	Masterbook    uint8
	SubclassBooks []int16
}

// maxFloor1Points bounds the floor1 x_list (Vorbis I spec, section
// 7.2.2: at most 65 curve control points).
const maxFloor1Points = 65

// readFloor reads the 16-bit type tag and dispatches.
func readFloor(r *bits.Reader) (Floor, error) {
	floorType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	switch floorType {
	case 0:
		return readFloor0(r)
	case 1:
		return readFloor1(r)
	default:
		return nil, fmt.Errorf("%w: %d", ErrFloorType, floorType)
	}
}

// readFloor0 is a flat run of fixed-width fields followed by the book
// list.
func readFloor0(r *bits.Reader) (*Floor0, error) {
	order, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	rate, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	barkMapSize, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	amplitudeBits, err := r.ReadUint(6)
	if err != nil {
		return nil, err
	}
	amplitudeOffset, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}
	numBooks, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}

	f := &Floor0{
		Order:           uint8(order),
		Rate:            uint16(rate),
		BarkMapSize:     uint16(barkMapSize),
		AmplitudeBits:   uint8(amplitudeBits),
		AmplitudeOffset: uint8(amplitudeOffset),
	}
	f.Books = make([]uint8, numBooks+1)
	for i := range f.Books {
		book, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		f.Books[i] = uint8(book)
	}
	return f, nil
}

func readFloor1(r *bits.Reader) (*Floor1, error) {
	partitions, err := r.ReadUint(5)
	if err != nil {
		return nil, err
	}
	if partitions == 0 {
		// The class list would be empty and its maximum undefined.
		return nil, ErrFloorNoPartitions
	}

	f := &Floor1{PartitionClassList: make([]uint8, partitions)}
	for i := range f.PartitionClassList {
		class, err := r.ReadUint(4)
		if err != nil {
			return nil, err
		}
		f.PartitionClassList[i] = uint8(class)
		if uint8(class) > f.MaximumClass {
			f.MaximumClass = uint8(class)
		}
	}

	f.Classes = make([]Floor1Class, f.MaximumClass+1)
	for i := range f.Classes {
		if err := readFloor1Class(r, &f.Classes[i]); err != nil {
			return nil, err
		}
	}

	multiplier, err := r.ReadUint(2)
	if err != nil {
		return nil, err
	}
	f.Multiplier = uint8(multiplier) + 1

	rangebits, err := r.ReadUint(4)
	if err != nil {
		return nil, err
	}
	f.Rangebits = uint8(rangebits)

	f.XList = append(f.XList, 0, 1<<rangebits)
	for _, class := range f.PartitionClassList {
		// Classes covers every index the class list can reference, and
		// Dimensions is stored biased by one, so it is never zero here.
		for j := uint8(0); j < f.Classes[class].Dimensions; j++ {
			// With zero range bits every curve point occupies no bits
			// and decodes as zero.
			var v uint32
			if rangebits > 0 {
				if v, err = r.ReadUint(uint(rangebits)); err != nil {
					return nil, err
				}
			}
			f.XList = append(f.XList, v)
		}
	}
	if len(f.XList) > maxFloor1Points {
		return nil, fmt.Errorf("%w: %d", ErrFloorPoints, len(f.XList))
	}

	return f, nil
}

func readFloor1Class(r *bits.Reader, c *Floor1Class) error {
	dimensions, err := r.ReadUint(3)
	if err != nil {
		return err
	}
	c.Dimensions = uint8(dimensions) + 1

	subclasses, err := r.ReadUint(2)
	if err != nil {
		return err
	}
	c.Subclasses = uint8(subclasses)
	if c.Subclasses > 0 {
		masterbook, err := r.ReadUint(8)
		if err != nil {
			return err
		}
		c.Masterbook = uint8(masterbook)
	}

	c.SubclassBooks = make([]int16, 1<<c.Subclasses)
	for i := range c.SubclassBooks {
		book, err := r.ReadUint(8)
		if err != nil {
			return err
		}
		// Stored biased by one; zero decodes to the -1 "no book"
		// sentinel, which is legal.
		c.SubclassBooks[i] = int16(book) - 1
	}
	return nil
}
