package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// Mode selects a mapping and the block-size flag for an audio packet.
// WindowType and TransformType must be zero in Vorbis I; they are kept
// for completeness.
//
// Vorbis I spec, section 4.2.4.
type Mode struct {
	BlockFlag     bool
	WindowType    uint16
	TransformType uint16
	Mapping       uint8
}

func readMode(r *bits.Reader) (*Mode, error) {
	blockFlag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	windowType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if windowType != 0 {
		return nil, fmt.Errorf("%w: %d", ErrWindowType, windowType)
	}
	transformType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if transformType != 0 {
		return nil, fmt.Errorf("%w: %d", ErrTransformType, transformType)
	}
	mapping, err := r.ReadUint(8)
	if err != nil {
		return nil, err
	}

	return &Mode{
		BlockFlag: blockFlag,
		Mapping:   uint8(mapping),
	}, nil
}
