package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
)

// TimeDomainTransform is a placeholder left over from Vorbis drafts;
// the 16-bit field must read zero. It still participates in the setup
// grammar, so it is decoded like any other record.
//
// Vorbis I spec, section 4.2.4.
type TimeDomainTransform struct {
	Reserved uint16
}

func readTimeDomainTransform(r *bits.Reader) (*TimeDomainTransform, error) {
	reserved, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if reserved != 0 {
		return nil, fmt.Errorf("%w: %d", ErrTimeTransform, reserved)
	}
	return &TimeDomainTransform{}, nil
}
