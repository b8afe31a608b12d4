package vorbis

import (
	"fmt"

	"github.com/llehouerou/go-vorbis/internal/bits"
	"github.com/llehouerou/go-vorbis/internal/num"
)

// Mapping associates audio channels with submaps and optional polar
// (magnitude/angle) channel coupling. Magnitude and Angle are parallel,
// one pair per coupling step; Mux has one entry per audio channel.
//
// The bitstream's count fields are carried implicitly: the submap count
// is len(Submaps), the coupling step count is len(Magnitude), and the
// mapping type is always zero (the only value that decodes).
//
// Vorbis I spec, section 4.2.4.
type Mapping struct {
	Magnitude []uint8
	Angle     []uint8
	Mux       []uint8
	Submaps   []Submap
}

// Submap names the floor and residue configurations one submap uses.
type Submap struct {
	Floor   uint8
	Residue uint8
}

// readMapping decodes one mapping record. channels is the audio channel
// count from the identification header; it sizes the coupling index
// fields and the mux list.
func readMapping(r *bits.Reader, channels int) (*Mapping, error) {
	mappingType, err := r.ReadUint(16)
	if err != nil {
		return nil, err
	}
	if mappingType != 0 {
		return nil, fmt.Errorf("%w: %d", ErrMappingType, mappingType)
	}

	submaps := uint32(1)
	flag, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if flag {
		v, err := r.ReadUint(4)
		if err != nil {
			return nil, err
		}
		submaps = v + 1
	}

	m := &Mapping{}

	coupled, err := r.ReadBool()
	if err != nil {
		return nil, err
	}
	if coupled {
		steps, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		couplingBits := uint(num.Ilog(uint32(channels) - 1))
		for i := uint32(0); i <= steps; i++ {
			magnitude, angle := uint32(0), uint32(0)
			if couplingBits > 0 {
				magnitude, err = r.ReadUint(couplingBits)
				if err != nil {
					return nil, err
				}
				angle, err = r.ReadUint(couplingBits)
				if err != nil {
					return nil, err
				}
			}
			if magnitude == angle || int(magnitude) >= channels || int(angle) >= channels {
				return nil, fmt.Errorf("%w: magnitude %d, angle %d of %d channels",
					ErrCouplingChannel, magnitude, angle, channels)
			}
			m.Magnitude = append(m.Magnitude, uint8(magnitude))
			m.Angle = append(m.Angle, uint8(angle))
		}
	}

	reserved, err := r.ReadUint(2)
	if err != nil {
		return nil, err
	}
	if reserved != 0 {
		return nil, fmt.Errorf("%w: %d", ErrMappingReserved, reserved)
	}

	m.Mux = make([]uint8, channels)
	if submaps > 1 {
		for i := range m.Mux {
			mux, err := r.ReadUint(4)
			if err != nil {
				return nil, err
			}
			if mux >= submaps {
				return nil, fmt.Errorf("%w: mux %d, %d submaps", ErrMuxRange, mux, submaps)
			}
			m.Mux[i] = uint8(mux)
		}
	}

	m.Submaps = make([]Submap, submaps)
	for i := range m.Submaps {
		// An unused time-configuration placeholder precedes each pair.
		if _, err := r.ReadUint(8); err != nil {
			return nil, err
		}
		floor, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		residue, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		m.Submaps[i] = Submap{Floor: uint8(floor), Residue: uint8(residue)}
	}

	return m, nil
}
