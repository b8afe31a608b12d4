// Package num holds the numeric helpers shared by setup-header decoding
// and floor-curve synthesis: bit-length math, the packed float format,
// VQ lookup cardinality, neighbor search and integer line rendering.
package num

import (
	"errors"
	"fmt"
	"math"
	mbits "math/bits"
)

// ErrNonFinite is returned by Float32Unpack when the decoded value
// overflows to infinity. The packed exponent range allows values far
// beyond float32, and such a codebook is undecodable.
var ErrNonFinite = errors.New("num: unpacked float is not finite")

// Ilog returns the number of bits needed to represent x, and 0 for x=0.
// Count fields in the setup grammar are read with exactly
// Ilog(remaining) bits (Vorbis I spec, section 9.2.1).
func Ilog(x uint32) uint32 {
	return uint32(mbits.Len32(x))
}

// Float32Unpack decodes the Vorbis packed 32-bit float format: bit 31 is
// the sign, bits 30..21 a biased exponent, bits 20..0 the integer
// mantissa; the value is mantissa * 2^(exponent-788).
//
// Vorbis I spec, section 9.2.2.
func Float32Unpack(x uint32) (float32, error) {
	mantissa := float64(x & 0x001FFFFF)
	exponent := int((x & 0x7FE00000) >> 21)
	if x&0x80000000 != 0 {
		mantissa = -mantissa
	}
	f := float32(math.Ldexp(mantissa, exponent-788))
	if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
		return 0, fmt.Errorf("%w: %#08x", ErrNonFinite, x)
	}
	return f, nil
}

// Lookup1Values returns the greatest n with (n+1)^dimensions <= entries:
// the value count of a lookup-type-1 table (Vorbis I spec, section
// 9.2.3). dimensions=0 is degenerate and yields 0.
func Lookup1Values(entries, dimensions uint32) uint32 {
	if dimensions == 0 {
		return 0
	}
	var n uint32
	for pow(uint64(n+1), dimensions) <= uint64(entries) {
		n++
	}
	return n
}

// pow is integer exponentiation saturating at MaxUint64, which is far
// beyond any 24-bit entry count.
func pow(base uint64, exp uint32) uint64 {
	result := uint64(1)
	for ; exp > 0; exp-- {
		hi, lo := mbits.Mul64(result, base)
		if hi != 0 {
			return math.MaxUint64
		}
		result = lo
	}
	return result
}

// LowNeighbor returns the index of the element of v[:x] with the
// greatest value that is still less than v[x]. Floor1 curve synthesis
// uses it to find the left anchor of each new control point.
func LowNeighbor(v []int32, x int) (int, error) {
	if x >= len(v) {
		return 0, fmt.Errorf("num: neighbor position %d out of range [0, %d)", x, len(v))
	}
	best := -1
	for i, val := range v[:x] {
		if val < v[x] && (best < 0 || val > v[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("num: no value less than v[%d]=%d", x, v[x])
	}
	return best, nil
}

// HighNeighbor is LowNeighbor's mirror: the index of the element of
// v[:x] with the least value still greater than v[x].
func HighNeighbor(v []int32, x int) (int, error) {
	if x >= len(v) {
		return 0, fmt.Errorf("num: neighbor position %d out of range [0, %d)", x, len(v))
	}
	best := -1
	for i, val := range v[:x] {
		if val > v[x] && (best < 0 || val < v[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("num: no value greater than v[%d]=%d", x, v[x])
	}
	return best, nil
}

// RenderPoint evaluates the line from (x0,y0) to (x1,y1) at x using the
// truncating integer arithmetic mandated for floor1 curves (Vorbis I
// spec, section 9.2.6). x must lie on a line with x0 != x1.
func RenderPoint(x0, y0, x1, y1, x int32) int32 {
	dy := y1 - y0
	adx := x1 - x0
	ady := dy
	if ady < 0 {
		ady = -ady
	}
	off := ady * (x - x0) / adx
	if dy < 0 {
		return y0 - off
	}
	return y0 + off
}

// RenderLine rasterizes the line from (x0,y0) to (x1,y1) into
// v[x0:x1], Bresenham style (Vorbis I spec, section 9.2.7). The
// endpoints must satisfy 0 <= x0 <= x1 <= len(v); anything else is a
// caller error, reported rather than panicking so a hostile x_list
// cannot take the process down.
func RenderLine(x0, y0, x1, y1 int32, v []int32) error {
	if x0 > x1 || x0 < 0 || int(x1) > len(v) {
		return fmt.Errorf("num: line (%d,%d)-(%d,%d) outside buffer of %d", x0, y0, x1, y1, len(v))
	}
	if x0 == x1 {
		return nil
	}

	dy := y1 - y0
	adx := x1 - x0
	base := dy / adx
	sy := base + 1
	if dy < 0 {
		sy = base - 1
	}
	abase := base
	if abase < 0 {
		abase = -abase
	}
	ady := dy
	if ady < 0 {
		ady = -ady
	}
	ady -= abase * adx

	y := y0
	v[x0] = y
	var err int32
	for x := x0 + 1; x < x1; x++ {
		err += ady
		if err >= adx {
			err -= adx
			y += sy
		} else {
			y += base
		}
		v[x] = y
	}
	return nil
}
