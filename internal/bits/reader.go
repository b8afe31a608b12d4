// Package bits reads Vorbis-ordered bit fields from a byte buffer.
package bits

import "errors"

// ErrUnexpectedEOF is returned when a read runs past the end of the
// buffer. It is distinct from every grammar-level error so callers can
// tell a truncated packet from a malformed one.
var ErrUnexpectedEOF = errors.New("bits: unexpected end of data")

// Reader reads unsigned integers of 1-32 bits from a byte buffer.
//
// Vorbis packs fields least-significant-bit first within each byte
// (Vorbis I spec, section 2), the opposite of the MSB-first order used
// by ADTS and most other codec bitstreams. The reader keeps a single bit
// cursor; once bits are consumed they are never re-read.
type Reader struct {
	buffer []byte
	pos    int // bit position from the start of buffer
}

// NewReader creates a Reader positioned at the first bit of data.
func NewReader(data []byte) *Reader {
	return &Reader{buffer: data}
}

// ReadUint reads n bits (1 <= n <= 32) as an unsigned integer.
// The first bit read becomes the least significant bit of the result.
func (r *Reader) ReadUint(n uint) (uint32, error) {
	if n < 1 || n > 32 {
		return 0, errors.New("bits: read width out of range [1, 32]")
	}
	if r.pos+int(n) > len(r.buffer)*8 {
		// Park the cursor at the end so later reads fail too.
		r.pos = len(r.buffer) * 8
		return 0, ErrUnexpectedEOF
	}

	var v uint32
	for i := uint(0); i < n; i++ {
		byteIdx := r.pos >> 3
		bitIdx := uint(r.pos & 7)
		if r.buffer[byteIdx]&(1<<bitIdx) != 0 {
			v |= 1 << i
		}
		r.pos++
	}
	return v, nil
}

// ReadBool reads a single bit as a flag.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint(1)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.pos
}

// BitsRemaining returns the number of unread bits left in the buffer.
func (r *Reader) BitsRemaining() int {
	return len(r.buffer)*8 - r.pos
}
