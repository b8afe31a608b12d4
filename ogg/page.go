// Package ogg parses the Ogg page container that carries Vorbis
// packets: capture-pattern framing, the lacing (segment) table, CRC-32
// page checksums and packet reassembly across page boundaries.
//
// Reference: RFC 3533.
package ogg

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the fixed page header size before the segment table.
const HeaderSize = 27

// MaxSegments is the segment table size limit; one page carries at most
// 255 segments of at most 255 bytes each.
const MaxSegments = 255

var capturePattern = [4]byte{'O', 'g', 'g', 'S'}

var (
	// ErrCapturePattern means the data does not start with "OggS".
	ErrCapturePattern = errors.New("ogg: capture pattern not found")

	// ErrVersion means the stream structure version byte was nonzero.
	ErrVersion = errors.New("ogg: unsupported stream structure version")

	// ErrTruncatedPage means the buffer ended inside a page.
	ErrTruncatedPage = errors.New("ogg: truncated page")

	// ErrChecksum means a page failed CRC verification.
	ErrChecksum = errors.New("ogg: page checksum mismatch")

	// ErrContinuity means the continued-packet flags do not line up
	// across pages, or the stream ended mid-packet.
	ErrContinuity = errors.New("ogg: packet continuation broken")
)

// Header-type flag bits.
const (
	flagContinued = 0x01
	flagFirstPage = 0x02
	flagLastPage  = 0x04
)

// Page is one decoded Ogg page. Payload aliases the input buffer; it is
// not copied.
type Page struct {
	Version         uint8
	Flags           uint8
	GranulePosition uint64
	SerialNumber    uint32
	SequenceNumber  uint32
	Checksum        uint32
	SegmentTable    []byte
	Payload         []byte

	raw []byte // full page bytes, for CRC verification
}

// Continued reports whether the page starts with the tail of a packet
// begun on the previous page.
func (p *Page) Continued() bool { return p.Flags&flagContinued != 0 }

// FirstPage reports the beginning-of-stream flag.
func (p *Page) FirstPage() bool { return p.Flags&flagFirstPage != 0 }

// LastPage reports the end-of-stream flag.
func (p *Page) LastPage() bool { return p.Flags&flagLastPage != 0 }

// DecodePage decodes one page from the front of data and returns the
// remaining bytes. The checksum field is read but not verified; call
// VerifyCRC for that.
func DecodePage(data []byte) (*Page, []byte, error) {
	if len(data) < HeaderSize {
		return nil, nil, ErrTruncatedPage
	}
	if [4]byte(data[:4]) != capturePattern {
		return nil, nil, ErrCapturePattern
	}
	if data[4] != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrVersion, data[4])
	}

	p := &Page{
		Version:         data[4],
		Flags:           data[5],
		GranulePosition: binary.LittleEndian.Uint64(data[6:14]),
		SerialNumber:    binary.LittleEndian.Uint32(data[14:18]),
		SequenceNumber:  binary.LittleEndian.Uint32(data[18:22]),
		Checksum:        binary.LittleEndian.Uint32(data[22:26]),
	}

	segments := int(data[26])
	if len(data) < HeaderSize+segments {
		return nil, nil, ErrTruncatedPage
	}
	p.SegmentTable = data[HeaderSize : HeaderSize+segments]

	payloadLen := 0
	for _, s := range p.SegmentTable {
		payloadLen += int(s)
	}
	end := HeaderSize + segments + payloadLen
	if len(data) < end {
		return nil, nil, ErrTruncatedPage
	}
	p.Payload = data[HeaderSize+segments : end]
	p.raw = data[:end]

	return p, data[end:], nil
}

// VerifyCRC recomputes the page checksum (with the checksum bytes
// zeroed, per RFC 3533 section 6) and compares it to the stored value.
func (p *Page) VerifyCRC() bool {
	crc := crcUpdate(0, p.raw[:22])
	crc = crcUpdate(crc, []byte{0, 0, 0, 0})
	crc = crcUpdate(crc, p.raw[26:])
	return crc == p.Checksum
}
