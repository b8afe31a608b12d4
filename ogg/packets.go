package ogg

import "fmt"

// Packets reassembles the logical packets of a physical Ogg stream held
// entirely in data. Lacing values of 255 mean the packet continues in
// the next segment (possibly on the next page, marked with the
// continued-packet flag); any smaller value terminates a packet.
//
// Every page's CRC is verified. The data must end on a packet boundary.
func Packets(data []byte) ([][]byte, error) {
	var (
		packets [][]byte
		partial []byte
		open    bool // a packet is mid-assembly across a page boundary
	)

	for len(data) > 0 {
		page, rest, err := DecodePage(data)
		if err != nil {
			return nil, err
		}
		if !page.VerifyCRC() {
			return nil, fmt.Errorf("%w: page %d", ErrChecksum, page.SequenceNumber)
		}
		if page.Continued() != open {
			return nil, fmt.Errorf("%w: page %d", ErrContinuity, page.SequenceNumber)
		}

		payload := page.Payload
		for _, lacing := range page.SegmentTable {
			partial = append(partial, payload[:lacing]...)
			payload = payload[lacing:]
			if lacing < 255 {
				packets = append(packets, partial)
				partial = nil
			}
		}
		// A page whose last lacing value is 255 leaves its final packet
		// open; partial then still holds those bytes.
		open = partial != nil
		data = rest
	}

	if open {
		return nil, fmt.Errorf("%w: stream ends mid-packet", ErrContinuity)
	}
	return packets, nil
}
