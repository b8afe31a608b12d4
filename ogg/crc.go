package ogg

// Ogg uses CRC-32 with polynomial 0x04C11DB7, zero initial value and no
// bit reflection on input or output (RFC 3533, section 6). hash/crc32
// only implements the reflected variant, so the table lives here.

const crcPoly = 0x04C11DB7

var crcTable = makeCRCTable()

func makeCRCTable() [256]uint32 {
	var table [256]uint32
	for i := range table {
		r := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if r&0x80000000 != 0 {
				r = r<<1 ^ crcPoly
			} else {
				r <<= 1
			}
		}
		table[i] = r
	}
	return table
}

func crcUpdate(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	return crc
}
