// Package vorbis decodes the header packets of a Vorbis I audio
// bitstream, in particular the setup header: the codebook, floor,
// residue, mapping and mode configuration a decoder needs before it can
// touch any audio packet.
//
// # Basic Usage
//
// Vorbis packets normally arrive inside an Ogg container. Use the ogg
// subpackage to reassemble packets, then decode the three header
// packets in order:
//
//	packets, err := ogg.Packets(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, err := vorbis.DecodeIdentificationHeader(packets[0])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	comments, err := vorbis.DecodeCommentHeader(packets[1])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	setup, err := vorbis.DecodeSetupHeader(packets[2], int(id.Channels))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = comments
//	_ = setup // hand to the synthesis stage
//
// # Scope
//
// The package performs structural parsing and validation only. Audio
// packet decode (floor curve application, residue unpacking, inverse
// MDCT, windowing) is not implemented here.
//
// # Error Handling
//
// A Vorbis setup header is not self-correcting: any malformed field
// invalidates the whole header. Decode functions therefore fail on the
// first bad field and never return a partial result. All failure
// conditions are sentinel errors in this package (or ErrUnexpectedEOF
// for truncated packets) and can be tested with errors.Is.
//
// # Thread Safety
//
// Decode functions share no mutable state; distinct packets may be
// decoded concurrently. Decoded headers are immutable and safe for
// concurrent reads.
//
// # Reference
//
// Vorbis I specification: https://xiph.org/vorbis/doc/Vorbis_I_spec.html
package vorbis
