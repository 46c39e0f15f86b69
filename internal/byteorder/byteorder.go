// Package byteorder provides big-endian scalar accessors for the
// fixed-width fields that appear throughout KLV-encoded structural
// metadata: BER length prefixes, local-tag headers, and the scalar
// field values a set decoder pulls out of a value blob.
package byteorder

func U8(b []byte) uint8 { return b[0] }

func U16BE(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}

func PutU16BE(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func U32BE(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func PutU32BE(b []byte, v uint32) {
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func U64BE(b []byte) uint64 {
	return uint64(U32BE(b))<<32 | uint64(U32BE(b[4:]))
}

func PutU64BE(b []byte, v uint64) {
	PutU32BE(b, uint32(v>>32))
	PutU32BE(b[4:], uint32(v))
}

func I32BE(b []byte) int32 { return int32(U32BE(b)) }

func I64BE(b []byte) int64 { return int64(U64BE(b)) }
