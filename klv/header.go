// Package klv decodes KLV (Key-Length-Value) framing: the fixed
// 16-byte Universal Label key, the BER-encoded length field, and the
// value bytes it introduces. It knows nothing about what a key means —
// that dispatch lives in ul and bo.
package klv

import (
	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/mxferrors"
)

// KeySize is the fixed width of every KLV key.
const KeySize = 16

// Header is a decoded KLV header: everything needed to locate and
// skip or read the value that follows it.
type Header struct {
	Key    [KeySize]byte
	LSize  uint8  // number of bytes occupied by the length field, 1..9
	VSize  uint64 // length of the value in bytes
	KLSize uint64 // Key+Length size, i.e. the offset of the value from the header's start
}

// ReadHeader decodes one KLV header at the byte source's current
// position, consuming exactly KLSize bytes.
func ReadHeader(r ByteProvider) (Header, error) {
	offset := r.CurrentOffset()

	keyBytes, err := r.ReadBytes(KeySize)
	if err != nil {
		return Header{}, &mxferrors.MalformedKLVError{Offset: offset, Reason: "truncated key: " + err.Error()}
	}

	var hdr Header
	copy(hdr.Key[:], keyBytes)

	firstLen, err := r.ReadBytes(1)
	if err != nil {
		return Header{}, &mxferrors.IoFailureError{Offset: r.CurrentOffset(), Cause: err}
	}

	vsize, lsize, err := decodeBERLength(r, firstLen[0])
	if err != nil {
		return Header{}, err
	}

	hdr.VSize = vsize
	hdr.LSize = lsize
	hdr.KLSize = uint64(KeySize) + uint64(lsize)
	return hdr, nil
}

// decodeBERLength decodes a BER length field whose first byte has
// already been read. Short form: high bit of firstByte clear, value is
// the length itself. Long form: high bit set, low 7 bits give the
// count (1..8) of following big-endian length bytes.
func decodeBERLength(r ByteProvider, firstByte byte) (value uint64, lsize uint8, err error) {
	if firstByte&0x80 == 0 {
		return uint64(firstByte), 1, nil
	}

	numBytes := firstByte & 0x7f
	if numBytes == 0 || numBytes > 8 {
		return 0, 0, &mxferrors.MalformedKLVError{
			Offset: r.CurrentOffset(),
			Reason: "long-form BER length byte count out of range",
		}
	}

	rest, readErr := r.ReadBytes(int(numBytes))
	if readErr != nil {
		return 0, 0, &mxferrors.IoFailureError{Offset: r.CurrentOffset(), Cause: readErr}
	}

	var padded [8]byte
	copy(padded[8-numBytes:], rest)
	return byteorder.U64BE(padded[:]), numBytes + 1, nil
}

// Skip advances the byte source by n bytes, the value-skipping
// operation used whenever a KLV's value is not of interest.
func Skip(r ByteProvider, n uint64) error {
	const maxChunk = 1 << 20
	remaining := n
	for remaining > 0 {
		chunk := remaining
		if chunk > maxChunk {
			chunk = maxChunk
		}
		if err := r.SkipBytes(int(chunk)); err != nil {
			return &mxferrors.IoFailureError{Offset: r.CurrentOffset(), Cause: err}
		}
		remaining -= chunk
	}
	return nil
}

// ReadExact reads exactly n value bytes from the byte source.
func ReadExact(r ByteProvider, n uint64) ([]byte, error) {
	const maxChunk = 1 << 24
	if n <= maxChunk {
		b, err := r.ReadBytes(int(n))
		if err != nil {
			return nil, &mxferrors.IoFailureError{Offset: r.CurrentOffset(), Cause: err}
		}
		return b, nil
	}

	out := make([]byte, 0, n)
	remaining := n
	for remaining > 0 {
		chunk := remaining
		if chunk > maxChunk {
			chunk = maxChunk
		}
		b, err := r.ReadBytes(int(chunk))
		if err != nil {
			return nil, &mxferrors.IoFailureError{Offset: r.CurrentOffset(), Cause: err}
		}
		out = append(out, b...)
		remaining -= chunk
	}
	return out, nil
}

// EncodeBERLength re-encodes a length in canonical minimal BER form:
// one byte (short form) when l < 128, otherwise the shortest long-form
// encoding that fits. Used only by tests (the round-trip property and
// the KLV fixture builders); the core never re-serializes MXF.
func EncodeBERLength(l uint64) []byte {
	if l < 0x80 {
		return []byte{byte(l)}
	}

	var buf [8]byte
	byteorder.PutU64BE(buf[:], l)

	start := 0
	for start < 7 && buf[start] == 0 {
		start++
	}
	n := 8 - start

	out := make([]byte, 1+n)
	out[0] = 0x80 | byte(n)
	copy(out[1:], buf[start:])
	return out
}
