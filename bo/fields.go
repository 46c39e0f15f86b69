// Package bo implements the Set Decoder: for every structural
// metadata KLV, a per-class decoder walks its local-tag/length/value
// triples and populates a typed "byte object" — the raw decoded form
// of the set, immutable once built. One file per set class, in the
// style of the teacher's one-file-per-box mp4io layer.
package bo

import (
	"fmt"

	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/klv"
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// FieldTriple is one (local_tag, length, value) triple inside a
// structural set's KLV value.
type FieldTriple struct {
	Tag   uint16
	Value []byte
}

// ReadFieldTriples decodes value as a sequence of local-tag-prefixed
// fields: 2-byte big-endian tag, 2-byte big-endian length, then that
// many value bytes, repeated until value is exhausted.
func ReadFieldTriples(value []byte) ([]FieldTriple, error) {
	var triples []FieldTriple
	offset := 0
	for offset < len(value) {
		if offset+4 > len(value) {
			return nil, &mxferrors.FieldDecodeFailureError{Reason: "truncated local-tag header"}
		}
		tag := byteorder.U16BE(value[offset:])
		length := int(byteorder.U16BE(value[offset+2:]))
		offset += 4
		if offset+length > len(value) {
			return nil, &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("truncated field value for tag 0x%04x", tag)}
		}
		triples = append(triples, FieldTriple{Tag: tag, Value: value[offset : offset+length]})
		offset += length
	}
	return triples, nil
}

// ResolvedField is one field triple after its local tag has been
// resolved through the partition's Primer Pack. Per-class decoders
// switch on Key, the resolved UL, never on Tag directly — a local
// tag's meaning is only fixed within the partition that assigned it
// (ST 377-1 §4.2.3), and the dynamic-range tags (>= 0x8000) mean
// nothing at all outside that partition. Key is the zero UL when the
// Primer Pack had no entry for Tag.
type ResolvedField struct {
	Key   ul.UL
	Tag   uint16
	Value []byte
}

// Rational is a pair (Numerator, Denominator), e.g. an edit rate or a
// sampling rate.
type Rational struct {
	Numerator   int32
	Denominator int32
}

// ParseRational decodes an 8-byte (num:i32, denom:i32) pair. A zero
// denominator is rejected.
func ParseRational(b []byte) (Rational, error) {
	if len(b) != 8 {
		return Rational{}, &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("rational field is %d bytes, want 8", len(b))}
	}
	r := Rational{
		Numerator:   byteorder.I32BE(b[0:]),
		Denominator: byteorder.I32BE(b[4:]),
	}
	if r.Denominator == 0 {
		return Rational{}, &mxferrors.FieldDecodeFailureError{Reason: "rational denominator is zero"}
	}
	return r, nil
}

// Timestamp is a decoded SMPTE timestamp field.
type Timestamp struct {
	Year                      uint16
	Month, Day                uint8
	Hour, Minute, Second      uint8
	Millisecond               uint16
}

// ParseTimestamp decodes the 8-byte SMPTE timestamp layout: year
// (u16be), month, day, hour, minute, second, and a tick count in
// 4-millisecond units (milliseconds / 4) scaled up to milliseconds.
func ParseTimestamp(b []byte) (Timestamp, error) {
	if len(b) != 8 {
		return Timestamp{}, &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("timestamp field is %d bytes, want 8", len(b))}
	}
	return Timestamp{
		Year:        byteorder.U16BE(b[0:]),
		Month:       b[2],
		Day:         b[3],
		Hour:        b[4],
		Minute:      b[5],
		Second:      b[6],
		Millisecond: uint16(b[7]) * 4,
	}, nil
}

// ParseU8/U16/U32/U64/I32/I64/Bool decode fixed-width big-endian
// scalars, failing on a size mismatch.

func ParseU8(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, sizeErr("u8", 1, len(b))
	}
	return b[0], nil
}

func ParseBool(b []byte) (bool, error) {
	v, err := ParseU8(b)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func ParseU16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, sizeErr("u16", 2, len(b))
	}
	return byteorder.U16BE(b), nil
}

func ParseU32(b []byte) (uint32, error) {
	if len(b) != 4 {
		return 0, sizeErr("u32", 4, len(b))
	}
	return byteorder.U32BE(b), nil
}

func ParseU64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, sizeErr("u64", 8, len(b))
	}
	return byteorder.U64BE(b), nil
}

func ParseI32(b []byte) (int32, error) {
	if len(b) != 4 {
		return 0, sizeErr("i32", 4, len(b))
	}
	return byteorder.I32BE(b), nil
}

func ParseI64(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, sizeErr("i64", 8, len(b))
	}
	return byteorder.I64BE(b), nil
}

func sizeErr(kind string, want, got int) error {
	return &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("%s field is %d bytes, want %d", kind, got, want)}
}

// ParseUL decodes a 16-byte Universal Label / AUID field.
func ParseUL(b []byte) (ul.UL, error) {
	if len(b) != ul.Size {
		return ul.UL{}, sizeErr("UL", ul.Size, len(b))
	}
	return ul.FromBytes(b), nil
}

// ParseMXFUid decodes a UID/UMID field: 16 bytes for an instance UID
// or AUID, 32 bytes for a full UMID. Either width is accepted and the
// full bytes are preserved — canonicalization to 16 bytes happens only
// at cross-match time, in mxfuid.Canonical16.
func ParseMXFUid(b []byte) (mxfuid.MXFUid, error) {
	if len(b) != 16 && len(b) != 32 {
		return mxfuid.Zero, &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("UID field is %d bytes, want 16 or 32", len(b))}
	}
	return mxfuid.New(b), nil
}

// ParseStrongRefBatch decodes a strong-reference batch/array:
// count:u32, item_size:u32, then count*item_size bytes of 16-byte
// instance UIDs.
func ParseStrongRefBatch(b []byte) ([]mxfuid.MXFUid, error) {
	if len(b) < 8 {
		return nil, &mxferrors.FieldDecodeFailureError{Reason: "strong-ref batch header truncated"}
	}
	count := byteorder.U32BE(b[0:])
	itemSize := byteorder.U32BE(b[4:])
	if itemSize != 16 {
		return nil, &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("strong-ref batch item size is %d, want 16", itemSize)}
	}
	want := 8 + int(count)*16
	if len(b) != want {
		return nil, &mxferrors.FieldDecodeFailureError{Reason: fmt.Sprintf("strong-ref batch is %d bytes, want %d for %d entries", len(b), want, count)}
	}
	refs := make([]mxfuid.MXFUid, count)
	for i := 0; i < int(count); i++ {
		start := 8 + i*16
		refs[i] = mxfuid.New(b[start : start+16])
	}
	return refs, nil
}

// ParseUTF16BEString decodes a length-prefixed (by the enclosing
// field's own length, not an inner count) UTF-16BE string.
func ParseUTF16BEString(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", &mxferrors.FieldDecodeFailureError{Reason: "UTF-16BE string has odd byte length"}
	}
	runes := make([]uint16, 0, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		u := byteorder.U16BE(b[i:])
		if u == 0 {
			break // MXF strings are frequently NUL-padded to a fixed field width
		}
		runes = append(runes, u)
	}
	return decodeUTF16(runes), nil
}

// decodeUTF16 converts UTF-16 code units (including surrogate pairs)
// to a Go string.
func decodeUTF16(units []uint16) string {
	out := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		r := units[i]
		if r >= 0xD800 && r <= 0xDBFF && i+1 < len(units) {
			r2 := units[i+1]
			if r2 >= 0xDC00 && r2 <= 0xDFFF {
				out = append(out, ((rune(r)-0xD800)<<10|(rune(r2)-0xDC00))+0x10000)
				i++
				continue
			}
		}
		out = append(out, rune(r))
	}
	return string(out)
}

// ReadStructuralSetValue reads the full value of a structural
// metadata KLV (the caller has already classified the key) so the
// per-class decoder can walk it as field triples.
func ReadStructuralSetValue(hdr klv.Header, r klv.ByteProvider) ([]byte, error) {
	return klv.ReadExact(r, hdr.VSize)
}
