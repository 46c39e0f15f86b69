package header_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/klv"
	"github.com/ugparu/mxfheader/ul"
)

func klvBytes(key ul.UL, value []byte) []byte {
	length := klv.EncodeBERLength(uint64(len(value)))
	out := make([]byte, 0, ul.Size+len(length)+len(value))
	out = append(out, key[:]...)
	out = append(out, length...)
	out = append(out, value...)
	return out
}

func fieldTriple(tag uint16, value []byte) []byte {
	out := make([]byte, 4+len(value))
	byteorder.PutU16BE(out, tag)
	byteorder.PutU16BE(out[2:], uint16(len(value)))
	copy(out[4:], value)
	return out
}

// uid16 returns a 16-byte instance UID with its last byte set to seed,
// distinguishing fixture objects from each other.
func uid16(seed byte) []byte {
	b := make([]byte, 16)
	b[15] = seed
	return b
}

// umid32 returns a 32-byte package UMID with its last byte set to
// seed.
func umid32(seed byte) []byte {
	b := make([]byte, 32)
	b[31] = seed
	return b
}

func ts8() []byte { return make([]byte, 8) }

func u32be(v uint32) []byte {
	b := make([]byte, 4)
	byteorder.PutU32BE(b, v)
	return b
}

func u16be(v uint16) []byte {
	b := make([]byte, 2)
	byteorder.PutU16BE(b, v)
	return b
}

func i64be(v int64) []byte {
	b := make([]byte, 8)
	byteorder.PutU64BE(b, uint64(v))
	return b
}

func strongRefBatch(refs ...[]byte) []byte {
	out := make([]byte, 8)
	byteorder.PutU32BE(out, uint32(len(refs)))
	byteorder.PutU32BE(out[4:], 16)
	for _, r := range refs {
		out = append(out, r...)
	}
	return out
}

func buildSet(t *testing.T, class ul.SetClass, fields ...[]byte) []byte {
	t.Helper()
	key, ok := ul.KeyForClass(class)
	require.True(t, ok)
	var value []byte
	for _, f := range fields {
		value = append(value, f...)
	}
	return klvBytes(key, value)
}

// primerPackEntries maps every local tag the header package's fixtures
// use to the field UL a real Primer Pack would resolve it to.
var primerPackEntries = map[uint16]ul.UL{
	0x3B08: ul.FieldPrefacePrimaryPackage,
	0x3B03: ul.FieldPrefaceContentStorage,
	0x3B02: ul.FieldPrefaceLastModifiedDate,
	0x3B05: ul.FieldPrefaceVersion,
	0x4401: ul.FieldPackageUID,
	0x1901: ul.FieldContentStoragePackages,
	0x4403: ul.FieldPackageTracks,
	0x4803: ul.FieldTrackSequence,
	0x0202: ul.FieldStructuralComponentDuration,
	0x1001: ul.FieldSequenceStructuralComps,
}

func primerPackValue() []byte {
	out := make([]byte, 8)
	byteorder.PutU32BE(out, uint32(len(primerPackEntries)))
	byteorder.PutU32BE(out[4:], 18)
	for tag, key := range primerPackEntries {
		entry := make([]byte, 18)
		byteorder.PutU16BE(entry, tag)
		copy(entry[2:], key[:])
		out = append(out, entry...)
	}
	return out
}

// buildHeaderBytes assembles a complete header-partition byte stream:
// a Partition Pack whose HeaderByteCount exactly spans fillCount Fill
// Items, the Primer Pack, and every set in sets, followed by nothing
// else — the scan loop in header.New is bounded by that count alone.
func buildHeaderBytes(fillCount int, sets [][]byte) []byte {
	primerKLV := klvBytes(ul.PrimerPackKey, primerPackValue())
	fillKLV := klvBytes(ul.FillItemKey, nil)

	var structural []byte
	for _, s := range sets {
		structural = append(structural, s...)
	}

	var preamble []byte
	for i := 0; i < fillCount; i++ {
		preamble = append(preamble, fillKLV...)
	}

	headerByteCount := uint64(len(preamble) + len(primerKLV) + len(structural))

	ppValue := make([]byte, 88)
	byteorder.PutU64BE(ppValue[32:], headerByteCount)
	ppKLV := klvBytes(ul.PartitionPackKey, ppValue)

	out := append([]byte{}, ppKLV...)
	out = append(out, preamble...)
	out = append(out, primerKLV...)
	out = append(out, structural...)
	return out
}
