package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/cache"
	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/klv"
	"github.com/ugparu/mxfheader/mxferrors"
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

func uid16(seed byte) []byte {
	b := make([]byte, 16)
	b[15] = seed
	return b
}

func umid32(seed byte) []byte {
	b := make([]byte, 32)
	b[31] = seed
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

// primerPackEntries maps every local tag these fixtures use to the
// field UL a real Primer Pack would resolve it to.
var primerPackEntries = map[uint16]ul.UL{
	0x3B08: ul.FieldPrefacePrimaryPackage,
	0x3B03: ul.FieldPrefaceContentStorage,
	0x3B02: ul.FieldPrefaceLastModifiedDate,
	0x3B05: ul.FieldPrefaceVersion,
	0x4401: ul.FieldPackageUID,
	0x1901: ul.FieldContentStoragePackages,
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

// minimalHeaderBytes builds the smallest header partition header.New
// accepts: a single Preface/MaterialPackage/ContentStorage triple.
func minimalHeaderBytes(t *testing.T) []byte {
	t.Helper()

	u0, u1, u2 := uid16(0x01), uid16(0x02), uid16(0x03)

	preface := buildSet(t, ul.SetClassPreface,
		fieldTriple(ul.InstanceUIDLocalTag, u0),
		fieldTriple(0x3B08, u1),
		fieldTriple(0x3B03, u2),
		fieldTriple(0x3B02, make([]byte, 8)),
		fieldTriple(0x3B05, []byte{0x00, 0x01}),
	)
	materialPackage := buildSet(t, ul.SetClassMaterialPackage,
		fieldTriple(ul.InstanceUIDLocalTag, u1),
		fieldTriple(0x4401, umid32(0x11)),
	)
	contentStorage := buildSet(t, ul.SetClassContentStorage,
		fieldTriple(ul.InstanceUIDLocalTag, u2),
		fieldTriple(0x1901, strongRefBatch(u1)),
	)

	primerKLV := klvBytes(ul.PrimerPackKey, primerPackValue())
	structural := append(append(append([]byte{}, preface...), materialPackage...), contentStorage...)
	headerByteCount := uint64(len(primerKLV) + len(structural))

	ppValue := make([]byte, 88)
	byteorder.PutU64BE(ppValue[32:], headerByteCount)
	ppKLV := klvBytes(ul.PartitionPackKey, ppValue)

	out := append([]byte{}, ppKLV...)
	out = append(out, primerKLV...)
	out = append(out, structural...)
	return out
}

func TestParseCachesByDigest(t *testing.T) {
	t.Parallel()

	data := minimalHeaderBytes(t)
	c := cache.New(0)

	first, err := c.Parse(data)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, 1, c.Len())

	second, err := c.Parse(append([]byte{}, data...))
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, c.Len())
}

func TestParseDistinctBytesProduceDistinctEntries(t *testing.T) {
	t.Parallel()

	data := minimalHeaderBytes(t)
	trailingFillData := append(append([]byte{}, data...), klvBytes(ul.FillItemKey, nil)...)

	c := cache.New(0)

	hp1, err := c.Parse(data)
	require.NoError(t, err)
	hp2, err := c.Parse(trailingFillData)
	require.NoError(t, err)

	require.NotSame(t, hp1, hp2)
	require.Equal(t, 2, c.Len())
}

func TestParseRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	c := cache.New(0)
	_, err := c.Parse(nil)
	require.Error(t, err)
	var emptyErr *mxferrors.EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}

func TestParseEvictsOldestWhenOverCapacity(t *testing.T) {
	t.Parallel()

	base := minimalHeaderBytes(t)
	c := cache.New(1)

	first, err := c.Parse(base)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	second, err := c.Parse(append(append([]byte{}, base...), klvBytes(ul.FillItemKey, nil)...))
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())
	require.NotSame(t, first, second)

	// The first digest was evicted: re-parsing it must produce a fresh
	// HeaderPartition rather than returning the evicted pointer.
	third, err := c.Parse(base)
	require.NoError(t, err)
	require.NotSame(t, first, third)
}
