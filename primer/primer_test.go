package primer_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/primer"
	"github.com/ugparu/mxfheader/ul"
)

func entryBytes(tag uint16, label ul.UL) []byte {
	out := make([]byte, 18)
	byteorder.PutU16BE(out, tag)
	copy(out[2:], label[:])
	return out
}

func TestDecodeBuildsLookupTable(t *testing.T) {
	t.Parallel()

	label := ul.UL{0x06, 0x0E, 0x2B, 0x34}

	value := make([]byte, 0, 8+18)
	header := make([]byte, 8)
	byteorder.PutU32BE(header, 1)
	byteorder.PutU32BE(header[4:], 18)
	value = append(value, header...)
	value = append(value, entryBytes(0x3C0A, label)...)

	table, err := primer.Decode(value)
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	got, ok := table.Resolve(0x3C0A)
	require.True(t, ok)
	require.Equal(t, label, got)

	_, ok = table.Resolve(0x9999)
	require.False(t, ok)
}

func TestDecodeRejectsWrongItemSize(t *testing.T) {
	t.Parallel()

	header := make([]byte, 8)
	byteorder.PutU32BE(header, 0)
	byteorder.PutU32BE(header[4:], 16)

	_, err := primer.Decode(header)
	require.Error(t, err)
}

func TestDecodeRejectsDuplicateLocalTag(t *testing.T) {
	t.Parallel()

	label := ul.UL{0x01}

	header := make([]byte, 8)
	byteorder.PutU32BE(header, 2)
	byteorder.PutU32BE(header[4:], 18)

	value := append([]byte{}, header...)
	value = append(value, entryBytes(0x3C0A, label)...)
	value = append(value, entryBytes(0x3C0A, label)...)

	_, err := primer.Decode(value)
	require.Error(t, err)
}

func TestDecodeRejectsTruncatedBatch(t *testing.T) {
	t.Parallel()

	header := make([]byte, 8)
	byteorder.PutU32BE(header, 1)
	byteorder.PutU32BE(header[4:], 18)

	_, err := primer.Decode(header)
	require.Error(t, err)
}
