package klv_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/byteprovider"
	"github.com/ugparu/mxfheader/klv"
)

func TestReadHeaderShortFormLength(t *testing.T) {
	t.Parallel()

	key := [16]byte{0x06, 0x0E, 0x2B, 0x34, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	b := append(append([]byte{}, key[:]...), 0x05, 'h', 'e', 'l', 'l', 'o')

	r := byteprovider.NewMemoryProvider(b)
	hdr, err := klv.ReadHeader(r)
	require.NoError(t, err)
	require.Equal(t, key, hdr.Key)
	require.Equal(t, uint8(1), hdr.LSize)
	require.Equal(t, uint64(5), hdr.VSize)
	require.Equal(t, uint64(17), hdr.KLSize)

	value, err := klv.ReadExact(r, hdr.VSize)
	require.NoError(t, err)
	require.Equal(t, "hello", string(value))
}

func TestReadHeaderLongFormLength(t *testing.T) {
	t.Parallel()

	key := [16]byte{}
	b := append(append([]byte{}, key[:]...), 0x82, 0x01, 0x00) // long form, 2 length bytes, value 256
	b = append(b, make([]byte, 256)...)

	r := byteprovider.NewMemoryProvider(b)
	hdr, err := klv.ReadHeader(r)
	require.NoError(t, err)
	require.Equal(t, uint8(3), hdr.LSize)
	require.Equal(t, uint64(256), hdr.VSize)
	require.Equal(t, uint64(19), hdr.KLSize)
}

func TestReadHeaderRejectsOversizedLengthCount(t *testing.T) {
	t.Parallel()

	key := make([]byte, 16)
	b := append(key, 0x89) // claims 9 following length bytes, max is 8
	b = append(b, make([]byte, 9)...)

	r := byteprovider.NewMemoryProvider(b)
	_, err := klv.ReadHeader(r)
	require.Error(t, err)
}

func TestSkipAdvancesCursor(t *testing.T) {
	t.Parallel()

	r := byteprovider.NewMemoryProvider(make([]byte, 10))
	require.NoError(t, klv.Skip(r, 4))
	require.Equal(t, int64(4), r.CurrentOffset())
}

func TestBERLengthRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		length        uint64
		encodedLength int
	}{
		{0, 1},
		{1, 1},
		{127, 1},
		{128, 2},
		{1<<16 - 1, 3},
		{1 << 32, 5},
		{1<<56 - 1, 8},
	}

	for _, tc := range cases {
		encoded := klv.EncodeBERLength(tc.length)
		require.Equal(t, 1+tc.encodedLength, len(encoded), "length=%d", tc.length)

		r := byteprovider.NewMemoryProvider(append(append([]byte{}, make([]byte, 16)...), encoded...))

		hdr, err := klv.ReadHeader(r)
		require.NoError(t, err)
		require.Equal(t, tc.length, hdr.VSize, "length=%d", tc.length)
	}
}
