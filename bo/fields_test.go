package bo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/internal/byteorder"
)

func TestReadFieldTriplesParsesSequentialTags(t *testing.T) {
	t.Parallel()

	value := []byte{
		0x3C, 0x0A, 0x00, 0x02, 0xAA, 0xBB, // tag 0x3C0A, len 2
		0x3B, 0x05, 0x00, 0x01, 0x01, // tag 0x3B05, len 1
	}

	triples, err := bo.ReadFieldTriples(value)
	require.NoError(t, err)
	require.Len(t, triples, 2)
	require.Equal(t, uint16(0x3C0A), triples[0].Tag)
	require.Equal(t, []byte{0xAA, 0xBB}, triples[0].Value)
	require.Equal(t, uint16(0x3B05), triples[1].Tag)
}

func TestReadFieldTriplesRejectsTruncatedHeader(t *testing.T) {
	t.Parallel()

	_, err := bo.ReadFieldTriples([]byte{0x01, 0x02})
	require.Error(t, err)
}

func TestReadFieldTriplesRejectsTruncatedValue(t *testing.T) {
	t.Parallel()

	_, err := bo.ReadFieldTriples([]byte{0x01, 0x02, 0x00, 0x10, 0x00})
	require.Error(t, err)
}

func TestParseRationalRejectsZeroDenominator(t *testing.T) {
	t.Parallel()

	b := make([]byte, 8)
	byteorder.PutU32BE(b, 24)
	byteorder.PutU32BE(b[4:], 0)

	_, err := bo.ParseRational(b)
	require.Error(t, err)
}

func TestParseRationalDecodesEditRate(t *testing.T) {
	t.Parallel()

	b := make([]byte, 8)
	byteorder.PutU32BE(b, 24000)
	byteorder.PutU32BE(b[4:], 1001)

	r, err := bo.ParseRational(b)
	require.NoError(t, err)
	require.Equal(t, int32(24000), r.Numerator)
	require.Equal(t, int32(1001), r.Denominator)
}

func TestParseStrongRefBatchDecodesEntries(t *testing.T) {
	t.Parallel()

	b := make([]byte, 8+2*16)
	byteorder.PutU32BE(b, 2)
	byteorder.PutU32BE(b[4:], 16)
	b[8] = 0x01
	b[8+16] = 0x02

	refs, err := bo.ParseStrongRefBatch(b)
	require.NoError(t, err)
	require.Len(t, refs, 2)
	require.Equal(t, byte(0x01), refs[0].Bytes()[0])
	require.Equal(t, byte(0x02), refs[1].Bytes()[0])
}

func TestParseStrongRefBatchRejectsWrongItemSize(t *testing.T) {
	t.Parallel()

	b := make([]byte, 8)
	byteorder.PutU32BE(b, 0)
	byteorder.PutU32BE(b[4:], 8)

	_, err := bo.ParseStrongRefBatch(b)
	require.Error(t, err)
}

func TestParseUTF16BEStringStopsAtNulPadding(t *testing.T) {
	t.Parallel()

	// "Hi" followed by NUL padding.
	b := []byte{0x00, 'H', 0x00, 'i', 0x00, 0x00, 0x00, 0x00}

	s, err := bo.ParseUTF16BEString(b)
	require.NoError(t, err)
	require.Equal(t, "Hi", s)
}

func TestParseUTF16BEStringRejectsOddLength(t *testing.T) {
	t.Parallel()

	_, err := bo.ParseUTF16BEString([]byte{0x00})
	require.Error(t, err)
}

func TestParseTimestampScalesMillisecondTick(t *testing.T) {
	t.Parallel()

	b := []byte{0x07, 0xE8, 0x0C, 0x19, 0x0A, 0x1E, 0x00, 50}

	ts, err := bo.ParseTimestamp(b)
	require.NoError(t, err)
	require.Equal(t, uint16(2024), ts.Year)
	require.Equal(t, uint8(12), ts.Month)
	require.Equal(t, uint16(200), ts.Millisecond)
}
