package header_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/byteprovider"
	"github.com/ugparu/mxfheader/header"
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/ul"
)

// minimalSets builds a single Preface/ContentStorage/MaterialPackage
// triple with no tracks: the smallest graph header.New accepts.
func minimalSets(t *testing.T) [][]byte {
	t.Helper()

	u0, u1, u2 := uid16(0x01), uid16(0x02), uid16(0x03)

	preface := buildSet(t, ul.SetClassPreface,
		fieldTriple(ul.InstanceUIDLocalTag, u0),
		fieldTriple(0x3B08, u1), // primary package
		fieldTriple(0x3B03, u2), // content storage
		fieldTriple(0x3B02, ts8()),
		fieldTriple(0x3B05, u16be(1)),
	)

	materialPackage := buildSet(t, ul.SetClassMaterialPackage,
		fieldTriple(ul.InstanceUIDLocalTag, u1),
		fieldTriple(0x4401, umid32(0x11)),
	)

	contentStorage := buildSet(t, ul.SetClassContentStorage,
		fieldTriple(ul.InstanceUIDLocalTag, u2),
		fieldTriple(0x1901, strongRefBatch(u1)),
	)

	return [][]byte{preface, materialPackage, contentStorage}
}

func TestNewParsesMinimalValidHeader(t *testing.T) {
	t.Parallel()

	data := buildHeaderBytes(0, minimalSets(t))
	r := byteprovider.NewMemoryProvider(data)

	hp, err := header.New(r)
	require.NoError(t, err)
	require.NotNil(t, hp.Preface())
	require.Len(t, hp.MaterialPackages(), 1)
	require.Len(t, hp.ContentStorageList(), 1)
	require.Equal(t, int64(0), hp.EssenceDuration())
}

func TestNewRejectsNonZeroOffset(t *testing.T) {
	t.Parallel()

	data := buildHeaderBytes(0, minimalSets(t))
	r := byteprovider.NewMemoryProvider(data)
	require.NoError(t, r.SkipBytes(4))

	_, err := header.New(r)
	require.Error(t, err)
	var offsetErr *mxferrors.UnexpectedOffsetError
	require.ErrorAs(t, err, &offsetErr)
}

func TestNewRejectsMultiplePrefaces(t *testing.T) {
	t.Parallel()

	sets := minimalSets(t)

	secondPreface := buildSet(t, ul.SetClassPreface,
		fieldTriple(ul.InstanceUIDLocalTag, uid16(0x09)),
		fieldTriple(0x3B02, ts8()),
		fieldTriple(0x3B05, u16be(1)),
	)
	sets = append(sets, secondPreface)

	data := buildHeaderBytes(0, sets)
	r := byteprovider.NewMemoryProvider(data)

	_, err := header.New(r)
	require.Error(t, err)
	var constructionErr *mxferrors.ConstructionFailedError
	require.ErrorAs(t, err, &constructionErr)
}

func TestNewToleratesOneFillBeforePrimerButNotTwo(t *testing.T) {
	t.Parallel()

	sets := minimalSets(t)

	accepted := buildHeaderBytes(1, sets)
	hp, err := header.New(byteprovider.NewMemoryProvider(accepted))
	require.NoError(t, err)
	require.NotNil(t, hp.Preface())

	rejected := buildHeaderBytes(2, sets)
	_, err = header.New(byteprovider.NewMemoryProvider(rejected))
	require.Error(t, err)
	var missingPrimerErr *mxferrors.MissingPrimerError
	require.ErrorAs(t, err, &missingPrimerErr)
}

func TestNewDetectsDependencyCycle(t *testing.T) {
	t.Parallel()

	u0, u1, u2, u3, u4 := uid16(0x01), uid16(0x02), uid16(0x03), uid16(0x04), uid16(0x05)

	preface := buildSet(t, ul.SetClassPreface,
		fieldTriple(ul.InstanceUIDLocalTag, u0),
		fieldTriple(0x3B08, u1),
		fieldTriple(0x3B03, u2),
		fieldTriple(0x3B02, ts8()),
		fieldTriple(0x3B05, u16be(1)),
	)
	materialPackage := buildSet(t, ul.SetClassMaterialPackage,
		fieldTriple(ul.InstanceUIDLocalTag, u1),
		fieldTriple(0x4401, umid32(0x11)),
		fieldTriple(0x4403, strongRefBatch(u3)),
	)
	contentStorage := buildSet(t, ul.SetClassContentStorage,
		fieldTriple(ul.InstanceUIDLocalTag, u2),
		fieldTriple(0x1901, strongRefBatch(u1)),
	)
	// TimelineTrack(u3) -> Sequence(u4) -> TimelineTrack(u3): a 2-cycle.
	timelineTrack := buildSet(t, ul.SetClassTimelineTrack,
		fieldTriple(ul.InstanceUIDLocalTag, u3),
		fieldTriple(0x4803, u4),
	)
	sequence := buildSet(t, ul.SetClassSequence,
		fieldTriple(ul.InstanceUIDLocalTag, u4),
		fieldTriple(0x0202, i64be(0)),
		fieldTriple(0x1001, strongRefBatch(u3)),
	)

	data := buildHeaderBytes(0, [][]byte{preface, materialPackage, contentStorage, timelineTrack, sequence})
	r := byteprovider.NewMemoryProvider(data)

	_, err := header.New(r)
	require.Error(t, err)
	var cyclicErr *mxferrors.CyclicGraphError
	require.ErrorAs(t, err, &cyclicErr)
}
