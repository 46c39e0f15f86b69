package header_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ugparu/mxfheader/byteprovider"
	"github.com/ugparu/mxfheader/header"
	"github.com/ugparu/mxfheader/ul"
)

// TestEssenceDurationTakesMaxAcrossTracks builds two TimelineTracks —
// one whose Sequence plays two 24-sample SourceClips back to back,
// one whose Sequence plays a single 48-sample SourceClip — and checks
// that EssenceDuration reports the longer of the two (48), not their
// sum.
func TestEssenceDurationTakesMaxAcrossTracks(t *testing.T) {
	t.Parallel()

	u0, u1, u2 := uid16(0x01), uid16(0x02), uid16(0x03)
	track10, seq20, clip30, clip31 := uid16(0x10), uid16(0x20), uid16(0x30), uid16(0x31)
	track11, seq21, clip32 := uid16(0x11), uid16(0x21), uid16(0x32)

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
		fieldTriple(0x4403, strongRefBatch(track10, track11)),
	)
	contentStorage := buildSet(t, ul.SetClassContentStorage,
		fieldTriple(ul.InstanceUIDLocalTag, u2),
		fieldTriple(0x1901, strongRefBatch(u1)),
	)

	timelineTrack10 := buildSet(t, ul.SetClassTimelineTrack,
		fieldTriple(ul.InstanceUIDLocalTag, track10),
		fieldTriple(0x4803, seq20),
	)
	sequence20 := buildSet(t, ul.SetClassSequence,
		fieldTriple(ul.InstanceUIDLocalTag, seq20),
		fieldTriple(0x0202, i64be(48)),
		fieldTriple(0x1001, strongRefBatch(clip30, clip31)),
	)
	sourceClip30 := buildSet(t, ul.SetClassSourceClip,
		fieldTriple(ul.InstanceUIDLocalTag, clip30),
		fieldTriple(0x0202, i64be(24)),
	)
	sourceClip31 := buildSet(t, ul.SetClassSourceClip,
		fieldTriple(ul.InstanceUIDLocalTag, clip31),
		fieldTriple(0x0202, i64be(24)),
	)

	timelineTrack11 := buildSet(t, ul.SetClassTimelineTrack,
		fieldTriple(ul.InstanceUIDLocalTag, track11),
		fieldTriple(0x4803, seq21),
	)
	sequence21 := buildSet(t, ul.SetClassSequence,
		fieldTriple(ul.InstanceUIDLocalTag, seq21),
		fieldTriple(0x0202, i64be(48)),
		fieldTriple(0x1001, strongRefBatch(clip32)),
	)
	sourceClip32 := buildSet(t, ul.SetClassSourceClip,
		fieldTriple(ul.InstanceUIDLocalTag, clip32),
		fieldTriple(0x0202, i64be(48)),
	)

	sets := [][]byte{
		preface, materialPackage, contentStorage,
		timelineTrack10, sequence20, sourceClip30, sourceClip31,
		timelineTrack11, sequence21, sourceClip32,
	}

	data := buildHeaderBytes(0, sets)
	hp, err := header.New(byteprovider.NewMemoryProvider(data))
	require.NoError(t, err)

	require.Len(t, hp.TimelineTracks(), 2)
	require.Equal(t, int64(48), hp.EssenceDuration())
}
