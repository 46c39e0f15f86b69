package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// TimelineTrack is the rich object for a TimelineTrack set.
type TimelineTrack struct {
	bo *bo.TimelineTrack

	Sequence *Sequence
}

func newTimelineTrack(b *bo.TimelineTrack, seq *Sequence) *TimelineTrack {
	return &TimelineTrack{bo: b, Sequence: seq}
}

// InstanceUID returns the set's instance UID.
func (t *TimelineTrack) InstanceUID() mxfuid.MXFUid { return t.bo.Base().InstanceUID }

// TrackID returns the decoded track ID.
func (t *TimelineTrack) TrackID() uint32 { return t.bo.TrackID }

// EditRate returns the decoded edit rate.
func (t *TimelineTrack) EditRate() bo.Rational { return t.bo.EditRate }
