package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// TimelineTrack is the byte object for a TimelineTrack set: the only
// GenericTrack subclass the IMF Essence Component profile allows.
type TimelineTrack struct {
	genericTrack

	EditRate Rational
	Origin   int64
}

// DecodeTimelineTrack builds a TimelineTrack from its resolved field
// triples.
func DecodeTimelineTrack(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	tt := &TimelineTrack{}
	tt.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		switch {
		case f.Key.EqualAsStructuralClass(ul.FieldTimelineTrackEditRate):
			r, err := ParseRational(f.Value)
			if err != nil {
				return nil, err
			}
			tt.EditRate = r
			continue
		case f.Key.EqualAsStructuralClass(ul.FieldTimelineTrackOrigin):
			v, err := ParseI64(f.Value)
			if err != nil {
				return nil, err
			}
			tt.Origin = v
			continue
		}
		handled, err := tt.decodeGenericTrackField(f)
		if err != nil {
			return nil, err
		}
		if !handled {
			tt.recordUnknown(f.Tag, f.Value)
		}
	}

	return tt, nil
}
