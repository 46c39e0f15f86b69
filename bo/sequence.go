package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// Sequence is the byte object for a Sequence set: the ordered list of
// StructuralComponents a TimelineTrack plays out.
type Sequence struct {
	baseHolder

	DataDefinition          []byte // UL, kept raw
	Duration                int64
	StructuralComponentUIDs []mxfuid.MXFUid
}

// DecodeSequence builds a Sequence from its resolved field triples.
func DecodeSequence(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	s := &Sequence{}
	s.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		switch {
		case f.Key.EqualAsStructuralClass(ul.FieldStructuralComponentDataDefinition):
			s.DataDefinition = append([]byte(nil), f.Value...)
		case f.Key.EqualAsStructuralClass(ul.FieldStructuralComponentDuration):
			v, err := ParseI64(f.Value)
			if err != nil {
				return nil, err
			}
			s.Duration = v
		case f.Key.EqualAsStructuralClass(ul.FieldSequenceStructuralComps):
			refs, err := ParseStrongRefBatch(f.Value)
			if err != nil {
				return nil, err
			}
			s.StructuralComponentUIDs = refs
			s.AddStrongRefBatch(refs)
		default:
			s.recordUnknown(f.Tag, f.Value)
		}
	}

	return s, nil
}
