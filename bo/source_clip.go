package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// SourceClip is the byte object for a SourceClip set: a reference into
// a SourcePackage's essence by UMID and track ID.
type SourceClip struct {
	baseHolder

	DataDefinition  []byte // UL, kept raw
	Duration        int64
	StartPosition   int64
	SourcePackageID mxfuid.MXFUid // UMID, resolved via its Canonical16 form
	SourceTrackID   uint32
}

// DecodeSourceClip builds a SourceClip from its resolved field triples.
// The SourcePackageID is a UMID, not an instance UID — it is
// intentionally NOT added to StrongRefs here; the header package's
// builder resolves it through the dual-keyed package index instead of
// the ordinary instance-UID dependency graph, since a zero
// SourcePackageID (an unresolved/dangling SourceClip, permitted by the
// format) must not be treated as a cycle or a missing-dependency
// error.
func DecodeSourceClip(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	sc := &SourceClip{}
	sc.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		switch {
		case f.Key.EqualAsStructuralClass(ul.FieldStructuralComponentDataDefinition):
			sc.DataDefinition = append([]byte(nil), f.Value...)
		case f.Key.EqualAsStructuralClass(ul.FieldStructuralComponentDuration):
			v, err := ParseI64(f.Value)
			if err != nil {
				return nil, err
			}
			sc.Duration = v
		case f.Key.EqualAsStructuralClass(ul.FieldSourceClipStartPosition):
			v, err := ParseI64(f.Value)
			if err != nil {
				return nil, err
			}
			sc.StartPosition = v
		case f.Key.EqualAsStructuralClass(ul.FieldSourceClipSourcePackageID):
			uid, err := ParseMXFUid(f.Value)
			if err != nil {
				return nil, err
			}
			sc.SourcePackageID = uid
		case f.Key.EqualAsStructuralClass(ul.FieldSourceClipSourceTrackID):
			v, err := ParseU32(f.Value)
			if err != nil {
				return nil, err
			}
			sc.SourceTrackID = v
		default:
			sc.recordUnknown(f.Tag, f.Value)
		}
	}

	return sc, nil
}
