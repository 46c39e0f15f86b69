package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// Preface is the byte object for the single Preface set every header
// partition must contain exactly one of.
type Preface struct {
	baseHolder

	LastModifiedDate      Timestamp
	Version               uint16
	ContentStorageUID     mxfuid.MXFUid
	PrimaryPackageUID     mxfuid.MXFUid
	IdentificationUIDs    []mxfuid.MXFUid
	OperationalPattern    []byte // UL, kept raw: not dereferenced by the graph
	EssenceContainerCount int
}

// DecodePreface builds a Preface from its resolved field triples.
func DecodePreface(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	p := &Preface{}
	p.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		switch {
		case f.Key.EqualAsStructuralClass(ul.FieldPrefaceLastModifiedDate):
			ts, err := ParseTimestamp(f.Value)
			if err != nil {
				return nil, err
			}
			p.LastModifiedDate = ts
		case f.Key.EqualAsStructuralClass(ul.FieldPrefaceVersion):
			v, err := ParseU16(f.Value)
			if err != nil {
				return nil, err
			}
			p.Version = v
		case f.Key.EqualAsStructuralClass(ul.FieldPrefaceContentStorage):
			uid, err := ParseMXFUid(f.Value)
			if err != nil {
				return nil, err
			}
			p.ContentStorageUID = uid
			p.AddStrongRef(uid)
		case f.Key.EqualAsStructuralClass(ul.FieldPrefacePrimaryPackage):
			uid, err := ParseMXFUid(f.Value)
			if err != nil {
				return nil, err
			}
			p.PrimaryPackageUID = uid
			p.AddStrongRef(uid)
		case f.Key.EqualAsStructuralClass(ul.FieldPrefaceIdentifications):
			refs, err := ParseStrongRefBatch(f.Value)
			if err != nil {
				return nil, err
			}
			p.IdentificationUIDs = refs
			p.AddStrongRefBatch(refs)
		case f.Key.EqualAsStructuralClass(ul.FieldPrefaceOperationalPatt):
			p.OperationalPattern = append([]byte(nil), f.Value...)
		case f.Key.EqualAsStructuralClass(ul.FieldPrefaceEssenceContainers):
			p.EssenceContainerCount = len(f.Value)
		default:
			// Covers DM Schemes among other fields: not consulted by
			// the IMF Essence Component profile, recorded only for
			// round-trip diagnostics.
			p.recordUnknown(f.Tag, f.Value)
		}
	}

	return p, nil
}
