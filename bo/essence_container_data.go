package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// EssenceContainerData is the byte object for an EssenceContainerData
// set: the binding between a SourcePackage's UMID and the essence
// container stream IDs carrying its samples.
type EssenceContainerData struct {
	baseHolder

	LinkedPackageUID mxfuid.MXFUid // UMID
	IndexSID         uint32
	BodySID          uint32
}

// DecodeEssenceContainerData builds an EssenceContainerData from its
// resolved field triples. LinkedPackageUID is a UMID, resolved the
// same way SourceClip.SourcePackageID is — not added to StrongRefs.
func DecodeEssenceContainerData(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	ecd := &EssenceContainerData{}
	ecd.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		switch {
		case f.Key.EqualAsStructuralClass(ul.FieldEssenceContainerDataLinkedPackageUID):
			uid, err := ParseMXFUid(f.Value)
			if err != nil {
				return nil, err
			}
			ecd.LinkedPackageUID = uid
		case f.Key.EqualAsStructuralClass(ul.FieldEssenceContainerDataIndexSID):
			v, err := ParseU32(f.Value)
			if err != nil {
				return nil, err
			}
			ecd.IndexSID = v
		case f.Key.EqualAsStructuralClass(ul.FieldEssenceContainerDataBodySID):
			v, err := ParseU32(f.Value)
			if err != nil {
				return nil, err
			}
			ecd.BodySID = v
		default:
			ecd.recordUnknown(f.Tag, f.Value)
		}
	}

	return ecd, nil
}
