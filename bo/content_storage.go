package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// ContentStorage is the byte object for the ContentStorage set, the
// Preface's single point of entry into the package graph.
type ContentStorage struct {
	baseHolder

	PackageUIDs              []mxfuid.MXFUid
	EssenceContainerDataUIDs []mxfuid.MXFUid
}

// DecodeContentStorage builds a ContentStorage from its resolved field
// triples.
func DecodeContentStorage(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	cs := &ContentStorage{}
	cs.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		switch {
		case f.Key.EqualAsStructuralClass(ul.FieldContentStoragePackages):
			refs, err := ParseStrongRefBatch(f.Value)
			if err != nil {
				return nil, err
			}
			cs.PackageUIDs = refs
			cs.AddStrongRefBatch(refs)
		case f.Key.EqualAsStructuralClass(ul.FieldContentStorageEssenceContainerData):
			refs, err := ParseStrongRefBatch(f.Value)
			if err != nil {
				return nil, err
			}
			cs.EssenceContainerDataUIDs = refs
			cs.AddStrongRefBatch(refs)
		default:
			cs.recordUnknown(f.Tag, f.Value)
		}
	}

	return cs, nil
}
