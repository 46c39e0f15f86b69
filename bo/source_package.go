package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// SourcePackage is the byte object for a SourcePackage set: the
// essence-bearing counterpart a MaterialPackage's SourceClips resolve
// to via their SourcePackageID UMID.
type SourcePackage struct {
	genericPackage

	DescriptorUID mxfuid.MXFUid
}

// DecodeSourcePackage builds a SourcePackage from its resolved field
// triples.
func DecodeSourcePackage(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	sp := &SourcePackage{}
	sp.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		if f.Key.EqualAsStructuralClass(ul.FieldSourcePackageDescriptor) {
			uid, err := ParseMXFUid(f.Value)
			if err != nil {
				return nil, err
			}
			sp.DescriptorUID = uid
			sp.AddStrongRef(uid)
			continue
		}
		handled, err := sp.decodeGenericPackageField(f)
		if err != nil {
			return nil, err
		}
		if !handled {
			sp.recordUnknown(f.Tag, f.Value)
		}
	}

	return sp, nil
}
