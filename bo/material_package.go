package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// MaterialPackage is the byte object for a MaterialPackage set: the
// IMF Composition Playlist's timeline as MXF sees it.
type MaterialPackage struct {
	genericPackage
}

// DecodeMaterialPackage builds a MaterialPackage from its resolved
// field triples.
func DecodeMaterialPackage(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	mp := &MaterialPackage{}
	mp.base.InstanceUID = instanceUID

	for _, f := range fields {
		if f.Tag == ul.InstanceUIDLocalTag {
			continue
		}
		handled, err := mp.decodeGenericPackageField(f)
		if err != nil {
			return nil, err
		}
		if !handled {
			mp.recordUnknown(f.Tag, f.Value)
		}
	}

	return mp, nil
}
