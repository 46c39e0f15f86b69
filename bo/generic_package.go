package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// genericPackage holds the fields common to MaterialPackage and
// SourcePackage. It is not itself an InterchangeObjectBO; the two
// concrete package classes embed it.
type genericPackage struct {
	baseHolder

	PackageUID   mxfuid.MXFUid
	Name         string
	CreationDate Timestamp
	ModifiedDate Timestamp
	TrackUIDs    []mxfuid.MXFUid
}

// decodeGenericPackageField applies one resolved field to gp, reporting
// whether its key was recognized as a GenericPackage field.
func (gp *genericPackage) decodeGenericPackageField(f ResolvedField) (handled bool, err error) {
	switch {
	case f.Key.EqualAsStructuralClass(ul.FieldPackageUID):
		uid, perr := ParseMXFUid(f.Value)
		if perr != nil {
			return true, perr
		}
		gp.PackageUID = uid
	case f.Key.EqualAsStructuralClass(ul.FieldPackageName):
		s, perr := ParseUTF16BEString(f.Value)
		if perr != nil {
			return true, perr
		}
		gp.Name = s
	case f.Key.EqualAsStructuralClass(ul.FieldPackageTracks):
		refs, perr := ParseStrongRefBatch(f.Value)
		if perr != nil {
			return true, perr
		}
		gp.TrackUIDs = refs
		gp.AddStrongRefBatch(refs)
	case f.Key.EqualAsStructuralClass(ul.FieldPackageCreationDate):
		ts, perr := ParseTimestamp(f.Value)
		if perr != nil {
			return true, perr
		}
		gp.CreationDate = ts
	case f.Key.EqualAsStructuralClass(ul.FieldPackageModifiedDate):
		ts, perr := ParseTimestamp(f.Value)
		if perr != nil {
			return true, perr
		}
		gp.ModifiedDate = ts
	default:
		return false, nil
	}
	return true, nil
}
