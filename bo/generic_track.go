package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// genericTrack holds the fields common to every track subclass.
type genericTrack struct {
	baseHolder

	TrackID     uint32
	TrackName   string
	TrackNumber uint32
	SequenceUID mxfuid.MXFUid
}

func (gt *genericTrack) decodeGenericTrackField(f ResolvedField) (handled bool, err error) {
	switch {
	case f.Key.EqualAsStructuralClass(ul.FieldTrackID):
		v, perr := ParseU32(f.Value)
		if perr != nil {
			return true, perr
		}
		gt.TrackID = v
	case f.Key.EqualAsStructuralClass(ul.FieldTrackName):
		s, perr := ParseUTF16BEString(f.Value)
		if perr != nil {
			return true, perr
		}
		gt.TrackName = s
	case f.Key.EqualAsStructuralClass(ul.FieldTrackNumber):
		v, perr := ParseU32(f.Value)
		if perr != nil {
			return true, perr
		}
		gt.TrackNumber = v
	case f.Key.EqualAsStructuralClass(ul.FieldTrackSequence):
		uid, perr := ParseMXFUid(f.Value)
		if perr != nil {
			return true, perr
		}
		gt.SequenceUID = uid
		gt.AddStrongRef(uid)
	default:
		return false, nil
	}
	return true, nil
}
