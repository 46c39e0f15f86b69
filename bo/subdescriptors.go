package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// AudioChannelLabelSubDescriptor is the byte object for an
// AudioChannelLabelSubDescriptor set: per-channel MCA soundfield
// labeling attached to a WaveAudioEssenceDescriptor.
type AudioChannelLabelSubDescriptor struct {
	baseHolder

	MCATagSymbol string
	MCATagName   string
	MCAChannelID uint32
}

// DecodeAudioChannelLabelSubDescriptor builds an
// AudioChannelLabelSubDescriptor from its resolved field triples.
func DecodeAudioChannelLabelSubDescriptor(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	d := &AudioChannelLabelSubDescriptor{}
	d.base.InstanceUID = instanceUID

	for _, f := range fields {
		switch {
		case f.Tag == ul.InstanceUIDLocalTag:
			continue
		case f.Key.EqualAsStructuralClass(ul.FieldMCATagSymbol):
			s, err := ParseUTF16BEString(f.Value)
			if err != nil {
				return nil, err
			}
			d.MCATagSymbol = s
		case f.Key.EqualAsStructuralClass(ul.FieldMCATagName):
			s, err := ParseUTF16BEString(f.Value)
			if err != nil {
				return nil, err
			}
			d.MCATagName = s
		case f.Key.EqualAsStructuralClass(ul.FieldACLChannelID):
			v, err := ParseU32(f.Value)
			if err != nil {
				return nil, err
			}
			d.MCAChannelID = v
		default:
			d.recordUnknown(f.Tag, f.Value)
		}
	}

	return d, nil
}

// SoundFieldGroupLabelSubDescriptor is the byte object for a
// SoundFieldGroupLabelSubDescriptor set: the soundfield-group-level
// MCA label a group of AudioChannelLabelSubDescriptors belongs to.
type SoundFieldGroupLabelSubDescriptor struct {
	baseHolder

	MCATagSymbol string
	MCATagName   string
}

// DecodeSoundFieldGroupLabelSubDescriptor builds a
// SoundFieldGroupLabelSubDescriptor from its resolved field triples.
func DecodeSoundFieldGroupLabelSubDescriptor(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	d := &SoundFieldGroupLabelSubDescriptor{}
	d.base.InstanceUID = instanceUID

	for _, f := range fields {
		switch {
		case f.Tag == ul.InstanceUIDLocalTag:
			continue
		case f.Key.EqualAsStructuralClass(ul.FieldMCATagSymbol):
			s, err := ParseUTF16BEString(f.Value)
			if err != nil {
				return nil, err
			}
			d.MCATagSymbol = s
		case f.Key.EqualAsStructuralClass(ul.FieldMCATagName):
			s, err := ParseUTF16BEString(f.Value)
			if err != nil {
				return nil, err
			}
			d.MCATagName = s
		default:
			d.recordUnknown(f.Tag, f.Value)
		}
	}

	return d, nil
}

// JPEG2000PictureSubDescriptor is the byte object for a
// JPEG2000PictureSubDescriptor set: J2K-coding-specific parameters
// attached to an RGBAPictureEssenceDescriptor when the essence
// container carries J2K-coded picture essence.
//
// RsizExponent and Xsiz both live in the dynamic local-tag range
// (>= 0x8000, ST 377-1 Table 13): whatever tag number a given file's
// Primer Pack happens to assign them is only meaningful within that
// file. Matching is done on the resolved UL (ul.FieldJ2KRsizExponent,
// ul.FieldJ2KXsiz), never on the raw tag.
type JPEG2000PictureSubDescriptor struct {
	baseHolder

	RsizExponent uint16
	Xsiz         uint32
}

// DecodeJPEG2000PictureSubDescriptor builds a
// JPEG2000PictureSubDescriptor from its resolved field triples.
func DecodeJPEG2000PictureSubDescriptor(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	d := &JPEG2000PictureSubDescriptor{}
	d.base.InstanceUID = instanceUID

	for _, f := range fields {
		switch {
		case f.Tag == ul.InstanceUIDLocalTag:
			continue
		case f.Key.EqualAsStructuralClass(ul.FieldJ2KRsizExponent):
			v, err := ParseU16(f.Value)
			if err != nil {
				return nil, err
			}
			d.RsizExponent = v
		case f.Key.EqualAsStructuralClass(ul.FieldJ2KXsiz):
			v, err := ParseU32(f.Value)
			if err != nil {
				return nil, err
			}
			d.Xsiz = v
		default:
			d.recordUnknown(f.Tag, f.Value)
		}
	}

	return d, nil
}

// PHDRMetaDataTrackSubDescriptor is the byte object for a
// PHDRMetaDataTrackSubDescriptor set: links a Panasonic HDR metadata
// track back to the picture track it grades.
//
// SourceTrackID also lives in the dynamic local-tag range; see
// JPEG2000PictureSubDescriptor's comment above.
type PHDRMetaDataTrackSubDescriptor struct {
	baseHolder

	SourceTrackID uint32
}

// DecodePHDRMetaDataTrackSubDescriptor builds a
// PHDRMetaDataTrackSubDescriptor from its resolved field triples.
func DecodePHDRMetaDataTrackSubDescriptor(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error) {
	d := &PHDRMetaDataTrackSubDescriptor{}
	d.base.InstanceUID = instanceUID

	for _, f := range fields {
		switch {
		case f.Tag == ul.InstanceUIDLocalTag:
			continue
		case f.Key.EqualAsStructuralClass(ul.FieldPHDRSourceTrackID):
			v, err := ParseU32(f.Value)
			if err != nil {
				return nil, err
			}
			d.SourceTrackID = v
		default:
			d.recordUnknown(f.Tag, f.Value)
		}
	}

	return d, nil
}
