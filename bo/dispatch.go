package bo

import (
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/primer"
	"github.com/ugparu/mxfheader/ul"
)

// DecodeFunc decodes one structural metadata set's resolved field
// triples into its byte object. The caller has already classified the
// set's key, extracted its instance UID from the InstanceUID field
// triple, and resolved every other triple's local tag to the UL the
// partition's Primer Pack maps it to.
type DecodeFunc func(instanceUID mxfuid.MXFUid, fields []ResolvedField) (InterchangeObjectBO, error)

// dispatch is the static UL-classified-SetClass -> DecodeFunc table
// that replaces the original implementation's reflection-based
// dispatch (see SPEC_FULL.md §4.3): one decoder per recognized
// structural metadata class, each walking its own field triples with
// its own switch, in the manner of the teacher's per-box Unmarshal
// methods.
var dispatch = map[ul.SetClass]DecodeFunc{
	ul.SetClassPreface:                             DecodePreface,
	ul.SetClassContentStorage:                       DecodeContentStorage,
	ul.SetClassEssenceContainerData:                 DecodeEssenceContainerData,
	ul.SetClassMaterialPackage:                      DecodeMaterialPackage,
	ul.SetClassSourcePackage:                        DecodeSourcePackage,
	ul.SetClassTimelineTrack:                        DecodeTimelineTrack,
	ul.SetClassSequence:                             DecodeSequence,
	ul.SetClassSourceClip:                           DecodeSourceClip,
	ul.SetClassCDCIPictureEssenceDescriptor:         DecodeCDCIPictureEssenceDescriptor,
	ul.SetClassRGBAPictureEssenceDescriptor:         DecodeRGBAPictureEssenceDescriptor,
	ul.SetClassWaveAudioEssenceDescriptor:           DecodeWaveAudioEssenceDescriptor,
	ul.SetClassAudioChannelLabelSubDescriptor:       DecodeAudioChannelLabelSubDescriptor,
	ul.SetClassSoundFieldGroupLabelSubDescriptor:    DecodeSoundFieldGroupLabelSubDescriptor,
	ul.SetClassJPEG2000PictureSubDescriptor:         DecodeJPEG2000PictureSubDescriptor,
	ul.SetClassPHDRMetaDataTrackSubDescriptor:       DecodePHDRMetaDataTrackSubDescriptor,
}

// Decode classifies key, looks up its decoder, extracts the mandatory
// InstanceUID field from value, resolves every remaining field triple's
// local tag through primerTable, and runs the class-specific decoder
// against the resolved fields. A key that classifies as SetClassUnknown
// is reported via the second return value so the caller can treat it
// as a non-fatal "unknown structural set" and skip it, per §4.3's edge
// case.
//
// primerTable may be nil only for callers with no Primer Pack to
// consult (principally tests exercising a single decoder in
// isolation); every field triple then resolves to the zero UL and is
// filed under Unknown, since there is nothing to match it against.
func Decode(key ul.UL, value []byte, primerTable *primer.Table) (InterchangeObjectBO, ul.SetClass, error) {
	class := ul.ClassifyStructuralSet(key)
	if class == ul.SetClassUnknown {
		return nil, class, nil
	}

	decodeFn, ok := dispatch[class]
	if !ok {
		return nil, class, nil
	}

	triples, err := ReadFieldTriples(value)
	if err != nil {
		return nil, class, err
	}

	instanceUID, err := extractInstanceUID(triples)
	if err != nil {
		return nil, class, err
	}

	obj, err := decodeFn(instanceUID, resolveFields(primerTable, triples))
	if err != nil {
		return nil, class, err
	}

	base := obj.Base()
	base.Class = class
	base.Key = key

	return obj, class, nil
}

// resolveFields maps each field triple's local tag to the UL
// primerTable's Primer Pack assigned it in this partition. A tag the
// Primer Pack has no entry for — or any tag at all, when primerTable
// is nil — resolves to the zero UL, which no declared field key
// matches.
func resolveFields(primerTable *primer.Table, triples []FieldTriple) []ResolvedField {
	fields := make([]ResolvedField, len(triples))
	for i, t := range triples {
		var key ul.UL
		if primerTable != nil {
			key, _ = primerTable.Resolve(t.Tag)
		}
		fields[i] = ResolvedField{Key: key, Tag: t.Tag, Value: t.Value}
	}
	return fields
}

// extractInstanceUID finds the mandatory InstanceUID field triple.
// Every structural metadata set must carry one; its absence is a
// malformed set, not a missing-but-optional field.
func extractInstanceUID(triples []FieldTriple) (mxfuid.MXFUid, error) {
	for _, t := range triples {
		if t.Tag == ul.InstanceUIDLocalTag {
			return ParseMXFUid(t.Value)
		}
	}
	return mxfuid.Zero, &mxferrors.FieldDecodeFailureError{Reason: "structural set has no InstanceUID field"}
}
