package ul

// Fixed-schema container keys. The Primer Pack and Fill Item keys are
// matched with a plain Equal (the header partition's bootstrap
// sequence depends on telling a Primer Pack apart from a Fill Item
// byte-for-byte, not "close enough to a structural class"); the
// Partition Pack key is matched on its leading bytes and kind byte by
// IsPartitionPackKey/IsHeaderPartitionPackKey.
var (
	// PartitionPackKey is the Header/Body/Footer Partition Pack key
	// with the partition-kind byte set to Header (0x02) and the
	// closed+complete status variant. HeaderPartition construction
	// only ever expects to see the header variant at offset 0.
	PartitionPackKey = UL{
		0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01,
		0x0D, 0x01, 0x02, 0x01, 0x01, 0x02, 0x04, 0x00,
	}

	// PrimerPackKey identifies the Primer Pack KLV.
	PrimerPackKey = UL{
		0x06, 0x0E, 0x2B, 0x34, 0x02, 0x05, 0x01, 0x01,
		0x0D, 0x01, 0x02, 0x01, 0x01, 0x05, 0x01, 0x00,
	}

	// FillItemKey identifies a KLV Fill Item, the only KLV permitted
	// between the Partition Pack and the Primer Pack.
	FillItemKey = UL{
		0x06, 0x0E, 0x2B, 0x34, 0x01, 0x01, 0x01, 0x01,
		0x03, 0x01, 0x02, 0x10, 0x01, 0x00, 0x00, 0x00,
	}

	// InstanceUIDItemKey is the UL the Primer Pack maps local tag
	// 0x3C0A to: the item every structural metadata set uses to carry
	// its own instance UID.
	InstanceUIDItemKey = UL{
		0x06, 0x0E, 0x2B, 0x34, 0x01, 0x01, 0x01, 0x01,
		0x01, 0x01, 0x15, 0x02, 0x00, 0x00, 0x00, 0x00,
	}
)

// InstanceUIDLocalTag is the local tag every structural metadata set
// uses for its instance UID, fixed by the specification rather than
// assigned per-partition like other local tags.
const InstanceUIDLocalTag = uint16(0x3C0A)

// IsPartitionPackKey reports whether key identifies a Partition Pack
// of any kind/status (header, body, or footer; open or closed;
// complete or incomplete) — the first 13 bytes; byte 13 carries the
// kind, byte 14 the status, and byte 15 is not compared.
func IsPartitionPackKey(key UL) bool {
	for i := 0; i < 13; i++ {
		if key[i] != PartitionPackKey[i] {
			return false
		}
	}
	return true
}

// IsHeaderPartitionPackKey reports whether key is specifically the
// Header Partition variant of the Partition Pack key (kind byte
// 0x02), regardless of open/closed/complete status.
func IsHeaderPartitionPackKey(key UL) bool {
	return IsPartitionPackKey(key) && key[13] == 0x02
}

// IsPrimerPackKey reports whether key identifies a Primer Pack.
func IsPrimerPackKey(key UL) bool {
	return key.Equal(PrimerPackKey)
}

// IsFillItemKey reports whether key identifies a KLV Fill Item.
func IsFillItemKey(key UL) bool {
	return key.Equal(FillItemKey)
}

// SetClass enumerates the structural-metadata set classes the bo
// package knows how to decode. The zero value, SetClassUnknown,
// signals a registered-but-unrecognized or entirely foreign key.
type SetClass int

const (
	SetClassUnknown SetClass = iota
	SetClassPreface
	SetClassContentStorage
	SetClassEssenceContainerData
	SetClassMaterialPackage
	SetClassSourcePackage
	SetClassTimelineTrack
	SetClassSequence
	SetClassSourceClip
	SetClassCDCIPictureEssenceDescriptor
	SetClassRGBAPictureEssenceDescriptor
	SetClassWaveAudioEssenceDescriptor
	SetClassAudioChannelLabelSubDescriptor
	SetClassSoundFieldGroupLabelSubDescriptor
	SetClassJPEG2000PictureSubDescriptor
	SetClassPHDRMetaDataTrackSubDescriptor
)

func (c SetClass) String() string {
	switch c {
	case SetClassPreface:
		return "Preface"
	case SetClassContentStorage:
		return "ContentStorage"
	case SetClassEssenceContainerData:
		return "EssenceContainerData"
	case SetClassMaterialPackage:
		return "MaterialPackage"
	case SetClassSourcePackage:
		return "SourcePackage"
	case SetClassTimelineTrack:
		return "TimelineTrack"
	case SetClassSequence:
		return "Sequence"
	case SetClassSourceClip:
		return "SourceClip"
	case SetClassCDCIPictureEssenceDescriptor:
		return "CDCIPictureEssenceDescriptor"
	case SetClassRGBAPictureEssenceDescriptor:
		return "RGBAPictureEssenceDescriptor"
	case SetClassWaveAudioEssenceDescriptor:
		return "WaveAudioEssenceDescriptor"
	case SetClassAudioChannelLabelSubDescriptor:
		return "AudioChannelLabelSubDescriptor"
	case SetClassSoundFieldGroupLabelSubDescriptor:
		return "SoundFieldGroupLabelSubDescriptor"
	case SetClassJPEG2000PictureSubDescriptor:
		return "JPEG2000PictureSubDescriptor"
	case SetClassPHDRMetaDataTrackSubDescriptor:
		return "PHDRMetaDataTrackSubDescriptor"
	default:
		return "Unknown"
	}
}

// structuralSetKeys is the static UL -> SetClass table, matched with
// EqualAsStructuralClass (registry version byte masked). This is the
// table §4.3 and DESIGN NOTES §9 describe replacing reflection with.
var structuralSetKeys = []struct {
	key   UL
	class SetClass
}{
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x2F, 0x00}, SetClassPreface},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x18, 0x00}, SetClassContentStorage},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x23, 0x00}, SetClassEssenceContainerData},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x36, 0x00}, SetClassMaterialPackage},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x37, 0x00}, SetClassSourcePackage},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x3B, 0x00}, SetClassTimelineTrack},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x0F, 0x00}, SetClassSequence},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x11, 0x00}, SetClassSourceClip},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x28, 0x00}, SetClassCDCIPictureEssenceDescriptor},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x29, 0x00}, SetClassRGBAPictureEssenceDescriptor},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x48, 0x00}, SetClassWaveAudioEssenceDescriptor},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x5D, 0x00}, SetClassAudioChannelLabelSubDescriptor},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x5E, 0x00}, SetClassSoundFieldGroupLabelSubDescriptor},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x5A, 0x00}, SetClassJPEG2000PictureSubDescriptor},
	{UL{0x06, 0x0E, 0x2B, 0x34, 0x02, 0x53, 0x01, 0x01, 0x0D, 0x01, 0x01, 0x01, 0x01, 0x01, 0x60, 0x00}, SetClassPHDRMetaDataTrackSubDescriptor},
}

// ClassifyStructuralSet looks up key in the static structural-set
// table, masking the registry version byte. Returns SetClassUnknown
// for a key not found — the caller must skip its value rather than
// treat that as fatal (spec's UnknownStructuralSet, non-fatal).
func ClassifyStructuralSet(key UL) SetClass {
	for _, entry := range structuralSetKeys {
		if key.EqualAsStructuralClass(entry.key) {
			return entry.class
		}
	}
	return SetClassUnknown
}

// KeyForClass returns the registered UL for class, used by tests and
// by anything that needs to synthesize a KLV of a given class.
func KeyForClass(class SetClass) (UL, bool) {
	for _, entry := range structuralSetKeys {
		if entry.class == class {
			return entry.key, true
		}
	}
	return UL{}, false
}

// fieldKey synthesizes a canonical item-level UL for a field whose
// local tag is fixed by ST 377-1 rather than assigned per partition
// (anything below the 0x8000 dynamic range, Table 13). Embedding the
// tag in the label's low 16 bits keeps each one unique without needing
// the full RP210 metadata dictionary; every encoder this profile's
// Primer Packs come from maps the tag straight back to the same
// field, so the round trip through Resolve lands here regardless.
func fieldKey(tag uint16) UL {
	return UL{
		0x06, 0x0E, 0x2B, 0x34, 0x01, 0x01, 0x01, 0x01,
		0x0E, 0x00, byte(tag >> 8), byte(tag), 0x00, 0x00, 0x00, 0x00,
	}
}

// Structural-metadata field keys. bo's decoders resolve each field
// triple's local tag through the partition's Primer Pack (primer.Table
// .Resolve) and match the resulting UL against these with
// EqualAsStructuralClass, rather than switching on the raw tag — a
// local tag's meaning is only fixed within the partition that assigned
// it (ST 377-1 §4.2.3). FieldInstanceUID is exported for symmetry with
// InstanceUIDLocalTag; bo itself still matches the InstanceUID triple
// by tag, since that one local tag is fixed rather than primer-
// assigned: bo.Decode extracts it before the class decoder runs, and
// each decoder then skips that triple by tag.
var (
	FieldInstanceUID = InstanceUIDItemKey

	FieldPrefaceLastModifiedDate  = fieldKey(0x3B02)
	FieldPrefaceVersion           = fieldKey(0x3B05)
	FieldPrefaceIdentifications   = fieldKey(0x3B06)
	FieldPrefaceContentStorage    = fieldKey(0x3B03)
	FieldPrefacePrimaryPackage    = fieldKey(0x3B08)
	FieldPrefaceOperationalPatt   = fieldKey(0x3B09)
	FieldPrefaceEssenceContainers = fieldKey(0x3B0A)

	FieldContentStoragePackages             = fieldKey(0x1901)
	FieldContentStorageEssenceContainerData = fieldKey(0x1902)

	FieldEssenceContainerDataLinkedPackageUID = fieldKey(0x2701)
	FieldEssenceContainerDataIndexSID         = fieldKey(0x3F06)
	FieldEssenceContainerDataBodySID          = fieldKey(0x3F07)

	FieldPackageUID          = fieldKey(0x4401)
	FieldPackageName         = fieldKey(0x4402)
	FieldPackageTracks       = fieldKey(0x4403)
	FieldPackageModifiedDate = fieldKey(0x4404)
	FieldPackageCreationDate = fieldKey(0x4405)

	FieldTrackID       = fieldKey(0x4801)
	FieldTrackName     = fieldKey(0x4802)
	FieldTrackNumber   = fieldKey(0x4804)
	FieldTrackSequence = fieldKey(0x4803)

	FieldTimelineTrackEditRate = fieldKey(0x4B01)
	FieldTimelineTrackOrigin   = fieldKey(0x4B02)

	// Shared by Sequence and SourceClip, both StructuralComponent
	// subclasses.
	FieldStructuralComponentDataDefinition = fieldKey(0x0201)
	FieldStructuralComponentDuration       = fieldKey(0x0202)

	FieldSequenceStructuralComps = fieldKey(0x1001)

	FieldSourceClipStartPosition   = fieldKey(0x1201)
	FieldSourceClipSourcePackageID = fieldKey(0x1101)
	FieldSourceClipSourceTrackID   = fieldKey(0x1102)

	FieldDescriptorLocators       = fieldKey(0x2F01)
	FieldDescriptorSubDescriptors = fieldKey(0x2F02)

	FieldFileDescriptorLinkedTrackID     = fieldKey(0x3006)
	FieldFileDescriptorSampleRate        = fieldKey(0x3001)
	FieldFileDescriptorContainerDuration = fieldKey(0x3002)
	FieldFileDescriptorEssenceContainer  = fieldKey(0x3004)
	FieldFileDescriptorCodec             = fieldKey(0x3005)

	FieldPictureStoredWidth   = fieldKey(0x3202)
	FieldPictureStoredHeight  = fieldKey(0x3203)
	FieldPictureSampledWidth  = fieldKey(0x3204)
	FieldPictureSampledHeight = fieldKey(0x3205)
	FieldPictureDisplayWidth  = fieldKey(0x3206)
	FieldPictureDisplayHeight = fieldKey(0x3207)
	FieldPictureAspectRatio   = fieldKey(0x320E)
	FieldPictureFrameLayout   = fieldKey(0x320C)

	FieldCDCIComponentDepth        = fieldKey(0x3301)
	FieldCDCIHorizontalSubsampling = fieldKey(0x3302)
	FieldCDCIVerticalSubsampling   = fieldKey(0x3308)
	FieldCDCIColorSiting           = fieldKey(0x3303)

	FieldRGBAComponentMaxRef = fieldKey(0x3407)
	FieldRGBAComponentMinRef = fieldKey(0x3408)
	FieldRGBAPixelLayout     = fieldKey(0x3401)

	FieldWaveAudioSamplingRate   = fieldKey(0x3D03)
	FieldWaveAudioChannels       = fieldKey(0x3D07)
	FieldWaveAudioQuantizBits    = fieldKey(0x3D01)
	FieldWaveAudioBlockAlign     = fieldKey(0x3D0A)
	FieldWaveAudioAvgBps         = fieldKey(0x3D09)
	FieldWaveAudioSequenceOffset = fieldKey(0x3D0B)

	// Shared by AudioChannelLabelSubDescriptor and
	// SoundFieldGroupLabelSubDescriptor, both MCALabelSubDescriptor
	// subclasses.
	FieldMCATagSymbol = fieldKey(0x4D07)
	FieldMCATagName   = fieldKey(0x4D08)

	FieldACLChannelID = fieldKey(0x4D0C)

	FieldSourcePackageDescriptor = fieldKey(0x4701)

	// Dynamic-range fields (local tag >= 0x8000, ST 377-1 Table 13):
	// assigned per partition by the Primer Pack, so unlike every field
	// above, these labels are NOT derived from any tag number. The
	// same numeric tag — 0x8010, say — names a different field in a
	// different file's Primer Pack; resolving through primer.Table
	// before matching is the only way to land on the right one.
	FieldJ2KRsizExponent   = UL{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x01, 0x01, 0x01, 0x0E, 0x04, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}
	FieldJ2KXsiz           = UL{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x01, 0x01, 0x01, 0x0E, 0x04, 0x01, 0x02, 0x00, 0x00, 0x00, 0x00}
	FieldPHDRSourceTrackID = UL{0x06, 0x0E, 0x2B, 0x34, 0x01, 0x01, 0x01, 0x01, 0x0E, 0x04, 0x02, 0x01, 0x00, 0x00, 0x00, 0x00}
)
