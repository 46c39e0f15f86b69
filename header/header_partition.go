package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/errlog"
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/primer"
	"github.com/ugparu/mxfheader/ul"
)

// HeaderPartition is the fully resolved, immutable result of parsing a
// header partition: the decoded Partition Pack, the Primer Pack used
// to resolve local tags, and the rich InterchangeObject graph rooted
// at Preface. Nothing on it is mutated after New returns.
type HeaderPartition struct {
	partitionPack PartitionPack
	primerTable   *primer.Table
	b             *builder
	log           *errlog.Log
}

func newHeaderPartition(pp PartitionPack, primerTable *primer.Table, b *builder, log *errlog.Log) *HeaderPartition {
	return &HeaderPartition{partitionPack: pp, primerTable: primerTable, b: b, log: log}
}

// PartitionPack returns the decoded Partition Pack record.
func (h *HeaderPartition) PartitionPack() PartitionPack { return h.partitionPack }

// PrimerTable returns the Primer Pack's local-tag lookup table.
func (h *HeaderPartition) PrimerTable() *primer.Table { return h.primerTable }

// Diagnostics returns every non-fatal entry accumulated while decoding
// this partition's structural metadata.
func (h *HeaderPartition) Diagnostics() []errlog.Entry { return h.log.Entries() }

// Preface returns the partition's single Preface object.
func (h *HeaderPartition) Preface() *Preface {
	if len(h.b.prefaces) == 0 {
		return nil
	}
	return h.b.prefaces[0]
}

// ContentStorageList returns every ContentStorage object, in
// construction order.
func (h *HeaderPartition) ContentStorageList() []*ContentStorage { return h.b.contentStorages }

// MaterialPackages returns every MaterialPackage object, in
// construction order.
func (h *HeaderPartition) MaterialPackages() []*MaterialPackage { return h.b.materialPackages }

// SourcePackages returns every SourcePackage object, in construction
// order.
func (h *HeaderPartition) SourcePackages() []*SourcePackage { return h.b.sourcePackages }

// EssenceContainerDataList returns every EssenceContainerData object,
// in construction order.
func (h *HeaderPartition) EssenceContainerDataList() []*EssenceContainerData {
	return h.b.essenceContainerDatas
}

// TimelineTracks returns every TimelineTrack object, in construction
// order.
func (h *HeaderPartition) TimelineTracks() []*TimelineTrack { return h.b.timelineTracks }

// Sequences returns every Sequence object, in construction order.
func (h *HeaderPartition) Sequences() []*Sequence { return h.b.sequences }

// SourceClips returns every SourceClip object, in construction order.
func (h *HeaderPartition) SourceClips() []*SourceClip { return h.b.sourceClips }

// CDCIPictureEssenceDescriptors returns every
// CDCIPictureEssenceDescriptor object, in construction order.
func (h *HeaderPartition) CDCIPictureEssenceDescriptors() []*CDCIPictureEssenceDescriptor {
	return h.b.cdciDescriptors
}

// RGBAPictureEssenceDescriptors returns every
// RGBAPictureEssenceDescriptor object, in construction order.
func (h *HeaderPartition) RGBAPictureEssenceDescriptors() []*RGBAPictureEssenceDescriptor {
	return h.b.rgbaDescriptors
}

// WaveAudioEssenceDescriptors returns every WaveAudioEssenceDescriptor
// object, in construction order.
func (h *HeaderPartition) WaveAudioEssenceDescriptors() []*WaveAudioEssenceDescriptor {
	return h.b.waveAudioDescriptors
}

// EssenceDescriptors returns every source package's resolved
// descriptor, skipping source packages whose descriptor did not
// resolve.
func (h *HeaderPartition) EssenceDescriptors() []GenericDescriptor {
	out := make([]GenericDescriptor, 0, len(h.b.sourcePackages))
	for _, sp := range h.b.sourcePackages {
		if sp.Descriptor != nil {
			out = append(out, sp.Descriptor)
		}
	}
	return out
}

// SubDescriptors returns the resolved byte objects a descriptor's
// SubDescriptors strong-reference batch points to, dereferenced
// directly against the raw byte-object map since sub-descriptor leaf
// classes have no rich wrapper type. With no arguments, it returns the
// sub-descriptors of every descriptor in the partition.
func (h *HeaderPartition) SubDescriptors(descriptors ...GenericDescriptor) []bo.InterchangeObjectBO {
	if len(descriptors) == 0 {
		descriptors = h.allDescriptors()
	}

	var out []bo.InterchangeObjectBO
	for _, d := range descriptors {
		if d == nil {
			continue
		}
		out = append(out, h.subDescriptorsOf(d)...)
	}
	return out
}

func (h *HeaderPartition) allDescriptors() []GenericDescriptor {
	out := make([]GenericDescriptor, 0, len(h.b.cdciDescriptors)+len(h.b.rgbaDescriptors)+len(h.b.waveAudioDescriptors))
	for _, d := range h.b.cdciDescriptors {
		out = append(out, d)
	}
	for _, d := range h.b.rgbaDescriptors {
		out = append(out, d)
	}
	for _, d := range h.b.waveAudioDescriptors {
		out = append(out, d)
	}
	return out
}

func (h *HeaderPartition) subDescriptorsOf(d GenericDescriptor) []bo.InterchangeObjectBO {
	obj, ok := h.b.boByUID[d.InstanceUID()]
	if !ok {
		return nil
	}

	var uids []mxfuid.MXFUid
	switch concrete := obj.(type) {
	case *bo.CDCIPictureEssenceDescriptor:
		uids = concrete.SubDescriptorUIDs
	case *bo.RGBAPictureEssenceDescriptor:
		uids = concrete.SubDescriptorUIDs
	case *bo.WaveAudioEssenceDescriptor:
		uids = concrete.SubDescriptorUIDs
	}

	out := make([]bo.InterchangeObjectBO, 0, len(uids))
	for _, uid := range uids {
		if o, ok := h.b.boByUID[uid]; ok {
			out = append(out, o)
		}
	}
	return out
}

// TimelineTrack looks up a TimelineTrack by instance UID.
func (h *HeaderPartition) TimelineTrack(uid mxfuid.MXFUid) *TimelineTrack {
	t, _ := h.b.richByUID[uid].(*TimelineTrack)
	return t
}

// Sequence looks up a Sequence by instance UID.
func (h *HeaderPartition) Sequence(uid mxfuid.MXFUid) *Sequence {
	s, _ := h.b.richByUID[uid].(*Sequence)
	return s
}

// SourceClip looks up a SourceClip by instance UID.
func (h *HeaderPartition) SourceClip(uid mxfuid.MXFUid) *SourceClip {
	sc, _ := h.b.richByUID[uid].(*SourceClip)
	return sc
}

// MaterialPackage looks up a MaterialPackage by instance UID.
func (h *HeaderPartition) MaterialPackage(uid mxfuid.MXFUid) *MaterialPackage {
	mp, _ := h.b.richByUID[uid].(*MaterialPackage)
	return mp
}

// SourcePackage looks up a SourcePackage by instance UID.
func (h *HeaderPartition) SourcePackage(uid mxfuid.MXFUid) *SourcePackage {
	sp, _ := h.b.richByUID[uid].(*SourcePackage)
	return sp
}

// EssenceContainerData looks up an EssenceContainerData by instance
// UID.
func (h *HeaderPartition) EssenceContainerData(uid mxfuid.MXFUid) *EssenceContainerData {
	e, _ := h.b.richByUID[uid].(*EssenceContainerData)
	return e
}

// HasMaterialPackages reports whether the partition resolved at least
// one MaterialPackage.
func (h *HeaderPartition) HasMaterialPackages() bool { return len(h.b.materialPackages) > 0 }

// HasSourcePackages reports whether the partition resolved at least
// one SourcePackage.
func (h *HeaderPartition) HasSourcePackages() bool { return len(h.b.sourcePackages) > 0 }

// HasTimelineTracks reports whether the partition resolved at least
// one TimelineTrack.
func (h *HeaderPartition) HasTimelineTracks() bool { return len(h.b.timelineTracks) > 0 }

// HasEssenceContainerData reports whether the partition resolved at
// least one EssenceContainerData.
func (h *HeaderPartition) HasEssenceContainerData() bool {
	return len(h.b.essenceContainerDatas) > 0
}

// HasCDCIPictureEssenceDescriptors reports whether the partition
// resolved at least one CDCIPictureEssenceDescriptor.
func (h *HeaderPartition) HasCDCIPictureEssenceDescriptors() bool {
	return len(h.b.cdciDescriptors) > 0
}

// HasRGBAPictureEssenceDescriptors reports whether the partition
// resolved at least one RGBAPictureEssenceDescriptor.
func (h *HeaderPartition) HasRGBAPictureEssenceDescriptors() bool {
	return len(h.b.rgbaDescriptors) > 0
}

// HasWaveAudioEssenceDescriptors reports whether the partition
// resolved at least one WaveAudioEssenceDescriptor.
func (h *HeaderPartition) HasWaveAudioEssenceDescriptors() bool {
	return len(h.b.waveAudioDescriptors) > 0
}

// EssenceDuration computes the partition's overall essence duration:
// for every TimelineTrack, sum the Duration of its Sequence's
// StructuralComponents (resolving both hops directly against the raw
// byte-object map, not the rich graph, since a dangling Sequence or
// component reference must be skipped rather than treated as a
// resolution failure), then take the maximum across all tracks. A
// partition with no TimelineTracks has essence duration zero.
func (h *HeaderPartition) EssenceDuration() int64 {
	var maxDuration int64
	for _, track := range h.b.timelineTracks {
		duration := h.trackDuration(track)
		if duration > maxDuration {
			maxDuration = duration
		}
	}
	return maxDuration
}

func (h *HeaderPartition) trackDuration(track *TimelineTrack) int64 {
	trackBO, ok := h.b.boByUID[track.InstanceUID()].(*bo.TimelineTrack)
	if !ok {
		return 0
	}
	seqBO, ok := h.b.boByUID[trackBO.SequenceUID].(*bo.Sequence)
	if !ok {
		return 0
	}

	var sum int64
	for _, componentUID := range seqBO.StructuralComponentUIDs {
		component, ok := h.b.boByUID[componentUID]
		if !ok {
			continue
		}
		if clip, ok := component.(*bo.SourceClip); ok {
			sum += clip.Duration
		}
	}
	return sum
}

// StructuralMetadata returns every byte object this partition decoded
// of the given set class, in decode order — the raw form, before
// dependency resolution, regardless of whether that class was
// successfully materialized into a rich object.
func (h *HeaderPartition) StructuralMetadata(class ul.SetClass) []bo.InterchangeObjectBO {
	var out []bo.InterchangeObjectBO
	for _, uid := range h.b.orderedUID {
		obj := h.b.boByUID[uid]
		if obj.Base().Class == class {
			out = append(out, obj)
		}
	}
	return out
}
