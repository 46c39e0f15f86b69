package header

import (
	"fmt"

	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/errlog"
	"github.com/ugparu/mxfheader/graph"
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/mxfuid"
)

// builder accumulates byte objects as they are decoded and, once the
// partition's structural metadata KLV loop finishes, resolves them
// into the rich InterchangeObject graph in topological order.
type builder struct {
	boByUID    map[mxfuid.MXFUid]bo.InterchangeObjectBO
	orderedUID []mxfuid.MXFUid // first-encounter (decode) order

	richByUID    map[mxfuid.MXFUid]interface{}
	packageByUID map[mxfuid.MXFUid]GenericPackage // keyed by Canonical16(PackageUID)

	// Per-class lists, appended in construction (topological) order —
	// the facade's "by simple class name" lists from §4.4.
	prefaces               []*Preface
	contentStorages        []*ContentStorage
	materialPackages       []*MaterialPackage
	sourcePackages         []*SourcePackage
	essenceContainerDatas  []*EssenceContainerData
	timelineTracks         []*TimelineTrack
	sequences              []*Sequence
	sourceClips            []*SourceClip
	cdciDescriptors        []*CDCIPictureEssenceDescriptor
	rgbaDescriptors        []*RGBAPictureEssenceDescriptor
	waveAudioDescriptors   []*WaveAudioEssenceDescriptor

	log *errlog.Log
}

func newBuilder(log *errlog.Log) *builder {
	return &builder{
		boByUID:      make(map[mxfuid.MXFUid]bo.InterchangeObjectBO),
		richByUID:    make(map[mxfuid.MXFUid]interface{}),
		packageByUID: make(map[mxfuid.MXFUid]GenericPackage),
		log:          log,
	}
}

// addByteObject records a freshly decoded BO, preserving decode order
// for deterministic topological-sort tie-breaking.
func (b *builder) addByteObject(obj bo.InterchangeObjectBO) {
	uid := obj.Base().InstanceUID
	if _, exists := b.boByUID[uid]; exists {
		return // duplicate instance UID; first occurrence wins
	}
	b.boByUID[uid] = obj
	b.orderedUID = append(b.orderedUID, uid)
}

// buildGraph constructs the instance-UID dependency graph from every
// recorded BO's strong references, dropping edges to UIDs absent from
// the partition per §4.4 ("may refer to objects in body partitions").
func (b *builder) buildGraph() *graph.Graph {
	g := graph.New()
	for _, uid := range b.orderedUID {
		g.AddNode(uid)
	}
	for _, uid := range b.orderedUID {
		obj := b.boByUID[uid]
		for _, ref := range obj.Base().StrongRefs {
			if _, present := b.boByUID[ref]; present {
				g.AddEdge(uid, ref)
			}
		}
	}
	return g
}

// materialize walks order (leaves first) and builds the corresponding
// rich object for every BO whose class the header package knows how to
// materialize. Sub-descriptor leaf classes have no rich wrapper — they
// stay reachable only through their owning descriptor's BO.
func (b *builder) materialize(order []mxfuid.MXFUid) error {
	for _, uid := range order {
		obj, ok := b.boByUID[uid]
		if !ok {
			continue // dangling ref target with no BO of its own; nothing to build
		}

		switch concrete := obj.(type) {
		case *bo.Preface:
			b.buildPreface(concrete)
		case *bo.ContentStorage:
			b.buildContentStorage(concrete)
		case *bo.MaterialPackage:
			b.buildMaterialPackage(concrete)
		case *bo.SourcePackage:
			b.buildSourcePackage(concrete)
		case *bo.TimelineTrack:
			b.buildTimelineTrack(concrete)
		case *bo.Sequence:
			b.buildSequence(concrete)
		case *bo.SourceClip:
			b.buildSourceClip(concrete)
		case *bo.EssenceContainerData:
			b.buildEssenceContainerData(concrete)
		case *bo.CDCIPictureEssenceDescriptor:
			d := newCDCIPictureEssenceDescriptor(concrete)
			b.richByUID[uid] = d
			b.cdciDescriptors = append(b.cdciDescriptors, d)
		case *bo.RGBAPictureEssenceDescriptor:
			d := newRGBAPictureEssenceDescriptor(concrete)
			b.richByUID[uid] = d
			b.rgbaDescriptors = append(b.rgbaDescriptors, d)
		case *bo.WaveAudioEssenceDescriptor:
			if err := b.checkWaveAudioInvariant(concrete); err != nil {
				return err
			}
			d := newWaveAudioEssenceDescriptor(concrete)
			b.richByUID[uid] = d
			b.waveAudioDescriptors = append(b.waveAudioDescriptors, d)
		// AudioChannelLabelSubDescriptor, SoundFieldGroupLabelSubDescriptor,
		// JPEG2000PictureSubDescriptor, and PHDRMetaDataTrackSubDescriptor
		// are leaves with no rich wrapper; intentionally not handled here.
		}
	}
	return nil
}

func (b *builder) richPackage(uid mxfuid.MXFUid) GenericPackage {
	p, _ := b.richByUID[uid].(GenericPackage)
	return p
}

func (b *builder) richPackageByPackageUID(packageUID mxfuid.MXFUid) GenericPackage {
	if packageUID.IsZero() {
		return nil
	}
	return b.packageByUID[packageUID.Canonical16()]
}

func (b *builder) buildPreface(concrete *bo.Preface) {
	primary := b.richPackage(concrete.PrimaryPackageUID)
	cs, _ := b.richByUID[concrete.ContentStorageUID].(*ContentStorage)
	p := newPreface(concrete, primary, cs)
	b.richByUID[concrete.Base().InstanceUID] = p
	b.prefaces = append(b.prefaces, p)
}

func (b *builder) buildContentStorage(concrete *bo.ContentStorage) {
	packages := make([]GenericPackage, 0, len(concrete.PackageUIDs))
	for _, uid := range concrete.PackageUIDs {
		if p := b.richPackage(uid); p != nil {
			packages = append(packages, p)
		}
	}
	ecd := make([]*EssenceContainerData, 0, len(concrete.EssenceContainerDataUIDs))
	for _, uid := range concrete.EssenceContainerDataUIDs {
		if e, ok := b.richByUID[uid].(*EssenceContainerData); ok {
			ecd = append(ecd, e)
		}
	}
	cs := newContentStorage(concrete, packages, ecd)
	b.richByUID[concrete.Base().InstanceUID] = cs
	b.contentStorages = append(b.contentStorages, cs)
}

func (b *builder) buildMaterialPackage(concrete *bo.MaterialPackage) {
	tracks := b.richTracks(concrete.TrackUIDs)
	mp := newMaterialPackage(concrete, tracks)
	b.richByUID[concrete.Base().InstanceUID] = mp
	b.indexPackage(mp)
	b.materialPackages = append(b.materialPackages, mp)
}

func (b *builder) buildSourcePackage(concrete *bo.SourcePackage) {
	tracks := b.richTracks(concrete.TrackUIDs)
	var descriptor GenericDescriptor
	if d, ok := b.richByUID[concrete.DescriptorUID].(GenericDescriptor); ok {
		descriptor = d
	}
	sp := newSourcePackage(concrete, tracks, descriptor)
	b.richByUID[concrete.Base().InstanceUID] = sp
	b.indexPackage(sp)
	b.sourcePackages = append(b.sourcePackages, sp)
}

func (b *builder) richTracks(uids []mxfuid.MXFUid) []GenericTrack {
	tracks := make([]GenericTrack, 0, len(uids))
	for _, uid := range uids {
		if t, ok := b.richByUID[uid].(GenericTrack); ok {
			tracks = append(tracks, t)
		}
	}
	return tracks
}

// indexPackage adds the dual package-UID index entry. richByUID is
// already populated by the caller before indexPackage runs.
func (b *builder) indexPackage(p GenericPackage) {
	if !p.PackageUID().IsZero() {
		b.packageByUID[p.PackageUID().Canonical16()] = p
	}
}

func (b *builder) buildTimelineTrack(concrete *bo.TimelineTrack) {
	seq, _ := b.richByUID[concrete.SequenceUID].(*Sequence)
	t := newTimelineTrack(concrete, seq)
	b.richByUID[concrete.Base().InstanceUID] = t
	b.timelineTracks = append(b.timelineTracks, t)
}

func (b *builder) buildSequence(concrete *bo.Sequence) {
	components := make([]StructuralComponent, 0, len(concrete.StructuralComponentUIDs))
	for _, uid := range concrete.StructuralComponentUIDs {
		if c, ok := b.richByUID[uid].(StructuralComponent); ok {
			components = append(components, c)
		}
	}
	s := newSequence(concrete, components)
	b.richByUID[concrete.Base().InstanceUID] = s
	b.sequences = append(b.sequences, s)
}

func (b *builder) buildSourceClip(concrete *bo.SourceClip) {
	source := b.richPackageByPackageUID(concrete.SourcePackageID)
	sc := newSourceClip(concrete, source)
	b.richByUID[concrete.Base().InstanceUID] = sc
	b.sourceClips = append(b.sourceClips, sc)
}

func (b *builder) buildEssenceContainerData(concrete *bo.EssenceContainerData) {
	linked := b.richPackageByPackageUID(concrete.LinkedPackageUID)
	e := newEssenceContainerData(concrete, linked)
	b.richByUID[concrete.Base().InstanceUID] = e
	b.essenceContainerDatas = append(b.essenceContainerDatas, e)
}

// checkWaveAudioInvariant enforces §4.4's rule: if the BO has any
// strong-referenced dependents at all — through any field, not just
// SubDescriptorUIDs — at least one must resolve to a recognized MCA
// label sub-descriptor kind.
func (b *builder) checkWaveAudioInvariant(concrete *bo.WaveAudioEssenceDescriptor) error {
	refs := concrete.Base().StrongRefs
	if len(refs) == 0 {
		return nil
	}
	for _, uid := range refs {
		switch b.boByUID[uid].(type) {
		case *bo.AudioChannelLabelSubDescriptor, *bo.SoundFieldGroupLabelSubDescriptor:
			return nil
		}
	}
	return &mxferrors.InvalidDescriptorError{
		Reason: fmt.Sprintf("WaveAudioEssenceDescriptor %x has dependents but none is an MCA label sub-descriptor", concrete.Base().InstanceUID.Bytes()),
	}
}
