package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// SourcePackage is the rich object for a SourcePackage set: the
// essence-bearing package a MaterialPackage's SourceClips resolve to.
type SourcePackage struct {
	bo *bo.SourcePackage

	Tracks     []GenericTrack
	Descriptor GenericDescriptor
}

func newSourcePackage(b *bo.SourcePackage, tracks []GenericTrack, descriptor GenericDescriptor) *SourcePackage {
	return &SourcePackage{bo: b, Tracks: tracks, Descriptor: descriptor}
}

// InstanceUID returns the set's instance UID.
func (sp *SourcePackage) InstanceUID() mxfuid.MXFUid { return sp.bo.Base().InstanceUID }

// PackageUID returns the package's UMID.
func (sp *SourcePackage) PackageUID() mxfuid.MXFUid { return sp.bo.PackageUID }

// Name returns the decoded package name.
func (sp *SourcePackage) Name() string { return sp.bo.Name }
