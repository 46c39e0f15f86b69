package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// MaterialPackage is the rich object for a MaterialPackage set.
type MaterialPackage struct {
	bo *bo.MaterialPackage

	Tracks []GenericTrack
}

func newMaterialPackage(b *bo.MaterialPackage, tracks []GenericTrack) *MaterialPackage {
	return &MaterialPackage{bo: b, Tracks: tracks}
}

// InstanceUID returns the set's instance UID.
func (mp *MaterialPackage) InstanceUID() mxfuid.MXFUid { return mp.bo.Base().InstanceUID }

// PackageUID returns the package's UMID.
func (mp *MaterialPackage) PackageUID() mxfuid.MXFUid { return mp.bo.PackageUID }

// Name returns the decoded package name.
func (mp *MaterialPackage) Name() string { return mp.bo.Name }
