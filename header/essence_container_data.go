package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// EssenceContainerData is the rich object for an EssenceContainerData
// set: the binding between a source package and the essence container
// stream IDs carrying its samples.
type EssenceContainerData struct {
	bo *bo.EssenceContainerData

	// LinkedPackage is nil when LinkedPackageUID does not resolve to a
	// package in this partition, mirroring SourceClip.SourcePackage.
	LinkedPackage GenericPackage
}

func newEssenceContainerData(b *bo.EssenceContainerData, linked GenericPackage) *EssenceContainerData {
	return &EssenceContainerData{bo: b, LinkedPackage: linked}
}

// InstanceUID returns the set's instance UID.
func (e *EssenceContainerData) InstanceUID() mxfuid.MXFUid { return e.bo.Base().InstanceUID }

// BodySID returns the decoded body stream ID.
func (e *EssenceContainerData) BodySID() uint32 { return e.bo.BodySID }

// IndexSID returns the decoded index stream ID.
func (e *EssenceContainerData) IndexSID() uint32 { return e.bo.IndexSID }
