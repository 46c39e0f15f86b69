package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// ContentStorage is the rich object for the ContentStorage set: the
// Preface's fan-out into every package and essence container binding
// in the partition.
type ContentStorage struct {
	bo *bo.ContentStorage

	Packages             []GenericPackage
	EssenceContainerData []*EssenceContainerData
}

func newContentStorage(b *bo.ContentStorage, packages []GenericPackage, ecd []*EssenceContainerData) *ContentStorage {
	return &ContentStorage{bo: b, Packages: packages, EssenceContainerData: ecd}
}

// InstanceUID returns the set's instance UID.
func (cs *ContentStorage) InstanceUID() mxfuid.MXFUid { return cs.bo.Base().InstanceUID }
