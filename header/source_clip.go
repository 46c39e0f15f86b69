package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// SourceClip is the rich object for a SourceClip set: a reference into
// a source package's essence, by UMID and track ID.
type SourceClip struct {
	bo *bo.SourceClip

	// SourcePackage is nil when the SourceClip's SourcePackageID does
	// not resolve to any package in this partition — a legitimate,
	// non-fatal condition (the clip may reference essence in a body
	// partition or an external package this header doesn't carry).
	SourcePackage GenericPackage
}

func newSourceClip(b *bo.SourceClip, sourcePackage GenericPackage) *SourceClip {
	return &SourceClip{bo: b, SourcePackage: sourcePackage}
}

// InstanceUID returns the set's instance UID.
func (sc *SourceClip) InstanceUID() mxfuid.MXFUid { return sc.bo.Base().InstanceUID }

// Duration returns the decoded clip duration.
func (sc *SourceClip) Duration() int64 { return sc.bo.Duration }

// StartPosition returns the decoded clip start position.
func (sc *SourceClip) StartPosition() int64 { return sc.bo.StartPosition }
