package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// Sequence is the rich object for a Sequence set: the ordered list of
// structural components a TimelineTrack plays out.
type Sequence struct {
	bo *bo.Sequence

	Components []StructuralComponent
}

func newSequence(b *bo.Sequence, components []StructuralComponent) *Sequence {
	return &Sequence{bo: b, Components: components}
}

// InstanceUID returns the set's instance UID.
func (s *Sequence) InstanceUID() mxfuid.MXFUid { return s.bo.Base().InstanceUID }

// Duration returns the decoded sequence duration.
func (s *Sequence) Duration() int64 { return s.bo.Duration }
