package header

import (
	"github.com/ugparu/mxfheader/bo"
	"github.com/ugparu/mxfheader/mxfuid"
)

// CDCIPictureEssenceDescriptor is the rich object for a
// CDCIPictureEssenceDescriptor set.
//
// Deliberately does not carry its sub-descriptors as a constructor
// argument — matching the original implementation (see DESIGN.md's
// Open Question entry). Callers reach sub-descriptors through
// HeaderPartition.SubDescriptors, which dereferences the BO's
// SubDescriptorUIDs directly.
type CDCIPictureEssenceDescriptor struct {
	bo *bo.CDCIPictureEssenceDescriptor
}

func newCDCIPictureEssenceDescriptor(b *bo.CDCIPictureEssenceDescriptor) *CDCIPictureEssenceDescriptor {
	return &CDCIPictureEssenceDescriptor{bo: b}
}

// InstanceUID returns the set's instance UID.
func (d *CDCIPictureEssenceDescriptor) InstanceUID() mxfuid.MXFUid { return d.bo.Base().InstanceUID }

// StoredDimensions returns the decoded stored picture width and
// height.
func (d *CDCIPictureEssenceDescriptor) StoredDimensions() (width, height uint32) {
	return d.bo.StoredWidth, d.bo.StoredHeight
}

// RGBAPictureEssenceDescriptor is the rich object for an
// RGBAPictureEssenceDescriptor set.
type RGBAPictureEssenceDescriptor struct {
	bo *bo.RGBAPictureEssenceDescriptor
}

func newRGBAPictureEssenceDescriptor(b *bo.RGBAPictureEssenceDescriptor) *RGBAPictureEssenceDescriptor {
	return &RGBAPictureEssenceDescriptor{bo: b}
}

// InstanceUID returns the set's instance UID.
func (d *RGBAPictureEssenceDescriptor) InstanceUID() mxfuid.MXFUid { return d.bo.Base().InstanceUID }

// StoredDimensions returns the decoded stored picture width and
// height.
func (d *RGBAPictureEssenceDescriptor) StoredDimensions() (width, height uint32) {
	return d.bo.StoredWidth, d.bo.StoredHeight
}

// WaveAudioEssenceDescriptor is the rich object for a
// WaveAudioEssenceDescriptor set.
//
// Like CDCIPictureEssenceDescriptor, does not carry sub-descriptors as
// a constructor argument even though the builder enforces the
// sub-descriptor-kind invariant against its BO before constructing it.
type WaveAudioEssenceDescriptor struct {
	bo *bo.WaveAudioEssenceDescriptor
}

func newWaveAudioEssenceDescriptor(b *bo.WaveAudioEssenceDescriptor) *WaveAudioEssenceDescriptor {
	return &WaveAudioEssenceDescriptor{bo: b}
}

// InstanceUID returns the set's instance UID.
func (d *WaveAudioEssenceDescriptor) InstanceUID() mxfuid.MXFUid { return d.bo.Base().InstanceUID }

// Channels returns the decoded channel count.
func (d *WaveAudioEssenceDescriptor) Channels() uint32 { return d.bo.Channels }

// AudioSamplingRate returns the decoded sampling rate.
func (d *WaveAudioEssenceDescriptor) AudioSamplingRate() bo.Rational { return d.bo.AudioSamplingRate }
