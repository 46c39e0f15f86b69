// Package header implements the Graph Resolver & Object Builder and
// the HeaderPartition facade: it takes the byte objects the bo package
// decodes, resolves their strong references into a dependency DAG via
// graph, topologically sorts it, and materializes the rich
// InterchangeObject variants in dependency order.
package header

import "github.com/ugparu/mxfheader/mxfuid"

// GenericPackage is implemented by every rich package variant
// (MaterialPackage, SourcePackage). The builder dispatches a resolved
// dependent into a package-typed constructor slot by asserting this
// interface, not by which BO field produced the strong ref.
type GenericPackage interface {
	InstanceUID() mxfuid.MXFUid
	PackageUID() mxfuid.MXFUid
}

// GenericTrack is implemented by every rich track variant. The IMF
// Essence Component profile only ever materializes TimelineTrack, but
// the interface keeps the builder's dispatch symmetric with the other
// three abstract categories.
type GenericTrack interface {
	InstanceUID() mxfuid.MXFUid
}

// GenericDescriptor is implemented by every rich essence descriptor
// variant (CDCI, RGBA, WaveAudio).
type GenericDescriptor interface {
	InstanceUID() mxfuid.MXFUid
}

// StructuralComponent is implemented by every rich structural
// component variant. The profile only ever materializes SourceClip.
type StructuralComponent interface {
	InstanceUID() mxfuid.MXFUid
}
