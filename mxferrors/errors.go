// Package mxferrors declares the error taxonomy for the header
// partition parser. Each kind is its own exported struct, mirroring
// how the rest of this codebase spells out one type per failure mode
// instead of wrapping a shared sentinel.
package mxferrors

import "fmt"

// IoFailureError wraps a failure surfaced by the byte source.
type IoFailureError struct {
	Offset int64
	Cause  error
}

func (e *IoFailureError) Error() string {
	return fmt.Sprintf("mxf: io failure at offset %d: %v", e.Offset, e.Cause)
}

func (e *IoFailureError) Unwrap() error { return e.Cause }

// MalformedKLVError reports a truncated key or an invalid BER length.
type MalformedKLVError struct {
	Offset int64
	Reason string
}

func (e *MalformedKLVError) Error() string {
	return fmt.Sprintf("mxf: malformed KLV at offset %d: %s", e.Offset, e.Reason)
}

// UnexpectedOffsetError reports a header partition not located at the
// IMF-mandated byte offset 0.
type UnexpectedOffsetError struct {
	Expected, Actual int64
}

func (e *UnexpectedOffsetError) Error() string {
	return fmt.Sprintf("mxf: expected header partition at offset %d, found it at offset %d", e.Expected, e.Actual)
}

// InvalidPartitionPackError reports a partition pack that does not
// identify as a valid header partition.
type InvalidPartitionPackError struct {
	Reason string
}

func (e *InvalidPartitionPackError) Error() string {
	return "mxf: invalid header partition: " + e.Reason
}

// MissingPrimerError reports that neither the first nor the post-fill
// KLV following the partition pack is a Primer Pack.
type MissingPrimerError struct{}

func (e *MissingPrimerError) Error() string {
	return "mxf: could not find primer pack"
}

// MalformedPrimerError reports a bad primer batch header or a
// duplicate local tag within the primer pack.
type MalformedPrimerError struct {
	Reason string
}

func (e *MalformedPrimerError) Error() string {
	return "mxf: malformed primer pack: " + e.Reason
}

// FieldDecodeFailureError reports a field whose bytes could not be
// decoded by the type its set class declared for it.
type FieldDecodeFailureError struct {
	SetKey   string
	FieldUL  string
	Reason   string
}

func (e *FieldDecodeFailureError) Error() string {
	return fmt.Sprintf("mxf: field decode failure in %s field %s: %s", e.SetKey, e.FieldUL, e.Reason)
}

// MultiplePrefaceError reports more than one Preface set in the
// partition.
type MultiplePrefaceError struct {
	Count int
}

func (e *MultiplePrefaceError) Error() string {
	return fmt.Sprintf("mxf: found %d preface sets, only one is allowed in header partition", e.Count)
}

// NoPrefaceError reports the absence of any Preface set.
type NoPrefaceError struct{}

func (e *NoPrefaceError) Error() string {
	return "mxf: found no preface set in header partition"
}

// InvalidDescriptorError reports a descriptor whose dependents violate
// its class invariant (e.g. a WaveAudioEssenceDescriptor with strong
// references that resolve to no recognized sub-descriptor kind).
type InvalidDescriptorError struct {
	Reason string
}

func (e *InvalidDescriptorError) Error() string {
	return "mxf: invalid descriptor: " + e.Reason
}

// CyclicGraphError reports a cycle detected while topologically
// sorting the instance-UID dependency graph.
type CyclicGraphError struct {
	UID string
}

func (e *CyclicGraphError) Error() string {
	return fmt.Sprintf("mxf: cycle detected in dependency graph at instance uid %s", e.UID)
}

// ConstructionFailedError is raised by header.New when the error log
// accumulated at least one FATAL entry during construction.
type ConstructionFailedError struct {
	FatalCount int
}

func (e *ConstructionFailedError) Error() string {
	return fmt.Sprintf("mxf: %d fatal errors encountered when reading header partition", e.FatalCount)
}

// EmptyInputError is raised by cache.Cache.Parse when asked to digest
// and parse a zero-length byte slice.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "mxf: cannot parse an empty byte slice"
}
