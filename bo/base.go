package bo

import (
	"github.com/ugparu/mxfheader/mxfuid"
	"github.com/ugparu/mxfheader/ul"
)

// Base is the common byte-object header shared by every decoded
// structural metadata set. It carries the set's own instance UID, its
// classified set class, the raw key it was decoded from, and every
// strong-reference UID the set's fields contained — in first-encounter
// order, regardless of which field produced it. The graph package
// consumes StrongRefs directly to build dependency edges; the header
// package's builder resolves each ref back to a rich object and
// dispatches it into the right constructor role by that object's Go
// type, not by which field of Base recorded it.
type Base struct {
	InstanceUID mxfuid.MXFUid
	Class       ul.SetClass
	Key         ul.UL
	StrongRefs  []mxfuid.MXFUid

	// Unknown retains the raw value bytes of any local tag this
	// decoder did not recognize, keyed by the field's raw local tag.
	// Diagnostic only; never consulted by the builder.
	Unknown map[uint16][]byte
}

// InterchangeObjectBO is implemented by every per-class byte object.
// It is the type the bo package hands to graph and header: enough to
// place the object in the dependency graph and, on the header side, to
// resolve it into a rich InterchangeObject.
type InterchangeObjectBO interface {
	// Base returns the object's common header fields.
	Base() *Base
}

// baseHolder is embedded by every concrete byte object so it need only
// implement Base() once.
type baseHolder struct {
	base Base
}

func (h *baseHolder) Base() *Base { return &h.base }

// AddStrongRef appends uid to the object's strong-reference list if it
// is not the zero value, preserving first-encounter order and allowing
// duplicate refs (a set legitimately referencing the same dependent
// through two fields records it twice; the graph builder adds one
// edge per recorded ref, and the repeated edge is harmless to the
// topological sort because its target is already marked permanent —
// Base just records what it saw).
func (h *baseHolder) AddStrongRef(uid mxfuid.MXFUid) {
	if uid.IsZero() {
		return
	}
	h.base.StrongRefs = append(h.base.StrongRefs, uid)
}

// AddStrongRefBatch appends every non-zero uid in refs.
func (h *baseHolder) AddStrongRefBatch(refs []mxfuid.MXFUid) {
	for _, uid := range refs {
		h.AddStrongRef(uid)
	}
}

// recordUnknown stashes an unrecognized local tag's raw value for
// diagnostics.
func (h *baseHolder) recordUnknown(tag uint16, value []byte) {
	if h.base.Unknown == nil {
		h.base.Unknown = make(map[uint16][]byte)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	h.base.Unknown[tag] = cp
}
