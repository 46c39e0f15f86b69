package klv

// ByteProvider is the byte-source contract the core consumes. It is
// borrowed for the duration of a single HeaderPartition construction
// call and is never retained beyond it. Implementations may be
// random-access or forward-only, but must answer CurrentOffset with
// the absolute offset of the next unread byte.
type ByteProvider interface {
	// ReadBytes returns exactly n bytes or an error; it never returns a
	// short read.
	ReadBytes(n int) ([]byte, error)
	// SkipBytes advances the cursor by n bytes without materializing
	// them.
	SkipBytes(n int) error
	// CurrentOffset reports the absolute byte offset of the next
	// unread byte.
	CurrentOffset() int64
}
