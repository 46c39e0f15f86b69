// Package cache wraps header.New with a content-addressed memoization
// layer: the same bytes, digested once with BLAKE3, are parsed at most
// once. Parsing itself (header.New) stays synchronous and lock-free;
// this package is where the one piece of shared mutable state in the
// core lives.
package cache

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/ugparu/mxfheader/byteprovider"
	"github.com/ugparu/mxfheader/header"
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/zeebo/blake3"
)

// Digest is a BLAKE3-256 hash of the raw bytes a HeaderPartition was
// built from — the whole byte slice handed to Cache.Parse, including
// any bytes after the last structural KLV header.New consumed.
type Digest [32]byte

// Entry is a memoized parse result: the partition it resolved to, and
// the sequence number it was last touched at. Sequence numbers, not
// wall-clock time, order entries for eviction — construction is
// deterministic and the cache must be too.
type Entry struct {
	Digest    Digest
	Partition *header.HeaderPartition
	seq       uint64
}

// DefaultMaxEntries bounds a Cache created with New(0), keeping a
// long-running mxfserve process from retaining every distinct header
// partition it has ever seen.
const DefaultMaxEntries = 256

// Cache is a bounded, digest-keyed memoization table over
// header.New. Safe for concurrent use.
type Cache struct {
	mu         sync.RWMutex
	entries    map[Digest]*Entry
	maxEntries int
	nextSeq    uint64
}

// New creates a Cache holding at most maxEntries partitions, evicting
// the least-recently-touched entry once that bound is exceeded. A
// maxEntries of 0 or less uses DefaultMaxEntries.
func New(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Cache{
		entries:    make(map[Digest]*Entry),
		maxEntries: maxEntries,
	}
}

// Digest256 computes the BLAKE3-256 digest of b.
func Digest256(b []byte) Digest {
	return Digest(blake3.Sum256(b))
}

// String renders the digest as lowercase hex, the form mxfserve and
// mxfinspect expose it to callers in.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// ParseDigest decodes a hex-encoded digest string, such as one a
// client received from a prior Cache.Parse call.
func ParseDigest(s string) (Digest, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, fmt.Errorf("cache: invalid digest %q: %w", s, err)
	}
	if len(b) != len(Digest{}) {
		return Digest{}, fmt.Errorf("cache: digest %q has %d bytes, want %d", s, len(b), len(Digest{}))
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}

// Parse returns the HeaderPartition for b, parsing it with header.New
// only on a cache miss. A hit returns the exact *header.HeaderPartition
// pointer from the prior call — safe to share, since a HeaderPartition
// is immutable once header.New returns.
func (c *Cache) Parse(b []byte) (*header.HeaderPartition, error) {
	if len(b) == 0 {
		return nil, &mxferrors.EmptyInputError{}
	}

	digest := Digest256(b)

	if entry := c.lookup(digest); entry != nil {
		return entry.Partition, nil
	}

	hp, err := header.New(byteprovider.NewMemoryProvider(b))
	if err != nil {
		return nil, err
	}

	c.store(digest, hp)
	return hp, nil
}

// Get looks up a previously parsed partition by digest without
// supplying its bytes, the case mxfserve's read routes need once a
// client holds a digest from a prior upload.
func (c *Cache) Get(digest Digest) (*header.HeaderPartition, bool) {
	entry := c.lookup(digest)
	if entry == nil {
		return nil, false
	}
	return entry.Partition, true
}

func (c *Cache) lookup(digest Digest) *Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[digest]
	if !ok {
		return nil
	}
	c.nextSeq++
	entry.seq = c.nextSeq
	return entry
}

func (c *Cache) store(digest Digest, hp *header.HeaderPartition) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Lost the race to another goroutine parsing the same bytes;
	// keep the entry already stored rather than clobbering it.
	if _, ok := c.entries[digest]; ok {
		return
	}

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.nextSeq++
	c.entries[digest] = &Entry{Digest: digest, Partition: hp, seq: c.nextSeq}
}

// evictLocked removes the entry with the lowest sequence number. Called
// with mu held.
func (c *Cache) evictLocked() {
	var oldestDigest Digest
	var oldestSeq uint64
	first := true
	for d, e := range c.entries {
		if first || e.seq < oldestSeq {
			oldestDigest, oldestSeq = d, e.seq
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestDigest)
	}
}

// Len reports the number of partitions currently memoized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Digest]*Entry)
}
