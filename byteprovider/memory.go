// Package byteprovider ships the concrete klv.ByteProvider adapters
// used by callers of this library (CLI, server, TUI, tests). The core
// packages (klv, primer, bo, header) depend only on the
// klv.ByteProvider interface, never on this package.
package byteprovider

import (
	"fmt"
)

// MemoryProvider implements klv.ByteProvider over an in-memory byte
// slice, the common case for tests and for partitions that have
// already been read into memory (e.g. from an HTTP upload).
type MemoryProvider struct {
	data   []byte
	offset int64
}

// NewMemoryProvider wraps b for sequential KLV decoding starting at
// offset 0.
func NewMemoryProvider(b []byte) *MemoryProvider {
	return &MemoryProvider{data: b}
}

func (m *MemoryProvider) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("byteprovider: negative read length %d", n)
	}
	end := m.offset + int64(n)
	if end > int64(len(m.data)) {
		return nil, fmt.Errorf("byteprovider: short read: wanted %d bytes at offset %d, have %d total", n, m.offset, len(m.data))
	}
	b := m.data[m.offset:end]
	m.offset = end
	return b, nil
}

func (m *MemoryProvider) SkipBytes(n int) error {
	if n < 0 {
		return fmt.Errorf("byteprovider: negative skip length %d", n)
	}
	end := m.offset + int64(n)
	if end > int64(len(m.data)) {
		return fmt.Errorf("byteprovider: short skip: wanted %d bytes at offset %d, have %d total", n, m.offset, len(m.data))
	}
	m.offset = end
	return nil
}

func (m *MemoryProvider) CurrentOffset() int64 {
	return m.offset
}
