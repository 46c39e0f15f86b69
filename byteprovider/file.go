package byteprovider

import (
	"fmt"
	"io"
	"os"
)

// FileProvider implements klv.ByteProvider over an os.File opened for
// random access, the adapter cmd/mxfdump and cmd/mxfinspect use to feed
// header.New without reading an entire file into memory first.
type FileProvider struct {
	f      *os.File
	offset int64
}

// NewFileProvider opens path for reading.
func NewFileProvider(path string) (*FileProvider, error) {
	return NewFileProviderAt(path, 0)
}

// NewFileProviderAt opens path for reading and seeks to byteOffset
// before treating that position as the provider's logical offset
// zero — the mxfdump --at-offset case, where the header partition to
// parse is not the first thing in the file.
func NewFileProviderAt(path string, byteOffset int64) (*FileProvider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("byteprovider: open %s: %w", path, err)
	}
	if byteOffset != 0 {
		if _, err := f.Seek(byteOffset, io.SeekStart); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("byteprovider: seek %s to %d: %w", path, byteOffset, err)
		}
	}
	return &FileProvider{f: f}, nil
}

// Close releases the underlying file handle.
func (f *FileProvider) Close() error {
	return f.f.Close()
}

func (f *FileProvider) ReadBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(f.f, b); err != nil {
		return nil, fmt.Errorf("byteprovider: read %d bytes at offset %d: %w", n, f.offset, err)
	}
	f.offset += int64(n)
	return b, nil
}

func (f *FileProvider) SkipBytes(n int) error {
	if _, err := f.f.Seek(int64(n), io.SeekCurrent); err != nil {
		return fmt.Errorf("byteprovider: skip %d bytes at offset %d: %w", n, f.offset, err)
	}
	f.offset += int64(n)
	return nil
}

func (f *FileProvider) CurrentOffset() int64 {
	return f.offset
}
