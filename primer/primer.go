// Package primer decodes the Primer Pack: the per-partition batch
// mapping local tags to the Universal Labels they stand for within
// every structural metadata set that follows it.
package primer

import (
	"github.com/ugparu/mxfheader/internal/byteorder"
	"github.com/ugparu/mxfheader/mxferrors"
	"github.com/ugparu/mxfheader/ul"
)

// itemSize is the fixed width of one Primer Pack batch entry:
// 2-byte local tag + 16-byte UL.
const itemSize = 18

// Table is an immutable local-tag -> UL mapping, built once from a
// partition's Primer Pack and never mutated afterward.
type Table struct {
	entries map[uint16]ul.UL
}

// Decode parses a Primer Pack's value: a batch header (count:u32,
// item_size:u32) followed by count entries of (local_tag:u16, ul:[16]
// byte). A declared item size other than 18, or a duplicate local tag
// within the batch, is malformed.
func Decode(value []byte) (*Table, error) {
	if len(value) < 8 {
		return nil, &mxferrors.MalformedPrimerError{Reason: "batch header truncated"}
	}

	count := byteorder.U32BE(value[0:])
	declaredItemSize := byteorder.U32BE(value[4:])
	if declaredItemSize != itemSize {
		return nil, &mxferrors.MalformedPrimerError{
			Reason: "declared item size is not 18 bytes (2-byte tag + 16-byte UL)",
		}
	}

	want := 8 + int(count)*itemSize
	if len(value) != want {
		return nil, &mxferrors.MalformedPrimerError{Reason: "batch length does not match declared entry count"}
	}

	t := &Table{entries: make(map[uint16]ul.UL, count)}
	for i := 0; i < int(count); i++ {
		offset := 8 + i*itemSize
		tag := byteorder.U16BE(value[offset:])
		label := ul.FromBytes(value[offset+2 : offset+itemSize])

		if _, exists := t.entries[tag]; exists {
			return nil, &mxferrors.MalformedPrimerError{Reason: "duplicate local tag in primer pack"}
		}
		t.entries[tag] = label
	}

	return t, nil
}

// Resolve returns the UL a local tag stands for in this partition, and
// whether the tag was present in the Primer Pack.
func (t *Table) Resolve(tag uint16) (ul.UL, bool) {
	label, ok := t.entries[tag]
	return label, ok
}

// Len reports the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
