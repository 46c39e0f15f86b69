// Package ul defines the 16-byte SMPTE Universal Label type and the
// registered label constants the rest of the parser dispatches on:
// the Partition Pack, Primer Pack, and KLV Fill Item keys, plus the
// per-structural-metadata-class keys bo's dispatch table keys off of.
package ul

// Size is the fixed width of a Universal Label.
const Size = 16

// UL is a 16-byte SMPTE Universal Label, compared as a whole word
// except where the registry explicitly marks a byte "don't care".
type UL [Size]byte

// registryVersionByte is the 0-indexed position of the registry
// version byte (spec's "byte 8", 1-indexed) that structural-set key
// comparisons must mask.
const registryVersionByte = 7

// FromBytes copies b (which must be exactly Size bytes) into a UL.
func FromBytes(b []byte) UL {
	var u UL
	copy(u[:], b)
	return u
}

// Equal compares two labels byte-for-byte.
func (u UL) Equal(other UL) bool {
	return u == other
}

// EqualAsStructuralClass compares two labels for equality while
// masking the registry version byte, the don't-care position the MXF
// specification defines for matching a KLV key against a registered
// structural-metadata set class.
func (u UL) EqualAsStructuralClass(other UL) bool {
	for i := 0; i < Size; i++ {
		if i == registryVersionByte {
			continue
		}
		if u[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the label in the conventional dotted-group hex form.
func (u UL) String() string {
	const hexDigits = "0123456789abcdef"
	out := make([]byte, 0, Size*2+3)
	for i, b := range u {
		if i > 0 && i%4 == 0 {
			out = append(out, '.')
		}
		out = append(out, hexDigits[b>>4], hexDigits[b&0xf])
	}
	return string(out)
}
