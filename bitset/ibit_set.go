/*
Package bitset implements the fixed-size bit arrays backing a membership
filter: in-memory (https://github.com/bits-and-blooms/bitset), Redis strings
(https://redis.io/docs/data-types/bitmaps/) and compressed roaring bitmaps
(https://github.com/RoaringBitmap/roaring).

Every implementation shares one textual encoding: exactly Size() symbols,
'0' or '1', with the highest bit first.
*/
package bitset

import "io"

type IBitSet interface {
	// Size returns the number of bits in the bitset
	Size() uint

	// Has returns true if the bit is set at index, else false
	Has(index uint) (bool, error)

	// HasMulti returns an array of boolean values for the queried
	// index values in the indexes array
	HasMulti(indexes []uint) ([]bool, error)

	// Insert sets the bit at index to true
	Insert(index uint) (bool, error)

	// InsertMulti sets the bits at the indices passed in the indexes array
	InsertMulti(indexes []uint) (bool, error)

	// BitCount returns the total number of set bits in the bitset
	BitCount() (uint, error)

	// Clear unsets every bit
	Clear() error

	// And keeps only the bits set in both bitsets
	And(other IBitSet) error

	// Or sets every bit set in either bitset
	Or(other IBitSet) error

	// Equals checks if two bitsets are equal
	Equals(other IBitSet) (bool, error)

	// Clone returns an independent copy on the same backend
	Clone() (IBitSet, error)

	// MarshalText returns the Size() symbol text encoding
	MarshalText() ([]byte, error)

	// UnmarshalText replaces the bits with the decoded text
	UnmarshalText(text []byte) error

	// WriteTo writes the text encoding onto the stream and
	// returns the number of bytes written
	WriteTo(stream io.Writer) (int64, error)

	// ReadFrom reads Size() symbols from the stream into the bitset
	// and returns the number of bytes read
	ReadFrom(stream io.Reader) (int64, error)
}

// IsBitSetMem is used to check if the passed variable `t`
// is of type *BitSetMem or not
func IsBitSetMem(t interface{}) bool {
	switch t.(type) {
	case *BitSetMem:
		return true
	default:
		return false
	}
}
