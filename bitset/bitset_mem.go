package bitset

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bitset"
	"github.com/kwertop/lexiset"
)

// BitSetMem is an implementation of IBitSet.
// _size_ is the number of bits in the bitset
// _set_ is the bitset implementation adopted from https://github.com/bits-and-blooms/bitset
type BitSetMem struct {
	set  *bitset.BitSet
	size uint
}

// NewBitSetMem creates a new BitSetMem of size _size_
func NewBitSetMem(size uint) *BitSetMem {
	return &BitSetMem{bitset.New(size), size}
}

// FromDataMem creates an instance of BitSetMem after
// inserting the data passed in the bitset
func FromDataMem(data []uint64) *BitSetMem {
	return &BitSetMem{bitset.From(data), uint(len(data) * 64)}
}

// Size returns the size of the bitset
func (bitSet *BitSetMem) Size() uint {
	return bitSet.size
}

// Has checks if the bit at index _index_ is set
func (bitSet *BitSetMem) Has(index uint) (bool, error) {
	return bitSet.set.Test(index), nil
}

// HasMulti checks if the bit at the indices
// specified by _indexes_ array is set
func (bitSet *BitSetMem) HasMulti(indexes []uint) ([]bool, error) {
	result := make([]bool, len(indexes))
	for i, index := range indexes {
		result[i] = bitSet.set.Test(index)
	}
	return result, nil
}

// Insert sets the bit at index specified by _index_
func (bitSet *BitSetMem) Insert(index uint) (bool, error) {
	if index >= bitSet.size {
		return false, fmt.Errorf("%w: index %d out of range for bitset of size %d", lexiset.ErrInvalidArgument, index, bitSet.size)
	}
	bitSet.set.Set(index)
	return true, nil
}

// InsertMulti sets the bits at indices specified by array _indexes_
func (bitSet *BitSetMem) InsertMulti(indexes []uint) (bool, error) {
	for _, index := range indexes {
		if _, err := bitSet.Insert(index); err != nil {
			return false, err
		}
	}
	return true, nil
}

// BitCount returns the total number of set bits in the bitset
func (bitSet *BitSetMem) BitCount() (uint, error) {
	return bitSet.set.Count(), nil
}

// Clear unsets every bit
func (bitSet *BitSetMem) Clear() error {
	bitSet.set.ClearAll()
	return nil
}

// And intersects the bitset with _other_ in place
func (bitSet *BitSetMem) And(other IBitSet) error {
	otherSet, err := bitSet.asMem(other)
	if err != nil {
		return err
	}
	bitSet.set.InPlaceIntersection(otherSet.set)
	return nil
}

// Or unions the bitset with _other_ in place
func (bitSet *BitSetMem) Or(other IBitSet) error {
	otherSet, err := bitSet.asMem(other)
	if err != nil {
		return err
	}
	bitSet.set.InPlaceUnion(otherSet.set)
	return nil
}

// asMem returns _other_ as a BitSetMem of the same size, converting other
// backends through their text encoding
func (bitSet *BitSetMem) asMem(other IBitSet) (*BitSetMem, error) {
	if otherSet, ok := other.(*BitSetMem); ok {
		if otherSet.size != bitSet.size {
			return nil, fmt.Errorf("%w: bitset sizes differ (%d != %d)", lexiset.ErrInvalidArgument, bitSet.size, otherSet.size)
		}
		return otherSet, nil
	}
	text, err := textOf(other, bitSet.size)
	if err != nil {
		return nil, err
	}
	converted := NewBitSetMem(bitSet.size)
	if err := converted.UnmarshalText(text); err != nil {
		return nil, err
	}
	return converted, nil
}

// Equals checks if two bitsets hold the same bits
func (bitSet *BitSetMem) Equals(other IBitSet) (bool, error) {
	if other.Size() != bitSet.size {
		return false, nil
	}
	otherSet, err := bitSet.asMem(other)
	if err != nil {
		return false, err
	}
	return bitSet.set.Equal(otherSet.set), nil
}

// Clone returns a deep copy of the bitset
func (bitSet *BitSetMem) Clone() (IBitSet, error) {
	return &BitSetMem{bitSet.set.Clone(), bitSet.size}, nil
}

// MarshalText returns the '0'/'1' encoding of the bitset, highest bit first
func (bitSet *BitSetMem) MarshalText() ([]byte, error) {
	text := newZeroText(bitSet.size)
	for i, ok := bitSet.set.NextSet(0); ok && i < bitSet.size; i, ok = bitSet.set.NextSet(i + 1) {
		markText(text, i)
	}
	return text, nil
}

// UnmarshalText replaces the bits with those encoded in _text_.
// The bitset is left untouched if _text_ is malformed.
func (bitSet *BitSetMem) UnmarshalText(text []byte) error {
	indexes, err := decodeText(text, bitSet.size)
	if err != nil {
		return err
	}
	set := bitset.New(bitSet.size)
	for _, index := range indexes {
		set.Set(index)
	}
	bitSet.set = set
	return nil
}

// WriteTo writes the bitset to a stream and returns the number of bytes written onto the stream
func (bitSet *BitSetMem) WriteTo(stream io.Writer) (int64, error) {
	return writeText(bitSet, stream)
}

// ReadFrom reads the stream and imports it into the bitset and returns the number of bytes read
func (bitSet *BitSetMem) ReadFrom(stream io.Reader) (int64, error) {
	text, n, err := readText(stream, bitSet.size)
	if err != nil {
		return n, err
	}
	return n, bitSet.UnmarshalText(text)
}
