package bitset

import (
	"fmt"
	"io"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/kwertop/lexiset"
)

// BitSetRoaring is an implementation of IBitSet over a compressed roaring
// bitmap. It suits very large, sparsely populated filters: memory grows with
// the number of set bits instead of the size.
type BitSetRoaring struct {
	bitmap *roaring.Bitmap
	size   uint
}

// NewBitSetRoaring creates a new BitSetRoaring of size _size_.
// Roaring bitmaps address 32-bit positions, so size can't exceed 2^32.
func NewBitSetRoaring(size uint) (*BitSetRoaring, error) {
	if uint64(size) > math.MaxUint32+1 {
		return nil, fmt.Errorf("%w: roaring bitset size %d exceeds 2^32", lexiset.ErrInvalidArgument, size)
	}
	return &BitSetRoaring{roaring.New(), size}, nil
}

// Size returns the size of the bitset
func (bitSet *BitSetRoaring) Size() uint {
	return bitSet.size
}

// Has checks if the bit at index _index_ is set
func (bitSet *BitSetRoaring) Has(index uint) (bool, error) {
	if index >= bitSet.size {
		return false, nil
	}
	return bitSet.bitmap.Contains(uint32(index)), nil
}

// HasMulti checks if the bit at the indices
// specified by _indexes_ array is set
func (bitSet *BitSetRoaring) HasMulti(indexes []uint) ([]bool, error) {
	result := make([]bool, len(indexes))
	for i, index := range indexes {
		result[i], _ = bitSet.Has(index)
	}
	return result, nil
}

// Insert sets the bit at index specified by _index_
func (bitSet *BitSetRoaring) Insert(index uint) (bool, error) {
	if index >= bitSet.size {
		return false, fmt.Errorf("%w: index %d out of range for bitset of size %d", lexiset.ErrInvalidArgument, index, bitSet.size)
	}
	bitSet.bitmap.Add(uint32(index))
	return true, nil
}

// InsertMulti sets the bits at indices specified by array _indexes_
func (bitSet *BitSetRoaring) InsertMulti(indexes []uint) (bool, error) {
	values := make([]uint32, len(indexes))
	for i, index := range indexes {
		if index >= bitSet.size {
			return false, fmt.Errorf("%w: index %d out of range for bitset of size %d", lexiset.ErrInvalidArgument, index, bitSet.size)
		}
		values[i] = uint32(index)
	}
	bitSet.bitmap.AddMany(values)
	return true, nil
}

// BitCount returns the total number of set bits in the bitset
func (bitSet *BitSetRoaring) BitCount() (uint, error) {
	return uint(bitSet.bitmap.GetCardinality()), nil
}

// Clear unsets every bit
func (bitSet *BitSetRoaring) Clear() error {
	bitSet.bitmap.Clear()
	return nil
}

// And intersects the bitset with _other_ in place
func (bitSet *BitSetRoaring) And(other IBitSet) error {
	otherSet, err := bitSet.asRoaring(other)
	if err != nil {
		return err
	}
	bitSet.bitmap.And(otherSet.bitmap)
	return nil
}

// Or unions the bitset with _other_ in place
func (bitSet *BitSetRoaring) Or(other IBitSet) error {
	otherSet, err := bitSet.asRoaring(other)
	if err != nil {
		return err
	}
	bitSet.bitmap.Or(otherSet.bitmap)
	return nil
}

func (bitSet *BitSetRoaring) asRoaring(other IBitSet) (*BitSetRoaring, error) {
	if otherSet, ok := other.(*BitSetRoaring); ok {
		if otherSet.size != bitSet.size {
			return nil, fmt.Errorf("%w: bitset sizes differ (%d != %d)", lexiset.ErrInvalidArgument, bitSet.size, otherSet.size)
		}
		return otherSet, nil
	}
	text, err := textOf(other, bitSet.size)
	if err != nil {
		return nil, err
	}
	converted := &BitSetRoaring{roaring.New(), bitSet.size}
	if err := converted.UnmarshalText(text); err != nil {
		return nil, err
	}
	return converted, nil
}

// Equals checks if two bitsets hold the same bits
func (bitSet *BitSetRoaring) Equals(other IBitSet) (bool, error) {
	if other.Size() != bitSet.size {
		return false, nil
	}
	otherSet, err := bitSet.asRoaring(other)
	if err != nil {
		return false, err
	}
	return bitSet.bitmap.Equals(otherSet.bitmap), nil
}

// Clone returns a deep copy of the bitset
func (bitSet *BitSetRoaring) Clone() (IBitSet, error) {
	return &BitSetRoaring{bitSet.bitmap.Clone(), bitSet.size}, nil
}

// MarshalText returns the '0'/'1' encoding of the bitset, highest bit first
func (bitSet *BitSetRoaring) MarshalText() ([]byte, error) {
	text := newZeroText(bitSet.size)
	it := bitSet.bitmap.Iterator()
	for it.HasNext() {
		markText(text, uint(it.Next()))
	}
	return text, nil
}

// UnmarshalText replaces the bits with those encoded in _text_.
// The bitset is left untouched if _text_ is malformed.
func (bitSet *BitSetRoaring) UnmarshalText(text []byte) error {
	indexes, err := decodeText(text, bitSet.size)
	if err != nil {
		return err
	}
	bitmap := roaring.New()
	for _, index := range indexes {
		bitmap.Add(uint32(index))
	}
	bitSet.bitmap = bitmap
	return nil
}

// WriteTo writes the bitset to a stream and returns the number of bytes written onto the stream
func (bitSet *BitSetRoaring) WriteTo(stream io.Writer) (int64, error) {
	return writeText(bitSet, stream)
}

// ReadFrom reads the stream and imports it into the bitset and returns the number of bytes read
func (bitSet *BitSetRoaring) ReadFrom(stream io.Reader) (int64, error) {
	text, n, err := readText(stream, bitSet.size)
	if err != nil {
		return n, err
	}
	return n, bitSet.UnmarshalText(text)
}
