package bitset

import (
	"fmt"
	"io"

	"github.com/kwertop/lexiset"
)

const (
	zeroSymbol = '0'
	oneSymbol  = '1'
)

func newZeroText(size uint) []byte {
	text := make([]byte, size)
	for i := range text {
		text[i] = zeroSymbol
	}
	return text
}

// markText sets bit _index_ in a text of _size_ symbols, highest bit first
func markText(text []byte, index uint) {
	text[uint(len(text))-1-index] = oneSymbol
}

// decodeText returns the indexes of the set bits in _text_
func decodeText(text []byte, size uint) ([]uint, error) {
	if uint(len(text)) != size {
		return nil, fmt.Errorf("%w: bitset text has %d symbols, expected %d", lexiset.ErrInvalidArgument, len(text), size)
	}
	var indexes []uint
	for pos, symbol := range text {
		switch symbol {
		case zeroSymbol:
		case oneSymbol:
			indexes = append(indexes, size-1-uint(pos))
		default:
			return nil, fmt.Errorf("%w: invalid bitset symbol %q at position %d", lexiset.ErrInvalidArgument, symbol, pos)
		}
	}
	return indexes, nil
}

func writeText(bitSet IBitSet, stream io.Writer) (int64, error) {
	text, err := bitSet.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := stream.Write(text)
	return int64(n), err
}

// readText skips leading whitespace and reads exactly _size_ symbols
func readText(stream io.Reader, size uint) ([]byte, int64, error) {
	if size == 0 {
		return []byte{}, 0, nil
	}
	var read int64
	first := make([]byte, 1)
	for {
		n, err := stream.Read(first)
		read += int64(n)
		if n == 1 && !isSpace(first[0]) {
			break
		}
		if err != nil {
			return nil, read, fmt.Errorf("lexiset: error reading bitset: %w", err)
		}
	}
	text := make([]byte, size)
	text[0] = first[0]
	n, err := io.ReadFull(stream, text[1:])
	read += int64(n)
	if err != nil {
		return nil, read, fmt.Errorf("lexiset: error reading bitset: %w", err)
	}
	return text, read, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\n' || b == '\t' || b == '\r'
}

// textOf returns the text of any bitset after checking its size matches
func textOf(other IBitSet, size uint) ([]byte, error) {
	if other.Size() != size {
		return nil, fmt.Errorf("%w: bitset sizes differ (%d != %d)", lexiset.ErrInvalidArgument, size, other.Size())
	}
	return other.MarshalText()
}
