/*
Package hash implements the hash family of a membership filter: k seeded hash
functions, each reducing an item to a bit position modulo the filter size.

The seeds are a fixed function of k, seed_i = 31 + i*37, so two filters built
with the same size, k and Hasher map every item to the same positions and can
be merged bit by bit.
*/
package hash

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-metro"
)

const (
	seedBase = 31
	seedStep = 37
)

// Hasher computes a seeded 64-bit hash of data.
type Hasher func(data []byte, seed uint64) uint64

// Metro hashes with metro hash 64, the default.
func Metro(data []byte, seed uint64) uint64 {
	return metro.Hash64(data, seed)
}

// Murmur hashes with the first lane of murmur3 x64 128.
func Murmur(data []byte, seed uint64) uint64 {
	h1, _ := Sum128(data, seed)
	return h1
}

// XXHash hashes with seeded xxh64.
func XXHash(data []byte, seed uint64) uint64 {
	d := xxhash.NewWithSeed(seed)
	_, _ = d.Write(data)
	return d.Sum64()
}

var hashers = map[string]Hasher{
	"metro":  Metro,
	"murmur": Murmur,
	"xxhash": XXHash,
}

// HasherByName resolves "metro", "murmur" or "xxhash". An empty name is metro.
func HasherByName(name string) (Hasher, error) {
	if name == "" {
		return Metro, nil
	}
	h, ok := hashers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("lexiset: unknown hasher %q", name)
	}
	return h, nil
}

// Family is a fixed, deterministic set of k seeded hash functions.
type Family struct {
	seeds  []uint64
	hasher Hasher
}

// NewFamily creates a Family of _numHashes_ functions over _hasher_.
// A nil hasher means Metro.
func NewFamily(numHashes uint, hasher Hasher) *Family {
	if hasher == nil {
		hasher = Metro
	}
	seeds := make([]uint64, numHashes)
	for i := range seeds {
		seeds[i] = seedBase + uint64(i)*seedStep
	}
	return &Family{seeds: seeds, hasher: hasher}
}

// NumHashes returns k
func (f *Family) NumHashes() uint {
	return uint(len(f.seeds))
}

// Seeds returns a copy of the seeds in order
func (f *Family) Seeds() []uint64 {
	seeds := make([]uint64, len(f.seeds))
	copy(seeds, f.seeds)
	return seeds
}

// Hasher returns the underlying hash function
func (f *Family) Hasher() Hasher {
	return f.hasher
}

// Index returns hash(data, seed_i) mod size
func (f *Family) Index(data []byte, i int, size uint) uint {
	return uint(f.hasher(data, f.seeds[i]) % uint64(size))
}

// Indexes returns the k bit positions of _data_ in a filter of _size_ bits,
// in seed order
func (f *Family) Indexes(data []byte, size uint) []uint {
	return f.AppendIndexes(make([]uint, 0, len(f.seeds)), data, size)
}

// AppendIndexes appends the k bit positions of _data_ to dst
func (f *Family) AppendIndexes(dst []uint, data []byte, size uint) []uint {
	for i := range f.seeds {
		dst = append(dst, f.Index(data, i, size))
	}
	return dst
}
