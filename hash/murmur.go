package hash

import (
	"encoding/binary"
	"math/bits"
)

const (
	murmurC1    = 0x87c37b91114253d5
	murmurC2    = 0x4cf5ad432745937f
	murmurBlock = 16
)

func mixK1(k uint64) uint64 {
	return bits.RotateLeft64(k*murmurC1, 31) * murmurC2
}

func mixK2(k uint64) uint64 {
	return bits.RotateLeft64(k*murmurC2, 33) * murmurC1
}

func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}

// littleEndian reads up to 8 bytes of _p_ as a little-endian word
func littleEndian(p []byte) uint64 {
	var k uint64
	for i := len(p) - 1; i >= 0; i-- {
		k = k<<8 | uint64(p[i])
	}
	return k
}

// Sum128 is murmur3 x64 128-bit with both lanes initialized to _seed_.
func Sum128(data []byte, seed uint64) (h1 uint64, h2 uint64) {
	h1, h2 = seed, seed

	rest := data
	for ; len(rest) >= murmurBlock; rest = rest[murmurBlock:] {
		h1 ^= mixK1(binary.LittleEndian.Uint64(rest))
		h1 = bits.RotateLeft64(h1, 27) + h2
		h1 = h1*5 + 0x52dce729

		h2 ^= mixK2(binary.LittleEndian.Uint64(rest[8:]))
		h2 = bits.RotateLeft64(h2, 31) + h1
		h2 = h2*5 + 0x38495ab5
	}

	if len(rest) > 8 {
		h2 ^= mixK2(littleEndian(rest[8:]))
		rest = rest[:8]
	}
	if len(rest) > 0 {
		h1 ^= mixK1(littleEndian(rest))
	}

	h1 ^= uint64(len(data))
	h2 ^= uint64(len(data))
	h1 += h2
	h2 += h1
	h1 = fmix64(h1)
	h2 = fmix64(h2)
	h1 += h2
	h2 += h1
	return h1, h2
}
