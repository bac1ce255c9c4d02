// Package util holds the sizing math and small helpers shared by the filter,
// bitset and authority packages.
package util

import (
	"math"
	"math/rand"
	"time"
	"unsafe"
)

var src = rand.NewSource(time.Now().UnixNano())

const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// Max returns the larger of a and b
func Max(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}

// CalculateFilterSize returns the number of bits needed to hold _length_
// items at the false positive rate _errorRate_
func CalculateFilterSize(length uint, errorRate float64) uint {
	return uint(math.Ceil(-((float64(length) * math.Log(errorRate)) / math.Pow(math.Log(2), 2))))
}

// CalculateNumHashes returns the optimal number of hash functions for a
// filter of _size_ bits holding _length_ items
func CalculateNumHashes(size, length uint) uint {
	if length == 0 {
		return 1
	}
	return uint(math.Ceil(float64(size) / float64(length) * math.Log(2)))
}

// FalsePositiveRate is the expected false positive rate of a filter of
// _size_ bits with _numHashes_ hash functions after _numItems_ insertions:
// (1 - e^(-k*n/m))^k
func FalsePositiveRate(size, numHashes, numItems uint) float64 {
	if size == 0 {
		return 1
	}
	k := float64(numHashes)
	return math.Pow(1-math.Exp(-k*float64(numItems)/float64(size)), k)
}

// FillRatioRate estimates the false positive rate from the fraction of set
// bits: (setBits/size)^k
func FillRatioRate(size, numHashes, setBits uint) float64 {
	if size == 0 {
		return 1
	}
	return math.Pow(float64(setBits)/float64(size), float64(numHashes))
}

// GenerateRandomString returns a random alphabetic string of length _n_,
// used to name redis keys
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	// A src.Int63() generates 63 random bits, enough for letterIdxMax characters!
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}

	return *(*string)(unsafe.Pointer(&b))
}
