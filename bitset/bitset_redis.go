package bitset

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kwertop/lexiset"
	"github.com/kwertop/lexiset/internal/util"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "lexiset:bits:"

// BitSetRedis is an implementation of IBitSet.
// size is the number of bits in the bitset
// key is the redis key to the bitset data structure in redis
// Bitsets or Bitmaps are implemented in Redis using string.
// All bit operations are done on the string stored at _key_.
// Redis numbers bits from the most significant bit of the first byte.
type BitSetRedis struct {
	client *redis.Client
	size   uint
	key    string
}

// NewBitSetRedis creates a new zeroed BitSetRedis of size _size_ at a random key
func NewBitSetRedis(client *redis.Client, size uint) (*BitSetRedis, error) {
	bitSet := &BitSetRedis{client: client, size: size, key: redisKeyPrefix + util.GenerateRandomString(16)}
	if err := bitSet.Clear(); err != nil {
		return nil, err
	}
	return bitSet, nil
}

// NewBitSetRedisWithKey attaches to the bitset at _key_, creating a zeroed
// one if the key doesn't exist yet
func NewBitSetRedisWithKey(client *redis.Client, size uint, key string) (*BitSetRedis, error) {
	bitSet := &BitSetRedis{client: client, size: size, key: key}
	err := client.SetNX(context.Background(), key, string(make([]byte, byteLen(size))), 0).Err()
	if err != nil {
		return nil, fmt.Errorf("lexiset: error while creating bitset in redis: %w", err)
	}
	return bitSet, nil
}

func byteLen(size uint) uint {
	return (size + 7) / 8
}

// Size returns the size of the bitset
func (bitSet *BitSetRedis) Size() uint {
	return bitSet.size
}

// Key gives the key at which the bitset is saved in redis
func (bitSet *BitSetRedis) Key() string {
	return bitSet.key
}

// Client returns the redis client holding the bitset
func (bitSet *BitSetRedis) Client() *redis.Client {
	return bitSet.client
}

// Has checks if the bit at index _index_ is set
func (bitSet *BitSetRedis) Has(index uint) (bool, error) {
	if index >= bitSet.size {
		return false, nil
	}
	val, err := bitSet.client.GetBit(context.Background(), bitSet.key, int64(index)).Result()
	if err != nil {
		return false, err
	}
	return val != 0, nil
}

// HasMulti checks if the bit at the indices
// specified by _indexes_ array is set
func (bitSet *BitSetRedis) HasMulti(indexes []uint) ([]bool, error) {
	if len(indexes) == 0 {
		return nil, fmt.Errorf("lexiset: at least 1 index is required")
	}
	pipe := bitSet.client.Pipeline()
	ctx := context.Background()
	values := make([]*redis.IntCmd, len(indexes))
	for i := range indexes {
		values[i] = pipe.GetBit(ctx, bitSet.key, int64(indexes[i]))
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]bool, len(values))
	for i := range values {
		result[i] = indexes[i] < bitSet.size && values[i].Val() != 0
	}
	return result, nil
}

// Insert sets the bit at index specified by _index_
func (bitSet *BitSetRedis) Insert(index uint) (bool, error) {
	if index >= bitSet.size {
		return false, fmt.Errorf("%w: index %d out of range for bitset of size %d", lexiset.ErrInvalidArgument, index, bitSet.size)
	}
	err := bitSet.client.SetBit(context.Background(), bitSet.key, int64(index), 1).Err()
	if err != nil {
		return false, err
	}
	return true, nil
}

// InsertMulti sets the bits at indices specified by array _indexes_
func (bitSet *BitSetRedis) InsertMulti(indexes []uint) (bool, error) {
	if len(indexes) == 0 {
		return false, fmt.Errorf("lexiset: at least 1 index is required")
	}
	for _, index := range indexes {
		if index >= bitSet.size {
			return false, fmt.Errorf("%w: index %d out of range for bitset of size %d", lexiset.ErrInvalidArgument, index, bitSet.size)
		}
	}
	pipe := bitSet.client.Pipeline()
	ctx := context.Background()
	for i := range indexes {
		pipe.SetBit(ctx, bitSet.key, int64(indexes[i]), 1)
	}
	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, err
	}
	return true, nil
}

// BitCount returns the total number of set bits in the bitset saved in redis
func (bitSet *BitSetRedis) BitCount() (uint, error) {
	bitRange := &redis.BitCount{Start: 0, End: -1}
	val, err := bitSet.client.BitCount(context.Background(), bitSet.key, bitRange).Result()
	if err != nil {
		return 0, err
	}
	return uint(val), nil
}

// Clear overwrites the bitset with zero bytes
func (bitSet *BitSetRedis) Clear() error {
	return bitSet.store(make([]byte, byteLen(bitSet.size)))
}

// And intersects the bitset with _other_ in place. Two redis bitsets on the
// same client are combined server side with BITOP AND.
func (bitSet *BitSetRedis) And(other IBitSet) error {
	return bitSet.combine(other, "and")
}

// Or unions the bitset with _other_ in place. Two redis bitsets on the
// same client are combined server side with BITOP OR.
func (bitSet *BitSetRedis) Or(other IBitSet) error {
	return bitSet.combine(other, "or")
}

func (bitSet *BitSetRedis) combine(other IBitSet, op string) error {
	if other.Size() != bitSet.size {
		return fmt.Errorf("%w: bitset sizes differ (%d != %d)", lexiset.ErrInvalidArgument, bitSet.size, other.Size())
	}
	ctx := context.Background()
	if otherSet, ok := other.(*BitSetRedis); ok && otherSet.client == bitSet.client {
		var err error
		if op == "and" {
			err = bitSet.client.BitOpAnd(ctx, bitSet.key, bitSet.key, otherSet.key).Err()
		} else {
			err = bitSet.client.BitOpOr(ctx, bitSet.key, bitSet.key, otherSet.key).Err()
		}
		if err != nil {
			return fmt.Errorf("lexiset: error while merging bitsets in redis: %w", err)
		}
		return nil
	}
	text, err := textOf(other, bitSet.size)
	if err != nil {
		return err
	}
	otherBytes, err := textToRedisBytes(text, bitSet.size)
	if err != nil {
		return err
	}
	current, err := bitSet.load()
	if err != nil {
		return err
	}
	for i := range current {
		if op == "and" {
			current[i] &= otherBytes[i]
		} else {
			current[i] |= otherBytes[i]
		}
	}
	return bitSet.store(current)
}

// Equals checks if two bitsets hold the same bits
func (bitSet *BitSetRedis) Equals(other IBitSet) (bool, error) {
	if other.Size() != bitSet.size {
		return false, nil
	}
	current, err := bitSet.load()
	if err != nil {
		return false, err
	}
	var otherBytes []byte
	if otherSet, ok := other.(*BitSetRedis); ok {
		otherBytes, err = otherSet.load()
	} else {
		var text []byte
		text, err = other.MarshalText()
		if err == nil {
			otherBytes, err = textToRedisBytes(text, bitSet.size)
		}
	}
	if err != nil {
		return false, err
	}
	return string(current) == string(otherBytes), nil
}

// Clone copies the bitset to a new random key on the same client
func (bitSet *BitSetRedis) Clone() (IBitSet, error) {
	current, err := bitSet.load()
	if err != nil {
		return nil, err
	}
	clone := &BitSetRedis{client: bitSet.client, size: bitSet.size, key: redisKeyPrefix + util.GenerateRandomString(16)}
	if err := clone.store(current); err != nil {
		return nil, err
	}
	return clone, nil
}

// Destroy deletes the bitset's key from redis
func (bitSet *BitSetRedis) Destroy(ctx context.Context) error {
	return bitSet.client.Del(ctx, bitSet.key).Err()
}

// MarshalText returns the '0'/'1' encoding of the bitset, highest bit first
func (bitSet *BitSetRedis) MarshalText() ([]byte, error) {
	current, err := bitSet.load()
	if err != nil {
		return nil, err
	}
	text := newZeroText(bitSet.size)
	for i := uint(0); i < bitSet.size; i++ {
		if current[i/8]&(0x80>>(i%8)) != 0 {
			markText(text, i)
		}
	}
	return text, nil
}

// UnmarshalText replaces the bits with those encoded in _text_.
// The bitset is left untouched if _text_ is malformed.
func (bitSet *BitSetRedis) UnmarshalText(text []byte) error {
	data, err := textToRedisBytes(text, bitSet.size)
	if err != nil {
		return err
	}
	return bitSet.store(data)
}

// WriteTo writes the bitset to a stream and returns the number of bytes written onto the stream
func (bitSet *BitSetRedis) WriteTo(stream io.Writer) (int64, error) {
	return writeText(bitSet, stream)
}

// ReadFrom reads the stream and imports it into the bitset and returns the number of bytes read
func (bitSet *BitSetRedis) ReadFrom(stream io.Reader) (int64, error) {
	text, n, err := readText(stream, bitSet.size)
	if err != nil {
		return n, err
	}
	return n, bitSet.UnmarshalText(text)
}

// load returns the raw bytes of the bitset padded to the full size
func (bitSet *BitSetRedis) load() ([]byte, error) {
	val, err := bitSet.client.Get(context.Background(), bitSet.key).Bytes()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("lexiset: error while reading bitset from redis: %w", err)
	}
	data := make([]byte, byteLen(bitSet.size))
	copy(data, val)
	return data, nil
}

func (bitSet *BitSetRedis) store(data []byte) error {
	err := bitSet.client.Set(context.Background(), bitSet.key, string(data), 0).Err()
	if err != nil {
		return fmt.Errorf("lexiset: error while writing bitset to redis: %w", err)
	}
	return nil
}

func textToRedisBytes(text []byte, size uint) ([]byte, error) {
	indexes, err := decodeText(text, size)
	if err != nil {
		return nil, err
	}
	data := make([]byte, byteLen(size))
	for _, index := range indexes {
		data[index/8] |= 0x80 >> (index % 8)
	}
	return data, nil
}
