package filters

import (
	"context"
	"fmt"
	"io"

	"github.com/kwertop/lexiset"
	"github.com/kwertop/lexiset/authority"
	"github.com/kwertop/lexiset/bitset"
	"github.com/kwertop/lexiset/hash"
	"github.com/kwertop/lexiset/internal/logging"
	"github.com/kwertop/lexiset/internal/util"
	"github.com/kwertop/lexiset/internal/wordsource"
	"github.com/redis/go-redis/v9"
)

// MembershipFilter is a fixed-size Bloom filter over strings.
// _size_ denotes the number of bits in the filter
// _numHashes_ denotes the number of hashing functions applied on the entrant element
// during insertion or lookup.
// _filter_ is the bitset backing the filter. It can be a BitSetMem (in-memory),
// BitSetRedis (redis-backed) or BitSetRoaring (compressed).
// _authority_ resolves positives into certainties. It may be nil.
//
// A MembershipFilter is not safe for concurrent mutation.
type MembershipFilter struct {
	size      uint
	numHashes uint
	filter    bitset.IBitSet
	family    *hash.Family
	hasher    hash.Hasher
	authority authority.WordAuthority
	logger    *logging.Logger
}

// NewMembershipFilterWithBitSet creates and returns a new MembershipFilter
// _size_ is the number of bits in the filter and must match the bitset
// _numHashes_ is the number of hashing functions to be applied on the entrant
// _filter_ is the backing bitset
// _wordAuthority_ is the exact word source, nil if there is none
func NewMembershipFilterWithBitSet(size, numHashes uint, filter bitset.IBitSet, wordAuthority authority.WordAuthority, opts ...Option) (*MembershipFilter, error) {
	if filter.Size() != size {
		return nil, fmt.Errorf("%w: size of bitset %v doesn't match with size %v passed", lexiset.ErrInvalidArgument, filter.Size(), size)
	}
	if size == 0 {
		return nil, fmt.Errorf("%w: filter size must be at least 1", lexiset.ErrInvalidArgument)
	}
	f := &MembershipFilter{
		size:      size,
		numHashes: util.Max(numHashes, 1),
		filter:    filter,
		authority: wordAuthority,
		hasher:    hash.Metro,
		logger:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.family = hash.NewFamily(f.numHashes, f.hasher)
	f.logger = f.logger.Named("filter")
	return f, nil
}

// NewMemMembershipFilter creates an in-memory MembershipFilter of _size_ bits
func NewMemMembershipFilter(size, numHashes uint, wordAuthority authority.WordAuthority, opts ...Option) *MembershipFilter {
	size = util.Max(size, 1)
	f, _ := NewMembershipFilterWithBitSet(size, numHashes, bitset.NewBitSetMem(size), wordAuthority, opts...)
	return f
}

// NewMemMembershipFilterFromData creates an in-memory MembershipFilter over
// the raw 64-bit words _data_, bit i of the filter being bit i%64 of
// data[i/64]. The filter holds len(data)*64 bits.
func NewMemMembershipFilterFromData(data []uint64, numHashes uint, wordAuthority authority.WordAuthority, opts ...Option) (*MembershipFilter, error) {
	filter := bitset.FromDataMem(data)
	return NewMembershipFilterWithBitSet(filter.Size(), numHashes, filter, wordAuthority, opts...)
}

// NewMemMembershipFilterWithParameters creates an in-memory MembershipFilter
// sized for _numItems_ items at the false positive rate _errorRate_
func NewMemMembershipFilterWithParameters(numItems uint, errorRate float64, wordAuthority authority.WordAuthority, opts ...Option) (*MembershipFilter, error) {
	if errorRate <= 0 || errorRate >= 1 {
		return nil, fmt.Errorf("%w: error rate must be in (0, 1), got %v", lexiset.ErrInvalidArgument, errorRate)
	}
	numItems = util.Max(numItems, 1)
	size := util.Max(util.CalculateFilterSize(numItems, errorRate), 1)
	numHashes := util.CalculateNumHashes(size, numItems)
	return NewMembershipFilterWithBitSet(size, numHashes, bitset.NewBitSetMem(size), wordAuthority, opts...)
}

// NewRedisMembershipFilter creates a MembershipFilter whose bits live in a
// new redis bitset
func NewRedisMembershipFilter(client *redis.Client, size, numHashes uint, wordAuthority authority.WordAuthority, opts ...Option) (*MembershipFilter, error) {
	size = util.Max(size, 1)
	filter, err := bitset.NewBitSetRedis(client, size)
	if err != nil {
		return nil, err
	}
	return NewMembershipFilterWithBitSet(size, numHashes, filter, wordAuthority, opts...)
}

// NewRoaringMembershipFilter creates a MembershipFilter over a compressed
// roaring bitmap, for very large, sparse filters
func NewRoaringMembershipFilter(size, numHashes uint, wordAuthority authority.WordAuthority, opts ...Option) (*MembershipFilter, error) {
	size = util.Max(size, 1)
	filter, err := bitset.NewBitSetRoaring(size)
	if err != nil {
		return nil, err
	}
	return NewMembershipFilterWithBitSet(size, numHashes, filter, wordAuthority, opts...)
}

// Add sets the k bits of _item_
func (f *MembershipFilter) Add(item string) *MembershipFilter {
	return f.AddBytes([]byte(item))
}

// AddBytes sets the k bits of _data_
func (f *MembershipFilter) AddBytes(data []byte) *MembershipFilter {
	indexes := f.family.Indexes(data, f.size)
	if _, err := f.filter.InsertMulti(indexes); err != nil {
		f.logger.Error("cannot set filter bits", "error", err)
	}
	return f
}

// AddFrom adds every comma-separated token of every line of _source_.
// The whole source is read before any bit is set, so a read failure
// leaves the filter unchanged. The failure is logged and returned.
func (f *MembershipFilter) AddFrom(source io.Reader) error {
	words, err := wordsource.Read(source)
	if err != nil {
		f.logger.Warn("cannot read word source, filter unchanged", "error", err)
		return err
	}
	for _, word := range words {
		f.Add(word)
	}
	f.logger.Debug("loaded word source", "words", len(words))
	return nil
}

// AddFile adds every token of the file at _path_, see AddFrom
func (f *MembershipFilter) AddFile(path string) error {
	words, err := wordsource.ReadFile(path)
	if err != nil {
		f.logger.Warn("cannot read word source, filter unchanged", "path", path, "error", err)
		return err
	}
	for _, word := range words {
		f.Add(word)
	}
	f.logger.Debug("loaded word source", "path", path, "words", len(words))
	return nil
}

// PossiblyContains returns true if every bit of _item_ is set. It never
// returns false for an added item.
func (f *MembershipFilter) PossiblyContains(item string) bool {
	return f.PossiblyContainsBytes([]byte(item))
}

// PossiblyContainsBytes is PossiblyContains for raw bytes
func (f *MembershipFilter) PossiblyContainsBytes(data []byte) bool {
	if !bitset.IsBitSetMem(f.filter) {
		// one round trip for remote bitsets
		result, err := f.filter.HasMulti(f.family.Indexes(data, f.size))
		if err != nil {
			f.logger.Error("cannot read filter bits", "error", err)
			return false
		}
		for _, ok := range result {
			if !ok {
				return false
			}
		}
		return true
	}
	for i := 0; i < int(f.numHashes); i++ {
		ok, err := f.filter.Has(f.family.Index(data, i, f.size))
		if err != nil {
			f.logger.Error("cannot read filter bit", "error", err)
			return false
		}
		if !ok {
			return false
		}
	}
	return true
}

// Has is shorthand for PossiblyContains
func (f *MembershipFilter) Has(item string) bool {
	return f.PossiblyContains(item)
}

// CertainlyContains returns false as soon as the bits rule _item_ out, and
// otherwise asks the word authority. Without an authority, or when the
// authority fails, the answer is false.
func (f *MembershipFilter) CertainlyContains(ctx context.Context, item string) bool {
	if !f.PossiblyContains(item) {
		return false
	}
	if f.authority == nil {
		return false
	}
	ok, err := f.authority.CheckWord(ctx, item)
	if err != nil {
		f.logger.Warn("word authority check failed", "item", item, "error", err)
		return false
	}
	return ok
}

// Reset clears every bit. The authority's words are left alone.
func (f *MembershipFilter) Reset() {
	if err := f.filter.Clear(); err != nil {
		f.logger.Error("cannot reset filter bits", "error", err)
	}
}

// GetCap returns the size of the filter in bits
func (f *MembershipFilter) GetCap() uint {
	return f.size
}

// GetNumHashes returns the number of hash functions used in the filter
func (f *MembershipFilter) GetNumHashes() uint {
	return f.numHashes
}

// GetSeeds returns the seeds of the hash family in order
func (f *MembershipFilter) GetSeeds() []uint64 {
	return f.family.Seeds()
}

// GetBitSet returns the backing bitset
func (f *MembershipFilter) GetBitSet() bitset.IBitSet {
	return f.filter
}

// GetAuthority returns the word authority, nil if there is none
func (f *MembershipFilter) GetAuthority() authority.WordAuthority {
	return f.authority
}

// SetAuthority replaces the word authority
func (f *MembershipFilter) SetAuthority(wordAuthority authority.WordAuthority) {
	f.authority = wordAuthority
}

// FalsePositiveRate estimates the current false positive rate from the
// fraction of set bits
func (f *MembershipFilter) FalsePositiveRate() float64 {
	count, err := f.filter.BitCount()
	if err != nil {
		f.logger.Error("cannot count filter bits", "error", err)
		return 1
	}
	return util.FillRatioRate(f.size, f.numHashes, count)
}

// Equals checks if two filters have the same shape and bits
func (f *MembershipFilter) Equals(other *MembershipFilter) (bool, error) {
	if f.size != other.size || f.numHashes != other.numHashes {
		return false, nil
	}
	return f.filter.Equals(other.filter)
}

// Clone returns a deep copy of the filter's bits on the same backend. The
// authority is cloned when it implements authority.Cloner and shared otherwise.
func (f *MembershipFilter) Clone(ctx context.Context) (*MembershipFilter, error) {
	bits, err := f.filter.Clone()
	if err != nil {
		return nil, err
	}
	wordAuthority := f.authority
	if cloner, ok := f.authority.(authority.Cloner); ok {
		wordAuthority, err = cloner.Clone(ctx)
		if err != nil {
			return nil, err
		}
	}
	return &MembershipFilter{
		size:      f.size,
		numHashes: f.numHashes,
		filter:    bits,
		family:    f.family,
		hasher:    f.hasher,
		authority: wordAuthority,
		logger:    f.logger,
	}, nil
}
