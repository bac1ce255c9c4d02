package authority

import (
	"context"
	"fmt"
	"sort"

	"github.com/kwertop/lexiset/internal/util"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "lexiset:words:"

// RedisWordAuthority is a WordAuthority stored as a Redis set at _key_.
// It stands in for a remote dictionary service: every call is a round trip.
type RedisWordAuthority struct {
	client *redis.Client
	key    string
}

var _ WordAuthority = (*RedisWordAuthority)(nil)
var _ Cloner = (*RedisWordAuthority)(nil)

// NewRedisWordAuthority creates an authority on a new random key
func NewRedisWordAuthority(client *redis.Client) *RedisWordAuthority {
	return NewRedisWordAuthorityWithKey(client, redisKeyPrefix+util.GenerateRandomString(16))
}

// NewRedisWordAuthorityWithKey attaches to the set at _key_
func NewRedisWordAuthorityWithKey(client *redis.Client, key string) *RedisWordAuthority {
	return &RedisWordAuthority{client: client, key: key}
}

// Key gives the key at which the words are saved in redis
func (a *RedisWordAuthority) Key() string {
	return a.key
}

func (a *RedisWordAuthority) CheckWord(ctx context.Context, word string) (bool, error) {
	ok, err := a.client.SIsMember(ctx, a.key, word).Result()
	if err != nil {
		return false, fmt.Errorf("lexiset: error checking word in redis: %w", err)
	}
	return ok, nil
}

// Words returns the known words in lexicographic order
func (a *RedisWordAuthority) Words(ctx context.Context) ([]string, error) {
	words, err := a.client.SMembers(ctx, a.key).Result()
	if err != nil {
		return nil, fmt.Errorf("lexiset: error listing words in redis: %w", err)
	}
	sort.Strings(words)
	return words, nil
}

func (a *RedisWordAuthority) AddWord(ctx context.Context, word string) error {
	if err := a.client.SAdd(ctx, a.key, word).Err(); err != nil {
		return fmt.Errorf("lexiset: error adding word to redis: %w", err)
	}
	return nil
}

// AddWords adds all of _words_ with a single SADD
func (a *RedisWordAuthority) AddWords(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return nil
	}
	members := make([]interface{}, len(words))
	for i, word := range words {
		members[i] = word
	}
	if err := a.client.SAdd(ctx, a.key, members...).Err(); err != nil {
		return fmt.Errorf("lexiset: error adding words to redis: %w", err)
	}
	return nil
}

func (a *RedisWordAuthority) ClearWords(ctx context.Context) error {
	if err := a.client.Del(ctx, a.key).Err(); err != nil {
		return fmt.Errorf("lexiset: error clearing words in redis: %w", err)
	}
	return nil
}

// Len returns the number of known words
func (a *RedisWordAuthority) Len(ctx context.Context) (int64, error) {
	return a.client.SCard(ctx, a.key).Result()
}

// Clone copies the set to a new random key with SUNIONSTORE
func (a *RedisWordAuthority) Clone(ctx context.Context) (WordAuthority, error) {
	clone := NewRedisWordAuthority(a.client)
	if err := a.client.SUnionStore(ctx, clone.key, a.key).Err(); err != nil {
		return nil, fmt.Errorf("lexiset: error cloning words in redis: %w", err)
	}
	return clone, nil
}

// SameServer reports whether _other_ lives on the same redis client, so
// set operations can run server side
func (a *RedisWordAuthority) SameServer(other WordAuthority) (*RedisWordAuthority, bool) {
	b, ok := other.(*RedisWordAuthority)
	if !ok || b.client != a.client {
		return nil, false
	}
	return b, true
}

// IntersectStore keeps only the words also known to _other_, server side
func (a *RedisWordAuthority) IntersectStore(ctx context.Context, other *RedisWordAuthority) error {
	if err := a.client.SInterStore(ctx, a.key, a.key, other.key).Err(); err != nil {
		return fmt.Errorf("lexiset: error intersecting words in redis: %w", err)
	}
	return nil
}

// UnionStore adds every word known to _other_, server side
func (a *RedisWordAuthority) UnionStore(ctx context.Context, other *RedisWordAuthority) error {
	if err := a.client.SUnionStore(ctx, a.key, a.key, other.key).Err(); err != nil {
		return fmt.Errorf("lexiset: error merging words in redis: %w", err)
	}
	return nil
}
