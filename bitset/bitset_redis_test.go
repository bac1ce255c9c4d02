package bitset

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMockRedisClient(t *testing.T) *redis.Client {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestBitSetRedisHas(t *testing.T) {
	client := newMockRedisClient(t)
	bitset, err := NewBitSetRedis(client, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bitset.Insert(1)
	bitset.Insert(3)
	bitset.Insert(7)
	if ok, _ := bitset.Has(1); !ok {
		t.Fatalf("should be true at index 1, got %v", ok)
	}
	if ok, _ := bitset.Has(4); ok {
		t.Fatalf("should be false at index 4, got %v", ok)
	}
	if ok, _ := bitset.Has(100); ok {
		t.Fatalf("should be false past the size, got %v", ok)
	}
}

func TestBitSetRedisInsertMultiHasMulti(t *testing.T) {
	client := newMockRedisClient(t)
	bitset, _ := NewBitSetRedis(client, 10)
	bitset.InsertMulti([]uint{1, 3, 7, 9})
	has, err := bitset.HasMulti([]uint{1, 2, 3, 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []bool{true, false, true, true}
	for i := range want {
		if has[i] != want[i] {
			t.Fatalf("index %v should be %v, got %v", i, want[i], has[i])
		}
	}
	if count, _ := bitset.BitCount(); count != 4 {
		t.Fatalf("count should be 4, got %v", count)
	}
}

func TestBitSetRedisInsertMultiRejectsEmpty(t *testing.T) {
	client := newMockRedisClient(t)
	bitset, _ := NewBitSetRedis(client, 10)
	if _, err := bitset.InsertMulti(nil); err == nil {
		t.Fatal("should error out for no indexes")
	}
	if _, err := bitset.InsertMulti([]uint{10}); err == nil {
		t.Fatal("should error out for an index past the size")
	}
}

func TestBitSetRedisTextMatchesMem(t *testing.T) {
	client := newMockRedisClient(t)
	redisSet, _ := NewBitSetRedis(client, 12)
	memSet := NewBitSetMem(12)
	for _, index := range []uint{0, 5, 8, 11} {
		redisSet.Insert(index)
		memSet.Insert(index)
	}
	redisText, _ := redisSet.MarshalText()
	memText, _ := memSet.MarshalText()
	if string(redisText) != string(memText) {
		t.Fatalf("redis text %s should match mem text %s", redisText, memText)
	}
	if ok, _ := redisSet.Equals(memSet); !ok {
		t.Fatal("redis and mem bitsets with the same bits should be equal")
	}
}

func TestBitSetRedisUnmarshalText(t *testing.T) {
	client := newMockRedisClient(t)
	bitset, _ := NewBitSetRedis(client, 6)
	if err := bitset.UnmarshalText([]byte("100010")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := bitset.Has(5); !ok {
		t.Fatal("bit 5 should be set")
	}
	if ok, _ := bitset.Has(1); !ok {
		t.Fatal("bit 1 should be set")
	}
	if err := bitset.UnmarshalText([]byte("1")); err == nil {
		t.Fatal("short text should error out")
	}
}

func TestBitSetRedisBitOp(t *testing.T) {
	client := newMockRedisClient(t)
	a, _ := NewBitSetRedis(client, 16)
	b, _ := NewBitSetRedis(client, 16)
	a.InsertMulti([]uint{1, 2, 3})
	b.InsertMulti([]uint{3, 4})
	union, _ := a.Clone()
	if err := union.Or(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count, _ := union.BitCount(); count != 4 {
		t.Fatalf("union should have 4 bits, got %v", count)
	}
	if err := a.And(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count, _ := a.BitCount(); count != 1 {
		t.Fatalf("intersection should have 1 bit, got %v", count)
	}
	if ok, _ := a.Has(3); !ok {
		t.Fatal("bit 3 should survive the intersection")
	}
}

func TestBitSetRedisMixedBackends(t *testing.T) {
	client := newMockRedisClient(t)
	a, _ := NewBitSetRedis(client, 16)
	a.InsertMulti([]uint{1, 2})
	b := NewBitSetMem(16)
	b.InsertMulti([]uint{2, 9})
	if err := a.Or(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	has, _ := a.HasMulti([]uint{1, 2, 9})
	if !has[0] || !has[1] || !has[2] {
		t.Fatalf("union with a mem bitset should set 1, 2 and 9, got %v", has)
	}
}

func TestBitSetRedisWithKeyReattaches(t *testing.T) {
	client := newMockRedisClient(t)
	a, _ := NewBitSetRedisWithKey(client, 8, "words")
	a.Insert(6)
	b, _ := NewBitSetRedisWithKey(client, 8, "words")
	if ok, _ := b.Has(6); !ok {
		t.Fatal("attaching to an existing key should keep its bits")
	}
}

func TestBitSetRedisStreamRoundTrip(t *testing.T) {
	client := newMockRedisClient(t)
	a, _ := NewBitSetRedis(client, 20)
	a.InsertMulti([]uint{0, 19})
	var buf bytes.Buffer
	a.WriteTo(&buf)
	b := NewBitSetMem(20)
	if _, err := b.ReadFrom(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := a.Equals(b); !ok {
		t.Fatal("bitsets should be equal after a stream round trip")
	}
}

func TestBitSetRedisClearAndDestroy(t *testing.T) {
	client := newMockRedisClient(t)
	a, _ := NewBitSetRedis(client, 8)
	a.Insert(1)
	a.Clear()
	if count, _ := a.BitCount(); count != 0 {
		t.Fatalf("clear should unset every bit, got %v", count)
	}
	if err := a.Destroy(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := client.Exists(context.Background(), a.Key()).Result(); n != 0 {
		t.Fatal("destroy should delete the key")
	}
}
