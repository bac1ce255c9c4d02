package bitset

import (
	"errors"
	"testing"

	"github.com/kwertop/lexiset"
)

func TestBitSetRoaringHas(t *testing.T) {
	bitset, err := NewBitSetRoaring(1 << 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bitset.InsertMulti([]uint{7, 1<<20 - 1})
	if ok, _ := bitset.Has(7); !ok {
		t.Fatal("bit 7 should be set")
	}
	if ok, _ := bitset.Has(8); ok {
		t.Fatal("bit 8 should not be set")
	}
	if count, _ := bitset.BitCount(); count != 2 {
		t.Fatalf("count should be 2, got %v", count)
	}
}

func TestBitSetRoaringRejectsOversize(t *testing.T) {
	if _, err := NewBitSetRoaring(uint(1<<32 + 1)); !errors.Is(err, lexiset.ErrInvalidArgument) {
		t.Fatalf("should reject sizes above 2^32, got %v", err)
	}
}

func TestBitSetRoaringAndOrWithMem(t *testing.T) {
	a, _ := NewBitSetRoaring(16)
	a.InsertMulti([]uint{1, 2, 3})
	b := NewBitSetMem(16)
	b.InsertMulti([]uint{3, 4})
	union, _ := a.Clone()
	union.Or(b)
	if count, _ := union.BitCount(); count != 4 {
		t.Fatalf("union should have 4 bits, got %v", count)
	}
	a.And(b)
	text, _ := a.MarshalText()
	if string(text) != "0000000000001000" {
		t.Fatalf("intersection should only hold bit 3, got %s", text)
	}
	if ok, _ := union.Equals(b); ok {
		t.Fatal("union should differ from b")
	}
}

func TestBitSetRoaringTextRoundTrip(t *testing.T) {
	a, _ := NewBitSetRoaring(9)
	a.InsertMulti([]uint{0, 8})
	text, _ := a.MarshalText()
	if string(text) != "100000001" {
		t.Fatalf("text should be 100000001, got %s", text)
	}
	b, _ := NewBitSetRoaring(9)
	b.UnmarshalText(text)
	if ok, _ := a.Equals(b); !ok {
		t.Fatal("bitsets should be equal after a text round trip")
	}
}
