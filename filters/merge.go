package filters

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kwertop/lexiset"
	"github.com/kwertop/lexiset/authority"
)

// Intersect keeps only the bits set in both filters and narrows the word
// authority to the words both sides know, so any word the merged authority
// confirms still passes the merged bits. A filter without an authority knows
// no words: intersecting with one empties the receiver's authority. Both
// filters must have the same size and number of hash functions, otherwise an
// ErrInvalidArgument error is returned and neither filter changes. Returns
// the receiver.
//
// Authorities are read before the bits change and rewritten after. If that
// rewrite fails the bits are already merged and the receiver's authority may
// be left partially written; the error is returned.
func (f *MembershipFilter) Intersect(ctx context.Context, other *MembershipFilter) (*MembershipFilter, error) {
	if err := f.checkMergeable(other); err != nil {
		return nil, err
	}
	reconcile := f.authority != nil && !sameAuthority(f.authority, other.authority)
	var words []string
	fastPath := false
	if reconcile && other.authority != nil {
		_, _, fastPath = redisPair(f.authority, other.authority)
		if !fastPath {
			var err error
			if words, err = authority.Intersection(ctx, f.authority, other.authority); err != nil {
				return nil, fmt.Errorf("lexiset: error intersecting word authorities: %w", err)
			}
		}
	}
	if err := f.filter.And(other.filter); err != nil {
		return nil, err
	}
	if reconcile {
		var err error
		switch {
		case other.authority == nil:
			err = f.authority.ClearWords(ctx)
		case fastPath:
			mine, theirs, _ := redisPair(f.authority, other.authority)
			err = mine.IntersectStore(ctx, theirs)
		default:
			err = authority.ReplaceWords(ctx, f.authority, words)
		}
		if err != nil {
			return nil, fmt.Errorf("lexiset: error storing intersected words: %w", err)
		}
	}
	f.logger.Debug("intersected filters")
	return f, nil
}

// Union sets every bit set in either filter and widens the word authority to
// the words either side knows. Same preconditions and the same partial-merge
// caveat on authority failures as Intersect. Returns the receiver.
func (f *MembershipFilter) Union(ctx context.Context, other *MembershipFilter) (*MembershipFilter, error) {
	if err := f.checkMergeable(other); err != nil {
		return nil, err
	}
	reconcile := f.authority != nil && other.authority != nil && !sameAuthority(f.authority, other.authority)
	var words []string
	fastPath := false
	if reconcile {
		_, _, fastPath = redisPair(f.authority, other.authority)
		if !fastPath {
			var err error
			if words, err = other.authority.Words(ctx); err != nil {
				return nil, fmt.Errorf("lexiset: error listing word authority: %w", err)
			}
		}
	}
	if err := f.filter.Or(other.filter); err != nil {
		return nil, err
	}
	if reconcile {
		var err error
		if fastPath {
			mine, theirs, _ := redisPair(f.authority, other.authority)
			err = mine.UnionStore(ctx, theirs)
		} else {
			err = authority.AddWords(ctx, f.authority, words)
		}
		if err != nil {
			return nil, fmt.Errorf("lexiset: error storing merged words: %w", err)
		}
	}
	f.logger.Debug("merged filters")
	return f, nil
}

func (f *MembershipFilter) checkMergeable(other *MembershipFilter) error {
	if f.numHashes != other.numHashes {
		return fmt.Errorf("%w: cannot merge filters with different num_hashes (%d != %d)", lexiset.ErrInvalidArgument, f.numHashes, other.numHashes)
	}
	if f.size != other.size {
		return fmt.Errorf("%w: cannot merge filters with different sizes (%d != %d)", lexiset.ErrInvalidArgument, f.size, other.size)
	}
	return nil
}

// sameAuthority reports whether a and b are the same handle. Authorities of
// a non-comparable dynamic type are never the same.
func sameAuthority(a, b authority.WordAuthority) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// redisPair returns both authorities as Redis sets when they share a server
func redisPair(a, b authority.WordAuthority) (*authority.RedisWordAuthority, *authority.RedisWordAuthority, bool) {
	mine, ok := a.(*authority.RedisWordAuthority)
	if !ok {
		return nil, nil, false
	}
	theirs, ok := mine.SameServer(b)
	if !ok {
		return nil, nil, false
	}
	return mine, theirs, true
}
