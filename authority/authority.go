/*
Package authority defines the exact word source a membership filter consults
to turn a "possibly present" answer into a certainty, together with an
in-memory and a Redis-backed implementation.

An authority may live on the other side of a network connection, so every
call takes a context and may fail. A filter holds its authority by handle and
never closes it: whoever created the authority owns its lifetime.
*/
package authority

import (
	"context"
	"fmt"
	"sort"
)

// WordAuthority answers whether a word is real and stores the known words.
type WordAuthority interface {
	// CheckWord reports whether _word_ is a known word
	CheckWord(ctx context.Context, word string) (bool, error)

	// Words returns every known word
	Words(ctx context.Context) ([]string, error)

	// AddWord records _word_ as known
	AddWord(ctx context.Context, word string) error

	// ClearWords forgets every known word
	ClearWords(ctx context.Context) error
}

// Cloner is implemented by authorities that can produce an independent copy
// of themselves. A cloned filter clones its authority when it can.
type Cloner interface {
	Clone(ctx context.Context) (WordAuthority, error)
}

// AddWords records every word in _words_, stopping at the first error
func AddWords(ctx context.Context, authority WordAuthority, words []string) error {
	if bulk, ok := authority.(interface {
		AddWords(ctx context.Context, words []string) error
	}); ok {
		return bulk.AddWords(ctx, words)
	}
	for _, word := range words {
		if err := authority.AddWord(ctx, word); err != nil {
			return fmt.Errorf("lexiset: error adding word %q to authority: %w", word, err)
		}
	}
	return nil
}

// ReplaceWords clears _authority_ and records exactly _words_
func ReplaceWords(ctx context.Context, authority WordAuthority, words []string) error {
	if err := authority.ClearWords(ctx); err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	return AddWords(ctx, authority, words)
}

// Intersection returns the words known to both _a_ and _b_, sorted
func Intersection(ctx context.Context, a, b WordAuthority) ([]string, error) {
	words, err := a.Words(ctx)
	if err != nil {
		return nil, err
	}
	var common []string
	for _, word := range words {
		ok, err := b.CheckWord(ctx, word)
		if err != nil {
			return nil, err
		}
		if ok {
			common = append(common, word)
		}
	}
	sort.Strings(common)
	return common, nil
}

// Union returns the words known to either _a_ or _b_, sorted and deduplicated
func Union(ctx context.Context, a, b WordAuthority) ([]string, error) {
	aWords, err := a.Words(ctx)
	if err != nil {
		return nil, err
	}
	bWords, err := b.Words(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(aWords)+len(bWords))
	all := make([]string, 0, len(aWords)+len(bWords))
	for _, words := range [][]string{aWords, bWords} {
		for _, word := range words {
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			all = append(all, word)
		}
	}
	sort.Strings(all)
	return all, nil
}
