package authority

import (
	"context"
	"sort"
)

// MemWordAuthority is an in-memory WordAuthority backed by a set.
type MemWordAuthority struct {
	words map[string]struct{}
}

var _ WordAuthority = (*MemWordAuthority)(nil)
var _ Cloner = (*MemWordAuthority)(nil)

// NewMemWordAuthority creates an authority knowing _words_
func NewMemWordAuthority(words ...string) *MemWordAuthority {
	authority := &MemWordAuthority{words: make(map[string]struct{}, len(words))}
	for _, word := range words {
		authority.words[word] = struct{}{}
	}
	return authority
}

func (a *MemWordAuthority) CheckWord(_ context.Context, word string) (bool, error) {
	_, ok := a.words[word]
	return ok, nil
}

// Words returns the known words in lexicographic order
func (a *MemWordAuthority) Words(_ context.Context) ([]string, error) {
	words := make([]string, 0, len(a.words))
	for word := range a.words {
		words = append(words, word)
	}
	sort.Strings(words)
	return words, nil
}

func (a *MemWordAuthority) AddWord(_ context.Context, word string) error {
	a.words[word] = struct{}{}
	return nil
}

func (a *MemWordAuthority) ClearWords(_ context.Context) error {
	clear(a.words)
	return nil
}

// Len returns the number of known words
func (a *MemWordAuthority) Len() int {
	return len(a.words)
}

func (a *MemWordAuthority) Clone(_ context.Context) (WordAuthority, error) {
	clone := &MemWordAuthority{words: make(map[string]struct{}, len(a.words))}
	for word := range a.words {
		clone.words[word] = struct{}{}
	}
	return clone, nil
}
