package trie

import "iter"

// Union returns a new tree holding the words of both trees
func (t *PrefixTree) Union(other *PrefixTree) *PrefixTree {
	return t.Clone().UnionInPlace(other)
}

// UnionInPlace adds every word of _other_ to the tree and returns it
func (t *PrefixTree) UnionInPlace(other *PrefixTree) *PrefixTree {
	if other == t {
		return t
	}
	for word := range other.Words() {
		t.insert(word)
	}
	return t
}

// Difference returns a new tree holding the words of t that _other_ lacks
func (t *PrefixTree) Difference(other *PrefixTree) *PrefixTree {
	result := New()
	if other == t {
		return result
	}
	for word := range t.Words() {
		if !other.Search(word) {
			result.insert(word)
		}
	}
	return result
}

// DifferenceInPlace removes every word of _other_ from the tree and returns it
func (t *PrefixTree) DifferenceInPlace(other *PrefixTree) *PrefixTree {
	if other == t {
		t.Clear()
		return t
	}
	for word := range other.Words() {
		t.Remove(word)
	}
	return t
}

// Equals reports whether both trees hold the same words, whatever their
// shape or history
func (t *PrefixTree) Equals(other *PrefixTree) bool {
	if other == t {
		return true
	}
	if other == nil || t.Len() != other.Len() {
		return false
	}
	next, stop := iter.Pull(t.Words())
	defer stop()
	for word := range other.Words() {
		mine, ok := next()
		if !ok || mine != word {
			return false
		}
	}
	_, more := next()
	return !more
}
