package trie

import (
	"fmt"

	"github.com/kwertop/lexiset"
)

// AlphabetSize is the number of letters a node can branch on.
const AlphabetSize = 26

const (
	rootIndex int32 = 0
	// noNode marks an empty child slot; the root is never anyone's child.
	noNode   int32 = 0
	noParent int32 = -1
)

// ErrInvalidWord is returned for words that are empty or contain anything
// but the letters a-z.
var ErrInvalidWord = fmt.Errorf("%w: words must be non-empty and use only the letters a-z", lexiset.ErrInvalidArgument)

type node struct {
	children [AlphabetSize]int32
	parent   int32
	kids     uint8
	symbol   byte
	wordEnd  bool
}

// PrefixTree is an ordered 26-way tree of words. The zero value is not
// usable; create trees with New or NewFromWords.
type PrefixTree struct {
	nodes []node
	free  []int32
	words int
}

// New creates an empty PrefixTree
func New() *PrefixTree {
	return &PrefixTree{nodes: []node{{parent: noParent}}}
}

// NewFromWords creates a PrefixTree holding _words_. It fails on the first
// invalid word.
func NewFromWords(words ...string) (*PrefixTree, error) {
	t := New()
	for _, word := range words {
		if err := t.Insert(word); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func letterIndex(ch byte) (int, bool) {
	if ch < 'a' || ch > 'z' {
		return 0, false
	}
	return int(ch - 'a'), true
}

// Validate returns ErrInvalidWord if _word_ can't be stored in a PrefixTree
func Validate(word string) error {
	if word == "" {
		return fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	for i := 0; i < len(word); i++ {
		if _, ok := letterIndex(word[i]); !ok {
			return fmt.Errorf("%w: %q has %q at position %d", ErrInvalidWord, word, word[i], i)
		}
	}
	return nil
}

// Insert adds _word_, creating nodes only along its path. Inserting a word
// twice is a no-op.
func (t *PrefixTree) Insert(word string) error {
	if err := Validate(word); err != nil {
		return err
	}
	t.insert(word)
	return nil
}

// insert assumes _word_ is valid
func (t *PrefixTree) insert(word string) {
	current := rootIndex
	for i := 0; i < len(word); i++ {
		index := int(word[i] - 'a')
		next := t.nodes[current].children[index]
		if next == noNode {
			next = t.alloc(word[i], current)
			t.nodes[current].children[index] = next
			t.nodes[current].kids++
		}
		current = next
	}
	if !t.nodes[current].wordEnd {
		t.nodes[current].wordEnd = true
		t.words++
	}
}

func (t *PrefixTree) alloc(symbol byte, parent int32) int32 {
	n := node{parent: parent, symbol: symbol}
	if last := len(t.free) - 1; last >= 0 {
		index := t.free[last]
		t.free = t.free[:last]
		t.nodes[index] = n
		return index
	}
	t.nodes = append(t.nodes, n)
	return int32(len(t.nodes) - 1)
}

func (t *PrefixTree) release(index int32) {
	t.nodes[index] = node{parent: noParent}
	t.free = append(t.free, index)
}

// find walks the path of _s_ and returns its last node
func (t *PrefixTree) find(s string) (int32, bool) {
	current := rootIndex
	for i := 0; i < len(s); i++ {
		index, ok := letterIndex(s[i])
		if !ok {
			return 0, false
		}
		current = t.nodes[current].children[index]
		if current == noNode {
			return 0, false
		}
	}
	return current, true
}

// Search returns true if _word_ was inserted and not removed since
func (t *PrefixTree) Search(word string) bool {
	index, ok := t.find(word)
	return ok && t.nodes[index].wordEnd
}

// Contains is shorthand for Search
func (t *PrefixTree) Contains(word string) bool {
	return t.Search(word)
}

// StartsWith returns true if some stored word starts with _prefix_.
// The empty prefix always matches.
func (t *PrefixTree) StartsWith(prefix string) bool {
	_, ok := t.find(prefix)
	return ok
}

// Remove deletes _word_ and prunes every node on its path that is left
// childless and not the end of another word, stopping at the first ancestor
// that survives. It returns false, changing nothing, if _word_ isn't stored.
func (t *PrefixTree) Remove(word string) bool {
	current, ok := t.find(word)
	if !ok || !t.nodes[current].wordEnd {
		return false
	}
	t.nodes[current].wordEnd = false
	t.words--

	for current != rootIndex {
		n := &t.nodes[current]
		if n.wordEnd || n.kids > 0 {
			break
		}
		parent := n.parent
		t.nodes[parent].children[n.symbol-'a'] = noNode
		t.nodes[parent].kids--
		t.release(current)
		current = parent
	}
	return true
}

// Len returns the number of words stored
func (t *PrefixTree) Len() int {
	return t.words
}

// NodeCount returns the number of live nodes, root included
func (t *PrefixTree) NodeCount() int {
	return len(t.nodes) - len(t.free)
}

// Clear removes every word, leaving only the root
func (t *PrefixTree) Clear() {
	t.nodes = []node{{parent: noParent}}
	t.free = nil
	t.words = 0
}

// Clone returns a deep copy of the tree in a fresh, compacted arena. The copy
// shares nothing with the source.
func (t *PrefixTree) Clone() *PrefixTree {
	clone := &PrefixTree{
		nodes: make([]node, 1, t.NodeCount()),
		words: t.words,
	}
	clone.nodes[rootIndex] = node{parent: noParent, wordEnd: t.nodes[rootIndex].wordEnd}
	t.copyChildren(clone, rootIndex, rootIndex)
	return clone
}

func (t *PrefixTree) copyChildren(clone *PrefixTree, from, to int32) {
	for i, child := range t.nodes[from].children {
		if child == noNode {
			continue
		}
		src := t.nodes[child]
		index := clone.alloc(src.symbol, to)
		clone.nodes[index].wordEnd = src.wordEnd
		clone.nodes[to].children[i] = index
		clone.nodes[to].kids++
		t.copyChildren(clone, child, index)
	}
}
