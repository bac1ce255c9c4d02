package trie

import (
	"fmt"
	"iter"
	"slices"
)

// Order selects how Traverse visits the tree.
type Order int

const (
	// BreadthFirst visits nodes level by level, letters ascending within a level
	BreadthFirst Order = iota
	// DepthFirst visits a node before its children, children in ascending
	// letter order
	DepthFirst
)

func (o Order) String() string {
	switch o {
	case BreadthFirst:
		return "breadth-first"
	case DepthFirst:
		return "depth-first"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Traverse calls _visit_ once for every node, root included, in the given
// order. Returning false from _visit_ stops the walk. The tree must not be
// mutated during the walk.
func (t *PrefixTree) Traverse(order Order, visit func(Node) bool) {
	switch order {
	case BreadthFirst:
		queue := []int32{rootIndex}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			if !visit(Node{t, current}) {
				return
			}
			for _, child := range t.nodes[current].children {
				if child != noNode {
					queue = append(queue, child)
				}
			}
		}
	case DepthFirst:
		stack := []int32{rootIndex}
		for len(stack) > 0 {
			current := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !visit(Node{t, current}) {
				return
			}
			children := &t.nodes[current].children
			for i := AlphabetSize - 1; i >= 0; i-- {
				if children[i] != noNode {
					stack = append(stack, children[i])
				}
			}
		}
	}
}

// All returns the stored words paired with their end nodes, in lexicographic
// order. The sequence is lazy and can be ranged over any number of times;
// the tree must not be mutated while it is being consumed.
func (t *PrefixTree) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		t.walk(rootIndex, make([]byte, 0, 32), yield)
	}
}

func (t *PrefixTree) walk(index int32, prefix []byte, yield func(string, Node) bool) bool {
	if t.nodes[index].wordEnd && !yield(string(prefix), Node{t, index}) {
		return false
	}
	for i := 0; i < AlphabetSize; i++ {
		child := t.nodes[index].children[i]
		if child == noNode {
			continue
		}
		if !t.walk(child, append(prefix, byte('a'+i)), yield) {
			return false
		}
	}
	return true
}

// Words returns the stored words in lexicographic order
func (t *PrefixTree) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for word := range t.All() {
			if !yield(word) {
				return
			}
		}
	}
}

// WordList collects Words into a slice
func (t *PrefixTree) WordList() []string {
	return slices.Collect(t.Words())
}

// WordsWithPrefix returns the stored words starting with _prefix_ in
// lexicographic order
func (t *PrefixTree) WordsWithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start, ok := t.find(prefix)
		if !ok {
			return
		}
		t.walk(start, []byte(prefix), func(word string, _ Node) bool {
			return yield(word)
		})
	}
}
