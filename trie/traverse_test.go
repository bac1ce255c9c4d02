package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbols(tree *PrefixTree, order Order) string {
	var out []byte
	tree.Traverse(order, func(n Node) bool {
		if n.IsRoot() {
			out = append(out, '^')
		} else {
			out = append(out, n.Symbol())
		}
		return true
	})
	return string(out)
}

func TestTraverseOrders(t *testing.T) {
	tree := mustTree(t, "dog", "cat", "car")
	assert.Equal(t, "^cdaortg", symbols(tree, BreadthFirst))
	assert.Equal(t, "^cartdog", symbols(tree, DepthFirst))
}

func TestTraverseVisitsEachNodeOnce(t *testing.T) {
	tree := mustTree(t, "a", "ab", "abc", "b", "ba", "zebra", "zen")
	tree.Remove("ab")
	for _, order := range []Order{BreadthFirst, DepthFirst} {
		seen := make(map[int32]int)
		tree.Traverse(order, func(n Node) bool {
			seen[n.index]++
			return true
		})
		assert.Len(t, seen, tree.NodeCount(), order.String())
		for index, count := range seen {
			assert.Equal(t, 1, count, "node %d visited %d times in %s", index, count, order)
		}
	}
}

func TestTraverseStops(t *testing.T) {
	tree := mustTree(t, "cat", "dog")
	visited := 0
	tree.Traverse(DepthFirst, func(Node) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestAllIsLexicographic(t *testing.T) {
	tree := mustTree(t, "zoo", "b", "apple", "app", "banana", "ban")
	var words []string
	for word, n := range tree.All() {
		assert.True(t, n.IsWordEnd())
		assert.Equal(t, word, n.Prefix())
		words = append(words, word)
	}
	expected := []string{"app", "apple", "b", "ban", "banana", "zoo"}
	assert.Equal(t, expected, words)

	// restartable
	assert.Equal(t, expected, tree.WordList())
	assert.Equal(t, expected, tree.WordList())
}

func TestAllStopsEarly(t *testing.T) {
	tree := mustTree(t, "a", "b", "c")
	var words []string
	for word := range tree.Words() {
		words = append(words, word)
		if len(words) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, words)
}

func TestWordsWithPrefix(t *testing.T) {
	tree := mustTree(t, "car", "cat", "cart", "dog", "ca")

	collect := func(prefix string) []string {
		var out []string
		for word := range tree.WordsWithPrefix(prefix) {
			out = append(out, word)
		}
		return out
	}
	assert.Equal(t, []string{"ca", "car", "cart", "cat"}, collect("ca"))
	assert.Equal(t, []string{"car", "cart"}, collect("car"))
	assert.Equal(t, tree.WordList(), collect(""))
	assert.Empty(t, collect("x"))
	assert.Empty(t, collect("CA"))
}

func TestEmptyTree(t *testing.T) {
	tree := New()
	assert.Empty(t, tree.WordList())
	assert.Equal(t, "^", symbols(tree, BreadthFirst))
	require.Equal(t, "", tree.String())
}
