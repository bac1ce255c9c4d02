package trie

import (
	"errors"
	"testing"

	"github.com/kwertop/lexiset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTree(t *testing.T, words ...string) *PrefixTree {
	t.Helper()
	tree, err := NewFromWords(words...)
	require.NoError(t, err)
	return tree
}

func TestInsertSearchStartsWith(t *testing.T) {
	tree := mustTree(t, "cat", "car", "dog")

	assert.True(t, tree.Search("cat"))
	assert.True(t, tree.Search("car"))
	assert.True(t, tree.Contains("dog"))
	assert.False(t, tree.Search("ca"))
	assert.False(t, tree.Search("cats"))
	assert.False(t, tree.Search(""))

	assert.True(t, tree.StartsWith("ca"))
	assert.True(t, tree.StartsWith("do"))
	assert.True(t, tree.StartsWith(""))
	assert.False(t, tree.StartsWith("x"))
	assert.False(t, tree.StartsWith("cats"))

	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 8, tree.NodeCount())
}

func TestInsertIsIdempotent(t *testing.T) {
	tree := mustTree(t, "cat")
	require.NoError(t, tree.Insert("cat"))
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 4, tree.NodeCount())
}

func TestInvalidWords(t *testing.T) {
	tree := mustTree(t, "cat")
	for _, word := range []string{"", "Cat", "ca-t", "naïve", "dog1", " dog"} {
		err := tree.Insert(word)
		require.Error(t, err, word)
		assert.True(t, errors.Is(err, ErrInvalidWord), word)
		assert.True(t, errors.Is(err, lexiset.ErrInvalidArgument), word)
		assert.False(t, tree.Search(word), word)
		assert.False(t, tree.Remove(word), word)
	}
	assert.False(t, tree.StartsWith("CA"))
	assert.Equal(t, []string{"cat"}, tree.WordList())
	assert.Equal(t, 4, tree.NodeCount())

	_, err := NewFromWords("ok", "Bad")
	assert.True(t, errors.Is(err, ErrInvalidWord))
}

func TestRemovePrunes(t *testing.T) {
	tree := mustTree(t, "cat", "car", "dog")

	require.True(t, tree.Remove("cat"))
	assert.False(t, tree.Search("cat"))
	assert.True(t, tree.Search("car"))
	assert.True(t, tree.StartsWith("ca"))
	assert.Equal(t, 7, tree.NodeCount())

	require.True(t, tree.Remove("car"))
	assert.False(t, tree.StartsWith("c"))
	assert.Equal(t, 4, tree.NodeCount())

	require.True(t, tree.Remove("dog"))
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.NodeCount())
	assert.True(t, tree.StartsWith(""))
}

func TestRemoveKeepsSharedPaths(t *testing.T) {
	tree := mustTree(t, "car", "cart")

	require.True(t, tree.Remove("car"))
	assert.False(t, tree.Search("car"))
	assert.True(t, tree.Search("cart"))
	assert.Equal(t, 5, tree.NodeCount())

	require.NoError(t, tree.Insert("car"))
	require.True(t, tree.Remove("cart"))
	assert.True(t, tree.Search("car"))
	assert.Equal(t, 4, tree.NodeCount())
}

func TestRemoveAbsent(t *testing.T) {
	tree := mustTree(t, "cart")
	assert.False(t, tree.Remove("car"))
	assert.False(t, tree.Remove("carts"))
	assert.False(t, tree.Remove("dog"))
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 5, tree.NodeCount())
}

func TestFreedNodesAreReused(t *testing.T) {
	tree := mustTree(t, "cat")
	require.True(t, tree.Remove("cat"))
	require.NoError(t, tree.Insert("dog"))
	assert.Equal(t, 4, tree.NodeCount())
	assert.Len(t, tree.nodes, 4)
	assert.Empty(t, tree.free)
}

func TestClear(t *testing.T) {
	tree := mustTree(t, "cat", "dog")
	tree.Clear()
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 1, tree.NodeCount())
	assert.Empty(t, tree.WordList())
	require.NoError(t, tree.Insert("emu"))
	assert.Equal(t, []string{"emu"}, tree.WordList())
}

func TestCloneIsIndependent(t *testing.T) {
	tree := mustTree(t, "cat", "car", "dog", "door")
	tree.Remove("dog")

	clone := tree.Clone()
	assert.True(t, clone.Equals(tree))
	assert.Equal(t, tree.NodeCount(), clone.NodeCount())
	assert.Len(t, clone.nodes, clone.NodeCount())

	require.NoError(t, clone.Insert("cow"))
	clone.Remove("cat")
	assert.True(t, tree.Search("cat"))
	assert.False(t, tree.Search("cow"))
	assert.Equal(t, []string{"car", "cow", "door"}, clone.WordList())
	assert.Equal(t, []string{"car", "cat", "door"}, tree.WordList())
}

func TestNodeView(t *testing.T) {
	tree := mustTree(t, "cat", "car")
	root := tree.Root()
	assert.True(t, root.IsRoot())
	assert.Equal(t, byte(0), root.Symbol())
	_, ok := root.Parent()
	assert.False(t, ok)

	c, ok := root.Child('c')
	require.True(t, ok)
	a, ok := c.Child('a')
	require.True(t, ok)
	assert.Equal(t, byte('a'), a.Symbol())
	assert.Equal(t, "ca", a.Prefix())
	assert.Equal(t, 2, a.Depth())
	assert.Equal(t, 2, a.ChildCount())
	assert.False(t, a.IsWordEnd())

	parent, ok := a.Parent()
	require.True(t, ok)
	assert.Equal(t, byte('c'), parent.Symbol())

	r, ok := a.Child('r')
	require.True(t, ok)
	assert.True(t, r.IsWordEnd())
	assert.Equal(t, "car", r.Prefix())

	_, ok = a.Child('z')
	assert.False(t, ok)
	_, ok = a.Child('R')
	assert.False(t, ok)
}
