package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualsIsSetBased(t *testing.T) {
	a := mustTree(t, "cat", "car", "dog")
	b := mustTree(t, "dog", "car", "cat")
	c := mustTree(t, "cat", "cart", "car", "dog", "dot")
	c.Remove("cart")
	c.Remove("dot")

	assert.True(t, a.Equals(b))
	assert.True(t, b.Equals(a))
	assert.True(t, a.Equals(c))
	assert.True(t, a.Equals(a))

	assert.False(t, a.Equals(mustTree(t, "cat", "car")))
	assert.False(t, a.Equals(mustTree(t, "cat", "car", "dot")))
	assert.False(t, a.Equals(nil))
	assert.True(t, New().Equals(New()))
}

func TestUnion(t *testing.T) {
	a := mustTree(t, "cat", "car")
	b := mustTree(t, "car", "dog")

	union := a.Union(b)
	assert.Equal(t, []string{"car", "cat", "dog"}, union.WordList())
	assert.Equal(t, []string{"car", "cat"}, a.WordList())
	assert.Equal(t, []string{"car", "dog"}, b.WordList())

	assert.True(t, a.Union(a).Equals(a))
	assert.True(t, a.Union(New()).Equals(a))
}

func TestUnionInPlace(t *testing.T) {
	a := mustTree(t, "cat")
	b := mustTree(t, "dog")
	assert.Same(t, a, a.UnionInPlace(b))
	assert.Equal(t, []string{"cat", "dog"}, a.WordList())
	assert.Equal(t, []string{"dog"}, b.WordList())

	assert.Same(t, a, a.UnionInPlace(a))
	assert.Equal(t, []string{"cat", "dog"}, a.WordList())
}

func TestDifference(t *testing.T) {
	a := mustTree(t, "cat", "car", "dog")
	b := mustTree(t, "car", "emu")

	diff := a.Difference(b)
	assert.Equal(t, []string{"cat", "dog"}, diff.WordList())
	assert.Equal(t, 3, a.Len())

	assert.Empty(t, a.Difference(a).WordList())
	assert.True(t, a.Difference(New()).Equals(a))
}

func TestDifferenceInPlace(t *testing.T) {
	a := mustTree(t, "cat", "car", "dog")
	b := mustTree(t, "car", "emu")
	assert.Same(t, a, a.DifferenceInPlace(b))
	assert.Equal(t, []string{"cat", "dog"}, a.WordList())
	assert.Equal(t, 2, b.Len())

	before := a.NodeCount()
	a.DifferenceInPlace(mustTree(t, "cat"))
	assert.Less(t, a.NodeCount(), before)

	assert.Same(t, a, a.DifferenceInPlace(a))
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, a.NodeCount())
}

func TestSetLaws(t *testing.T) {
	left := []string{"ant", "bee", "cat", "cow", "dog"}
	right := []string{"bee", "cow", "eel", "fox"}
	a := mustTree(t, left...)
	b := mustTree(t, right...)

	assert.Equal(t, []string{"ant", "bee", "cat", "cow", "dog", "eel", "fox"}, a.Union(b).WordList())
	assert.Equal(t, []string{"ant", "cat", "dog"}, a.Difference(b).WordList())
	assert.Equal(t, []string{"eel", "fox"}, b.Difference(a).WordList())
	assert.True(t, a.Union(b).Equals(b.Union(a)))
}
