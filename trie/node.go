package trie

// Node is a read-only view of one node of a PrefixTree. A Node is only valid
// until the tree is next mutated.
type Node struct {
	tree  *PrefixTree
	index int32
}

// Symbol returns the node's letter, 0 for the root
func (n Node) Symbol() byte {
	return n.tree.nodes[n.index].symbol
}

// IsRoot reports whether the node is the root
func (n Node) IsRoot() bool {
	return n.index == rootIndex
}

// IsWordEnd reports whether the path to the node spells a stored word
func (n Node) IsWordEnd() bool {
	return n.tree.nodes[n.index].wordEnd
}

// ChildCount returns the number of occupied child slots
func (n Node) ChildCount() int {
	return int(n.tree.nodes[n.index].kids)
}

// Child returns the child for _letter_, if any
func (n Node) Child(letter byte) (Node, bool) {
	index, ok := letterIndex(letter)
	if !ok {
		return Node{}, false
	}
	child := n.tree.nodes[n.index].children[index]
	if child == noNode {
		return Node{}, false
	}
	return Node{n.tree, child}, true
}

// Parent returns the parent node; the root has none
func (n Node) Parent() (Node, bool) {
	parent := n.tree.nodes[n.index].parent
	if parent == noParent {
		return Node{}, false
	}
	return Node{n.tree, parent}, true
}

// Depth returns the number of letters on the path from the root
func (n Node) Depth() int {
	depth := 0
	for index := n.index; index != rootIndex; index = n.tree.nodes[index].parent {
		depth++
	}
	return depth
}

// Prefix returns the letters on the path from the root to the node
func (n Node) Prefix() string {
	buf := make([]byte, n.Depth())
	i := len(buf) - 1
	for index := n.index; index != rootIndex; index = n.tree.nodes[index].parent {
		buf[i] = n.tree.nodes[index].symbol
		i--
	}
	return string(buf)
}

// Root returns a view of the tree's root
func (t *PrefixTree) Root() Node {
	return Node{t, rootIndex}
}
