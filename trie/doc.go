/*
Package trie implements PrefixTree, an exact prefix tree over the lowercase
letters a-z.

Nodes live in an arena and refer to each other by index: every node holds 26
child slots and the index of its parent, so removal can prune dead branches by
walking parent indices back toward the root. A tree's identity is its set of
complete words: Equals ignores shape, and Union and Difference are defined on
word sets.

Words must be non-empty and consist only of the letters a-z. Insert rejects
anything else with ErrInvalidWord and leaves the tree unchanged; queries for
such input simply answer false.

A PrefixTree is not safe for concurrent use.
*/
package trie
