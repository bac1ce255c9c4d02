/*
Package lexiset provides two complementary membership-testing structures over
strings.

 1. MembershipFilter (package filters): a fixed-capacity Bloom filter with k
    seeded hash functions. It answers "possibly present" with no false
    negatives and a bounded false positive rate, and can consult a
    WordAuthority (package authority) to turn a positive into a certainty.
 2. PrefixTree (package trie): an exact prefix tree over the lowercase
    letters a-z with word-set algebra (union, difference, equality).

Both structures can be backed in-memory or, for the filter's bit array and the
word authority, by Redis. This package holds the pieces shared by all of them:
the error sentinels and the Redis connection helpers.
*/
package lexiset
