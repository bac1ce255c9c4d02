/*
Package filters provides the MembershipFilter, a Bloom filter over strings.

A Bloom filter is a space-efficient probabilistic data structure that is used to test
whether an element is a member of a set. It never reports a false negative; a positive
answer is only "possibly present", with a false positive rate of roughly
(1 - e^(-k*n/m))^k after n insertions into m bits with k hash functions.
Refer: https://web.stanford.edu/~balaji/papers/bloom.pdf

The MembershipFilter pairs the bit array with a WordAuthority, an exact (and
possibly remote) word source: CertainlyContains only asks the authority when
the bits already say "possibly", so most negative lookups never leave memory.
*/
package filters
