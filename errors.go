package lexiset

import "errors"

// ErrInvalidArgument is wrapped by every error caused by a caller passing
// arguments that can't be combined, e.g. merging filters built with a
// different number of hash functions.
var ErrInvalidArgument = errors.New("lexiset: invalid argument")
