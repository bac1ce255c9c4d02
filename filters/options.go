package filters

import (
	"github.com/kwertop/lexiset/hash"
	"github.com/kwertop/lexiset/internal/logging"
)

// Option configures a MembershipFilter at construction.
type Option func(*MembershipFilter)

// WithHasher selects the hash function behind the hash family.
// Filters can only be merged if they use the same hasher.
func WithHasher(hasher hash.Hasher) Option {
	return func(f *MembershipFilter) {
		f.hasher = hasher
	}
}

// WithLogger sets the logger used to report load failures and authority
// errors. The default discards everything.
func WithLogger(logger *logging.Logger) Option {
	return func(f *MembershipFilter) {
		f.logger = logger
	}
}
