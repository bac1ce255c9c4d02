package filters

import (
	"io"
)

// MarshalText encodes the bits as exactly GetCap() symbols, '0' or '1',
// highest bit first. Neither the number of hashes nor the seeds are
// included: a reader must be built with the same size and numHashes.
func (f *MembershipFilter) MarshalText() ([]byte, error) {
	return f.filter.MarshalText()
}

// UnmarshalText replaces the bits with the decoded _text_. Malformed text
// leaves the filter unchanged.
func (f *MembershipFilter) UnmarshalText(text []byte) error {
	return f.filter.UnmarshalText(text)
}

// WriteTo writes the text encoding of the bits onto _stream_
func (f *MembershipFilter) WriteTo(stream io.Writer) (int64, error) {
	return f.filter.WriteTo(stream)
}

// ReadFrom reads GetCap() symbols from _stream_ into the bits, skipping
// leading whitespace
func (f *MembershipFilter) ReadFrom(stream io.Reader) (int64, error) {
	return f.filter.ReadFrom(stream)
}

func (f *MembershipFilter) String() string {
	text, err := f.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}
