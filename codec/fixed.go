package codec

import (
	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/scheme"
)

// Fixed is a codec pinned to one {Keychain, Format} pair, for callers that
// always encode and decode in the same format. It is observably equivalent
// to Codec with every call supplying the same format string.
type Fixed struct {
	key keychain.Keychain
	fmt format.Format
}

// NewFixed builds a Fixed codec for the given key and format.
func NewFixed(key keychain.Keychain, f format.Format) Fixed {
	return Fixed{key: key, fmt: f}
}

// Key returns the pinned Keychain.
func (f Fixed) Key() keychain.Keychain { return f.key }

// Scheme returns the pinned Scheme.
func (f Fixed) Scheme() scheme.Scheme { return f.fmt.Scheme }

// Encoding returns the pinned Encoding.
func (f Fixed) Encoding() encoding.Encoding { return f.fmt.Encoding }

// Format returns the pinned Format.
func (f Fixed) Format() format.Format { return f.fmt }

// Encode runs the strict encode pipeline under the pinned format.
func (f Fixed) Encode(plaintext string) (string, error) {
	return Encode(f.key, plaintext, f.fmt)
}

// Decode autodetects the scheme from the token's tag byte under the pinned
// encoding (§4.7), rather than requiring the tag to match the pinned
// scheme. Use DecodeStrict to require an exact scheme match.
func (f Fixed) Decode(token string) (string, error) {
	return DecodeScheme(f.key, f.fmt.Encoding, token, false)
}

// DecodeStrict runs the strict decode pipeline, requiring the token's tag
// byte to match the pinned scheme exactly.
func (f Fixed) DecodeStrict(token string) (string, error) {
	return Decode(f.key, token, f.fmt)
}
