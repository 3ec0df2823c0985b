package codec

import (
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/keychain"
)

// Codec is the multi-format façade: a single Keychain shared across calls,
// each of which supplies its own format string. Codec stores no format
// state of its own and is safe for concurrent use.
type Codec struct {
	key           keychain.Keychain
	legacyEnabled bool
}

// New builds a Codec with the legacy ob00 fallback disabled.
func New(key keychain.Keychain) Codec {
	return Codec{key: key}
}

// NewWithLegacy builds a Codec with the legacy ob00 fallback enabled for
// Autodecode. Encode and Decode never use the legacy pipeline.
func NewWithLegacy(key keychain.Keychain) Codec {
	return Codec{key: key, legacyEnabled: true}
}

// LegacyEnabled reports whether this Codec will fall back to the legacy
// pipeline on unrecognized tokens.
func (c Codec) LegacyEnabled() bool { return c.legacyEnabled }

// Key returns the Codec's Keychain.
func (c Codec) Key() keychain.Keychain { return c.key }

// Encode parses formatString and runs the strict encode pipeline.
func (c Codec) Encode(plaintext, formatString string) (string, error) {
	f, err := format.Parse(formatString)
	if err != nil {
		return "", err
	}
	return Encode(c.key, plaintext, f)
}

// Decode parses formatString and runs the strict decode pipeline.
func (c Codec) Decode(token, formatString string) (string, error) {
	f, err := format.Parse(formatString)
	if err != nil {
		return "", err
	}
	return Decode(c.key, token, f)
}

// Autodecode runs the scheme-and-encoding autodetect decoder.
func (c Codec) Autodecode(token string) (string, error) {
	return Autodecode(c.key, token, c.legacyEnabled)
}
