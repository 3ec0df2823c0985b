// Package codec implements oboron's encode/decode pipeline: strict
// encode/decode for a pinned format, both autodetect decoders, the
// self-contained legacy codec, and the Codec/Fixed façades built on top of
// them.
package codec

import (
	"github.com/go-i2p/oboron/cipherset"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
	"github.com/go-i2p/oboron/scheme"
)

// encryptFor dispatches to the cipherset adapter for s. ob00 has no case
// here: legacy tokens are produced only by legacy.go, and scheme.Legacy
// falls through to the default case and fails with UnknownScheme.
func encryptFor(s scheme.Scheme, kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	switch s {
	case scheme.Ob01:
		return cipherset.EncryptOb01(kc, plaintext)
	case scheme.Ob21p:
		return cipherset.EncryptOb21p(kc, plaintext)
	case scheme.Ob31:
		return cipherset.EncryptOb31(kc, plaintext)
	case scheme.Ob31p:
		return cipherset.EncryptOb31p(kc, plaintext)
	case scheme.Ob32:
		return cipherset.EncryptOb32(kc, plaintext)
	case scheme.Ob32p:
		return cipherset.EncryptOb32p(kc, plaintext)
	case scheme.Ob70:
		return cipherset.EncryptOb70(plaintext)
	case scheme.Ob71:
		return cipherset.EncryptOb71(plaintext)
	default:
		return nil, oberr.New(oberr.UnknownScheme)
	}
}

func decryptFor(s scheme.Scheme, kc keychain.Keychain, payload []byte) ([]byte, error) {
	switch s {
	case scheme.Ob01:
		return cipherset.DecryptOb01(kc, payload)
	case scheme.Ob21p:
		return cipherset.DecryptOb21p(kc, payload)
	case scheme.Ob31:
		return cipherset.DecryptOb31(kc, payload)
	case scheme.Ob31p:
		return cipherset.DecryptOb31p(kc, payload)
	case scheme.Ob32:
		return cipherset.DecryptOb32(kc, payload)
	case scheme.Ob32p:
		return cipherset.DecryptOb32p(kc, payload)
	case scheme.Ob70:
		return cipherset.DecryptOb70(payload)
	case scheme.Ob71:
		return cipherset.DecryptOb71(payload)
	default:
		return nil, oberr.New(oberr.UnknownScheme)
	}
}
