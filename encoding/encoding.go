// Package encoding provides the four lossless bytes-to-text encodings
// oboron tokens are written in: Crockford Base32, RFC 4648 Base32,
// URL-safe Base64, and lowercase hex.
//
// encoding/base32's NewEncoding already accepts an arbitrary alphabet, so
// Crockford's variant needs no third-party dependency; the same goes for
// encoding/base64's RawURLEncoding and encoding/hex.
package encoding

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"

	"github.com/go-i2p/oboron/oberr"
)

// Encoding identifies one of oboron's four outer text encodings.
type Encoding int

const (
	Crockford Encoding = iota
	RFC
	Base64
	Hex
)

const crockfordAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

var crockfordEncoding = base32.NewEncoding(crockfordAlphabet).WithPadding(base32.NoPadding)
var rfcEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)
var base64Encoding = base64.RawURLEncoding

var shortNames = map[Encoding]string{
	Crockford: "c32",
	RFC:       "b32",
	Base64:    "b64",
	Hex:       "hex",
}

var longNames = map[Encoding]string{
	Crockford: "base32crockford",
	RFC:       "base32rfc",
	Base64:    "base64",
	Hex:       "hex",
}

var byName = func() map[string]Encoding {
	m := make(map[string]Encoding)
	for e, n := range shortNames {
		m[n] = e
	}
	for e, n := range longNames {
		m[n] = e
	}
	return m
}()

// All lists every encoding in a stable order.
var All = []Encoding{Crockford, RFC, Base64, Hex}

func (e Encoding) String() string { return longNames[e] }

// ShortName returns the abbreviated form used in "scheme:enc" format strings.
func (e Encoding) ShortName() string { return shortNames[e] }

// Parse resolves an encoding by either its short or long name, case
// sensitively (the format grammar tolerates no casing or whitespace).
func Parse(s string) (Encoding, error) {
	v, ok := byName[s]
	if !ok {
		return 0, oberr.New(oberr.UnknownEncoding)
	}
	return v, nil
}

// errKind returns the decode-error Kind specific to this encoding, so
// callers can distinguish which outer decoder rejected a token.
func (e Encoding) errKind() oberr.Kind {
	switch e {
	case Crockford:
		return oberr.InvalidBase32Crockford
	case RFC:
		return oberr.InvalidBase32RFC
	case Base64:
		return oberr.InvalidBase64Encoding
	default:
		return oberr.InvalidHexEncoding
	}
}

// Encode renders b in this encoding's alphabet.
func (e Encoding) Encode(b []byte) string {
	switch e {
	case Crockford:
		return crockfordEncoding.EncodeToString(b)
	case RFC:
		return rfcEncoding.EncodeToString(b)
	case Base64:
		return base64Encoding.EncodeToString(b)
	default:
		return hex.EncodeToString(b)
	}
}

// Decode parses s back into bytes, failing with this encoding's
// distinctive error kind on malformed input.
func (e Encoding) Decode(s string) ([]byte, error) {
	var b []byte
	var err error
	switch e {
	case Crockford:
		b, err = crockfordEncoding.DecodeString(s)
	case RFC:
		b, err = rfcEncoding.DecodeString(s)
	case Base64:
		b, err = base64Encoding.DecodeString(s)
	default:
		b, err = hex.DecodeString(s)
	}
	if err != nil {
		return nil, oberr.Wrap(e.errKind(), err)
	}
	return b, nil
}
