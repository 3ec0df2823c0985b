package codec

import (
	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
	"github.com/go-i2p/oboron/scheme"
)

// legacyReasonableThreshold is the minimum fraction of "reasonable"
// characters a legacy-pipeline fallback result must contain before it is
// accepted as plaintext, rather than rejected as noise from decrypting a
// token under the wrong scheme.
const legacyReasonableThreshold = 0.7

// DecodeScheme runs the scheme-only autodetect decoder: the encoding is
// known, the scheme is recovered from the token's embedded tag byte. When
// legacyEnabled is true, the ob00 fallback is tried whenever outer decoding
// fails or the tag byte is unrecognized.
func DecodeScheme(kc keychain.Keychain, e encoding.Encoding, token string, legacyEnabled bool) (string, error) {
	buf, err := e.Decode(token)
	if err != nil {
		if legacyEnabled {
			return DecodeLegacy(kc, token, e)
		}
		return "", err
	}
	if len(buf) == 0 {
		return "", oberr.New(oberr.EmptyPayload)
	}

	unmixTail(buf)
	tag := buf[len(buf)-1]
	buf = buf[:len(buf)-1]

	s, ok := scheme.FromTag(tag)
	if !ok {
		if !legacyEnabled {
			return "", oberr.New(oberr.UnknownScheme)
		}
		out, err := DecodeLegacy(kc, token, e)
		if err != nil {
			return "", err
		}
		if reasonableFraction(out) < legacyReasonableThreshold {
			return "", oberr.New(oberr.InvalidLegacyOutput)
		}
		return out, nil
	}

	if s.IsReversed() {
		reverseInPlace(buf)
	}
	plaintext, err := decryptFor(s, kc, buf)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// encodingCascade returns the ordered list of encodings to try for a token,
// chosen by a character-class heuristic over the token text.
func encodingCascade(token string) []encoding.Encoding {
	hasDash := false
	hasUpper := false
	hasLower := false
	hasLowerAboveF := false
	for _, r := range token {
		switch {
		case r == '-' || r == '_':
			hasDash = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
			if r > 'f' {
				hasLowerAboveF = true
			}
		}
	}

	switch {
	case hasDash || (hasUpper && hasLower):
		return []encoding.Encoding{encoding.Base64}
	case hasUpper:
		return []encoding.Encoding{encoding.RFC, encoding.Base64}
	case hasLowerAboveF:
		return []encoding.Encoding{encoding.Crockford, encoding.Base64}
	default:
		return []encoding.Encoding{encoding.Hex, encoding.Crockford, encoding.Base64}
	}
}

// Autodecode runs the full scheme-and-encoding autodetect decoder: a
// character-class heuristic picks a candidate encoding order, and each
// candidate is tried in turn via DecodeScheme until one succeeds.
func Autodecode(kc keychain.Keychain, token string, legacyEnabled bool) (string, error) {
	var lastErr error
	for _, e := range encodingCascade(token) {
		out, err := DecodeScheme(kc, e, token, legacyEnabled)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return "", lastErr
}
