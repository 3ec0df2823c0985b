package codec

import (
	"encoding/base32"
	"strings"
	"unicode"

	"github.com/go-i2p/oboron/cipherset"
	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
)

// EncodeLegacy runs the self-contained ob00 pipeline: AES-128-CBC with
// '='-padding (cipherset.EncryptOb00), text-encoded with no scheme tag,
// then the whole encoded string is character-reversed. Deliberately shares
// no logic with Encode/Decode: legacy tokens carry no tag byte and must
// never be produced by the primary pipeline.
func EncodeLegacy(kc keychain.Keychain, plaintext string, e encoding.Encoding) (string, error) {
	if plaintext == "" {
		return "", oberr.New(oberr.EmptyPlaintext)
	}
	ct, err := cipherset.EncryptOb00(kc, []byte(plaintext))
	if err != nil {
		return "", err
	}
	encoded := e.Encode(ct)
	return reverseString(encoded), nil
}

// DecodeLegacy reverses the token's character sequence, text-decodes, then
// decrypts with cipherset.DecryptOb00. When e is RFC Base32, the reversed
// text gets the uppercase/pad-to-multiple-of-8 repair and is decoded with
// the padded RFC 4648 alphabet.
func DecodeLegacy(kc keychain.Keychain, token string, e encoding.Encoding) (string, error) {
	reversed := reverseString(token)
	var ct []byte
	var err error
	if e == encoding.RFC {
		ct, err = base32.StdEncoding.DecodeString(repairRFC32(reversed))
		if err != nil {
			err = oberr.Wrap(oberr.InvalidBase32RFC, err)
		}
	} else {
		ct, err = e.Decode(reversed)
	}
	if err != nil {
		return "", err
	}
	plaintext, err := cipherset.DecryptOb00(kc, ct)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// repairRFC32 uppercases the reversed token and right-pads it with '=' to
// the next multiple of 8 characters, so that both unpadded tokens (as
// EncodeLegacy writes them) and lowercased ones decode under the padded
// RFC 4648 Base32 decoder.
func repairRFC32(s string) string {
	s = strings.ToUpper(s)
	if rem := len(s) % 8; rem != 0 {
		s += strings.Repeat("=", 8-rem)
	}
	return s
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// reasonableFraction reports the fraction of runes in s that are "reasonable"
// text: ASCII graphic/whitespace, or any non-control Unicode code point in
// U+0080..U+FFFF. Used by the scheme-only autodetect cascade to validate a
// legacy-pipeline fallback result before accepting it.
func reasonableFraction(s string) float64 {
	if s == "" {
		return 0
	}
	total := 0
	reasonable := 0
	for _, r := range s {
		total++
		switch {
		case r >= 0x20 && r < 0x7f:
			reasonable++
		case r == '\t' || r == '\n' || r == '\r':
			reasonable++
		case r >= 0x80 && r <= 0xffff && !unicode.IsControl(r):
			reasonable++
		}
	}
	return float64(reasonable) / float64(total)
}
