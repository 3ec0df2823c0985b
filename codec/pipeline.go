package codec

import (
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
)

// Encode runs the strict encode pipeline for a pinned format: encrypt,
// assemble {payload, tag} (for the reversed scheme set: {tag, payload},
// then byte-reversed so the tag still ends up last), XOR the head byte
// into the tail tag byte, then text-encode.
func Encode(kc keychain.Keychain, plaintext string, f format.Format) (string, error) {
	if plaintext == "" {
		return "", oberr.New(oberr.EmptyPlaintext)
	}
	c, err := encryptFor(f.Scheme, kc, []byte(plaintext))
	if err != nil {
		return "", err
	}

	var buf []byte
	if f.Scheme.IsReversed() {
		buf = make([]byte, 0, len(c)+1)
		buf = append(buf, f.Scheme.Byte())
		buf = append(buf, c...)
		reverseInPlace(buf)
	} else {
		buf = make([]byte, 0, len(c)+1)
		buf = append(buf, c...)
		buf = append(buf, f.Scheme.Byte())
	}

	mixTail(buf)
	return f.Encoding.Encode(buf), nil
}

// Decode runs the strict decode pipeline for a pinned format: text-decode,
// unmix, verify the tag matches the format's scheme exactly, un-reverse if
// needed, then decrypt.
func Decode(kc keychain.Keychain, token string, f format.Format) (string, error) {
	buf, err := f.Encoding.Decode(token)
	if err != nil {
		return "", err
	}
	if len(buf) == 0 {
		return "", oberr.New(oberr.EmptyPayload)
	}

	unmixTail(buf)
	tag := buf[len(buf)-1]
	buf = buf[:len(buf)-1]
	if tag != f.Scheme.Byte() {
		return "", oberr.New(oberr.SchemeTagMismatch)
	}
	if f.Scheme.IsReversed() {
		reverseInPlace(buf)
	}

	plaintext, err := decryptFor(f.Scheme, kc, buf)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// mixTail replaces the buffer's last byte with its XOR against the first
// byte, so the stored tail byte varies with the payload instead of being a
// fixed per-scheme value. The first byte is left unchanged, which makes
// the mix perfectly invertible by unmixTail.
func mixTail(buf []byte) {
	last := len(buf) - 1
	buf[last] ^= buf[0]
}

func unmixTail(buf []byte) {
	last := len(buf) - 1
	buf[last] ^= buf[0]
}

func reverseInPlace(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
