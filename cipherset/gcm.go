package cipherset

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
)

// gcmNonceSize and gcmTagSize match the inputs/outputs the spec fixes for
// ob31/ob31p's AEAD primitive: a 12-byte nonce and a 16-byte tag. The spec
// deliberately leaves the AEAD's internals external to this library (§1);
// this adapter binds to stdlib AES-256 in Galois/Counter Mode
// (crypto/cipher.NewGCMWithNonceSize), which satisfies those fixed input/output sizes
// and failure semantics (authentication failure is indistinguishable from
// malformed ciphertext, matching the spec's DecryptionFailed contract)
// without requiring a dependency the retrieved corpus never grounds.
const (
	gcmNonceSize = 12
	gcmTagSize   = 16
)

func newGCMAEAD(key [32]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCMWithNonceSize(block, gcmNonceSize)
}

// EncryptOb31 encrypts plaintext with deterministic AES-256-GCM using an
// all-zero nonce. Returns ciphertext with its 16-byte authentication tag
// appended; no nonce is present in the payload since it is always zero.
func EncryptOb31(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	aead, err := newGCMAEAD(kc.GCMSIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	nonce := make([]byte, gcmNonceSize)
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// DecryptOb31 is the inverse of EncryptOb31.
func DecryptOb31(kc keychain.Keychain, data []byte) ([]byte, error) {
	if len(data) < gcmTagSize+1 {
		return nil, oberr.New(oberr.PayloadTooShort)
	}
	aead, err := newGCMAEAD(kc.GCMSIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	nonce := make([]byte, gcmNonceSize)
	plaintext, err := aead.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return plaintext, nil
}

// EncryptOb31p encrypts plaintext with probabilistic AES-256-GCM,
// prepending a fresh random 12-byte nonce to the returned payload.
// Structure: [nonce][ciphertext+tag].
func EncryptOb31p(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	aead, err := newGCMAEAD(kc.GCMSIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	nonce := make([]byte, gcmNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	sealed := aead.Seal(nil, nonce, plaintext, nil)
	buf := make([]byte, gcmNonceSize+len(sealed))
	copy(buf, nonce)
	copy(buf[gcmNonceSize:], sealed)
	return buf, nil
}

// DecryptOb31p is the inverse of EncryptOb31p.
func DecryptOb31p(kc keychain.Keychain, data []byte) ([]byte, error) {
	if len(data) < gcmNonceSize+gcmTagSize+1 {
		return nil, oberr.New(oberr.PayloadTooShort)
	}
	nonce := data[:gcmNonceSize]
	sealed := data[gcmNonceSize:]
	aead, err := newGCMAEAD(kc.GCMSIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return plaintext, nil
}
