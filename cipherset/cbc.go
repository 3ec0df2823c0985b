// Package cipherset implements oboron's per-scheme cipher adapters: one
// encrypt/decrypt pair per scheme, taking a keychain.Keychain and raw
// plaintext/ciphertext bytes and returning the opaque payload the codec
// pipeline attaches a tag byte to (or, for ob00, the raw ciphertext the
// legacy pipeline wraps on its own).
package cipherset

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"

	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
)

const aesBlockSize = 16

// cbcPaddingByte is the custom padding byte ob01/ob21p use in place of
// PKCS#7: ciphertext length is always a multiple of the block size, and
// decrypt trims trailing bytes equal to this value. It is not
// cryptographically meaningful. Because decrypt trims every trailing 0x01,
// a plaintext that itself ends in 0x01 bytes loses them on the round trip
// (this scheme is explicitly not cryptographically secure — see
// EncryptOb01's doc comment).
const cbcPaddingByte = 0x01

func padLen(n int) int {
	return (aesBlockSize - (n % aesBlockSize)) % aesBlockSize
}

// EncryptOb01 encrypts plaintext with deterministic AES-128-CBC using the
// keychain's fixed IV. Not cryptographically secure: a fixed IV under CBC
// leaks equality of plaintext prefixes across encryptions. ob01 exists for
// obfuscation, not confidentiality against an adversary who can compare
// tokens.
func EncryptOb01(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	cbcKey := kc.CBCKey()
	iv := kc.CBCIV()
	buf := padWith(plaintext, cbcPaddingByte)
	if err := cbcEncrypt(cbcKey[:], iv[:], buf); err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	return buf, nil
}

// DecryptOb01 is the inverse of EncryptOb01.
func DecryptOb01(kc keychain.Keychain, data []byte) ([]byte, error) {
	if len(data)%aesBlockSize != 0 {
		return nil, oberr.New(oberr.InvalidBlockLength)
	}
	cbcKey := kc.CBCKey()
	iv := kc.CBCIV()
	buf := append([]byte(nil), data...)
	if err := cbcDecrypt(cbcKey[:], iv[:], buf); err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return trimPadding(buf, cbcPaddingByte), nil
}

const ob21pIVSize = 16

// EncryptOb21p encrypts plaintext with probabilistic AES-128-CBC,
// prepending a fresh random IV to the returned payload. Structure:
// [iv][ciphertext].
func EncryptOb21p(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	cbcKey := kc.CBCKey()
	total := len(plaintext) + padLen(len(plaintext))
	buf := make([]byte, ob21pIVSize+total)
	if _, err := rand.Read(buf[:ob21pIVSize]); err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	copy(buf[ob21pIVSize:], plaintext)
	for i := ob21pIVSize + len(plaintext); i < len(buf); i++ {
		buf[i] = cbcPaddingByte
	}
	if err := cbcEncrypt(cbcKey[:], buf[:ob21pIVSize], buf[ob21pIVSize:]); err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	return buf, nil
}

// DecryptOb21p is the inverse of EncryptOb21p. data must be at least 32
// bytes: 16 bytes of IV plus at least one 16-byte ciphertext block.
func DecryptOb21p(kc keychain.Keychain, data []byte) ([]byte, error) {
	if len(data) < ob21pIVSize+aesBlockSize {
		return nil, oberr.New(oberr.PayloadTooShort)
	}
	iv := data[:ob21pIVSize]
	ct := data[ob21pIVSize:]
	if len(ct)%aesBlockSize != 0 {
		return nil, oberr.New(oberr.InvalidBlockLength)
	}
	cbcKey := kc.CBCKey()
	buf := append([]byte(nil), ct...)
	if err := cbcDecrypt(cbcKey[:], iv, buf); err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return trimPadding(buf, cbcPaddingByte), nil
}

func padWith(plaintext []byte, padByte byte) []byte {
	total := len(plaintext) + padLen(len(plaintext))
	buf := make([]byte, total)
	copy(buf, plaintext)
	for i := len(plaintext); i < total; i++ {
		buf[i] = padByte
	}
	return buf
}

func trimPadding(buf []byte, padByte byte) []byte {
	end := len(buf)
	for end > 0 && buf[end-1] == padByte {
		end--
	}
	return buf[:end]
}

func cbcEncrypt(key, iv, buf []byte) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)
	return nil
}

func cbcDecrypt(key, iv, buf []byte) error {
	block, err := aes.NewCipher(key)
	if err != nil {
		return err
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(buf, buf)
	return nil
}
