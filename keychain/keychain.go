// Package keychain owns oboron's 64-byte master key and vends the fixed
// byte sub-views each cipher family is keyed from.
package keychain

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/go-i2p/oboron/oberr"
)

// KeySize is the required length, in bytes, of an oboron master key.
const KeySize = 64

var rawEncoding = base64.RawURLEncoding

// Keychain owns a 64-byte master key and exposes fixed slices of it as
// sub-keys for each cipher family. It is immutable after construction and
// safe for concurrent use.
type Keychain struct {
	key [KeySize]byte
}

// FromBytes builds a Keychain directly from 64 raw bytes.
func FromBytes(key [KeySize]byte) Keychain {
	return Keychain{key: key}
}

// FromSlice builds a Keychain from a byte slice, which must be exactly 64
// bytes long.
func FromSlice(key []byte) (Keychain, error) {
	if len(key) != KeySize {
		return Keychain{}, oberr.New(oberr.InvalidKeyLength)
	}
	var k [KeySize]byte
	copy(k[:], key)
	return Keychain{key: k}, nil
}

// FromHex builds a Keychain from a 128-character lowercase hex string.
func FromHex(s string) (Keychain, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Keychain{}, oberr.Wrap(oberr.InvalidHex, err)
	}
	return FromSlice(b)
}

// FromBase64 builds a Keychain from an 86-character unpadded URL-safe
// Base64 string.
func FromBase64(s string) (Keychain, error) {
	b, err := rawEncoding.DecodeString(s)
	if err != nil {
		return Keychain{}, oberr.Wrap(oberr.InvalidBase64, err)
	}
	return FromSlice(b)
}

// Generate returns a Keychain seeded from a cryptographically secure
// random 64-byte key.
func Generate() (Keychain, error) {
	var k [KeySize]byte
	if _, err := rand.Read(k[:]); err != nil {
		return Keychain{}, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	return Keychain{key: k}, nil
}

// GenerateBase64 generates a random key and returns its Base64 form,
// retrying until the encoding contains neither '-' nor '_' so the result
// is double-click-selectable in a terminal. This is presentational and
// does not change the key space.
func GenerateBase64() (string, error) {
	for {
		k, err := Generate()
		if err != nil {
			return "", err
		}
		s := k.Base64()
		if !containsAny(s, "-_") {
			return s, nil
		}
	}
}

func containsAny(s, chars string) bool {
	for _, c := range chars {
		for _, r := range s {
			if r == c {
				return true
			}
		}
	}
	return false
}

// Bytes returns a copy of the raw 64-byte master key.
func (k Keychain) Bytes() [KeySize]byte { return k.key }

// Hex returns the 128-character lowercase hex form of the master key.
func (k Keychain) Hex() string { return hex.EncodeToString(k.key[:]) }

// Base64 returns the 86-character unpadded URL-safe Base64 form of the
// master key.
func (k Keychain) Base64() string { return rawEncoding.EncodeToString(k.key[:]) }

// CBCKey returns the AES-128 key for CBC-based schemes: bytes [0..16).
func (k Keychain) CBCKey() [16]byte {
	var b [16]byte
	copy(b[:], k.key[0:16])
	return b
}

// CBCIV returns the fixed IV for deterministic CBC: bytes [16..32).
func (k Keychain) CBCIV() [16]byte {
	var b [16]byte
	copy(b[:], k.key[16:32])
	return b
}

// GCMSIVKey returns the AES-256 key for GCM-SIV schemes: bytes [32..64).
func (k Keychain) GCMSIVKey() [32]byte {
	var b [32]byte
	copy(b[:], k.key[32:64])
	return b
}

// SIVKey returns the full 512-bit key for AES-SIV, split internally into
// CMAC and CTR halves by the cipherset adapter.
func (k Keychain) SIVKey() [64]byte { return k.key }
