package cipherset

import "github.com/go-i2p/oboron/keychain"
import "github.com/go-i2p/oboron/oberr"

// ob00PaddingByte is the legacy padding byte: ASCII '='. Differs from
// ob01/ob21p's 0x01 padding; kept separate on purpose so the legacy
// pipeline never shares padding behavior with the primary one.
const ob00PaddingByte = '='

// EncryptOb00 encrypts plaintext with the same deterministic AES-128-CBC
// construction as ob01 (fixed IV from the keychain), but pads with ASCII
// '=' instead of 0x01. Kept isolated from ob01/ob21p per the legacy
// pipeline's self-containment requirement.
func EncryptOb00(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	cbcKey := kc.CBCKey()
	iv := kc.CBCIV()
	buf := padWith(plaintext, ob00PaddingByte)
	if err := cbcEncrypt(cbcKey[:], iv[:], buf); err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	return buf, nil
}

// DecryptOb00 is the inverse of EncryptOb00.
func DecryptOb00(kc keychain.Keychain, data []byte) ([]byte, error) {
	if len(data)%aesBlockSize != 0 {
		return nil, oberr.New(oberr.InvalidBlockLength)
	}
	cbcKey := kc.CBCKey()
	iv := kc.CBCIV()
	buf := append([]byte(nil), data...)
	if err := cbcDecrypt(cbcKey[:], iv[:], buf); err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return trimPadding(buf, ob00PaddingByte), nil
}
