package cipherset

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"

	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
)

// sivTagSize is the size, in bytes, of the synthetic IV that AES-SIV
// prepends to its ciphertext (RFC 5297).
const sivTagSize = 16

// sivEngine implements AES-SIV (RFC 5297) over the 64-byte key
// keychain.Keychain.SIVKey vends, split into a CMAC half (S2V) and a CTR
// half (encryption). Deterministic for a given (key, plaintext, AD):
// ob32 calls it with no associated data, ob32p passes its random nonce as
// associated data so the same plaintext under two different nonces yields
// unrelated ciphertexts.
type sivEngine struct {
	macKey []byte
	block  cipher.Block
}

func newSIVEngine(key [64]byte) (*sivEngine, error) {
	block, err := aes.NewCipher(key[32:])
	if err != nil {
		return nil, err
	}
	return &sivEngine{macKey: append([]byte(nil), key[:32]...), block: block}, nil
}

func (e *sivEngine) seal(plaintext []byte, ad ...[]byte) []byte {
	siv := e.s2v(plaintext, ad...)
	ciphertext := make([]byte, len(plaintext))
	e.ctr(siv, plaintext, ciphertext)
	out := make([]byte, sivTagSize+len(ciphertext))
	copy(out, siv)
	copy(out[sivTagSize:], ciphertext)
	return out
}

func (e *sivEngine) open(data []byte, ad ...[]byte) ([]byte, error) {
	if len(data) < sivTagSize {
		return nil, oberr.New(oberr.PayloadTooShort)
	}
	siv := data[:sivTagSize]
	ct := data[sivTagSize:]
	plaintext := make([]byte, len(ct))
	e.ctr(siv, ct, plaintext)
	expected := e.s2v(plaintext, ad...)
	if subtle.ConstantTimeCompare(siv, expected) != 1 {
		return nil, oberr.New(oberr.DecryptionFailed)
	}
	return plaintext, nil
}

// s2v implements the S2V construction from RFC 5297 §2.4.
func (e *sivEngine) s2v(plaintext []byte, ad ...[]byte) []byte {
	macBlock, _ := aes.NewCipher(e.macKey)
	d := e.cmac(macBlock, make([]byte, sivTagSize))
	for _, a := range ad {
		d = xorNew(dbl(d), e.cmac(macBlock, a))
	}
	var t []byte
	if len(plaintext) >= sivTagSize {
		t = append([]byte(nil), plaintext...)
		xorInto(t[len(t)-sivTagSize:], d)
	} else {
		t = xorNew(dbl(d), pad10star(plaintext))
	}
	return e.cmac(macBlock, t)
}

// cmac implements AES-CMAC (RFC 4493) over data of any length.
func (e *sivEngine) cmac(block cipher.Block, data []byte) []byte {
	k1, k2 := cmacSubkeys(block)

	n := (len(data) + sivTagSize - 1) / sivTagSize
	if n == 0 {
		n = 1
	}

	last := make([]byte, sivTagSize)
	if len(data) == 0 || len(data)%sivTagSize != 0 {
		copy(last, data[sivTagSize*(n-1):])
		last = pad10star(last[:len(data)%sivTagSize])
		xorInto(last, k2)
	} else {
		copy(last, data[sivTagSize*(n-1):])
		xorInto(last, k1)
	}

	mac := make([]byte, sivTagSize)
	for i := 0; i < n-1; i++ {
		xorInto(mac, data[i*sivTagSize:(i+1)*sivTagSize])
		block.Encrypt(mac, mac)
	}
	xorInto(mac, last)
	block.Encrypt(mac, mac)
	return mac
}

// ctr runs AES-CTR keyed by the CTR half of the engine's key, with the SIV
// used as the counter block after clearing bits 63 and 31 (the top bits of
// its bytes 8 and 12) per RFC 5297 §2.5 (so the value is safe to reuse as a
// block-cipher counter).
func (e *sivEngine) ctr(siv, src, dst []byte) {
	ctr := make([]byte, sivTagSize)
	copy(ctr, siv)
	ctr[8] &= 0x7f
	ctr[12] &= 0x7f
	cipher.NewCTR(e.block, ctr).XORKeyStream(dst, src)
}

func cmacSubkeys(block cipher.Block) ([]byte, []byte) {
	l := make([]byte, sivTagSize)
	block.Encrypt(l, l)
	k1 := dbl(l)
	k2 := dbl(k1)
	return k1, k2
}

// dbl doubles block in GF(2^128) per RFC 5297 §2.2, reducing modulo the
// polynomial x^128 + x^7 + x^2 + x + 1 (0x87) on overflow.
func dbl(block []byte) []byte {
	result := make([]byte, sivTagSize)
	carry := uint64(0)
	for i := 0; i < 2; i++ {
		offset := (1 - i) * 8
		val := binary.BigEndian.Uint64(block[offset : offset+8])
		binary.BigEndian.PutUint64(result[offset:offset+8], (val<<1)|carry)
		carry = val >> 63
	}
	if carry != 0 {
		result[15] ^= 0x87
	}
	return result
}

// pad10star applies the RFC 5297 "10*" padding: a single 0x80 byte
// followed by zeros, into a fresh 16-byte block.
func pad10star(data []byte) []byte {
	result := make([]byte, sivTagSize)
	copy(result, data)
	result[len(data)] = 0x80
	return result
}

func xorNew(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func xorInto(dst, src []byte) {
	for i := 0; i < len(dst) && i < len(src); i++ {
		dst[i] ^= src[i]
	}
}

// EncryptOb32 encrypts plaintext with deterministic AES-256-SIV: the same
// (key, plaintext) pair always yields the same token, with no nonce and no
// associated data.
func EncryptOb32(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	eng, err := newSIVEngine(kc.SIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	return eng.seal(plaintext), nil
}

// DecryptOb32 is the inverse of EncryptOb32.
func DecryptOb32(kc keychain.Keychain, data []byte) ([]byte, error) {
	eng, err := newSIVEngine(kc.SIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return eng.open(data)
}

const ob32pNonceSize = 16

// EncryptOb32p encrypts plaintext with probabilistic AES-256-SIV,
// prepending a fresh random 16-byte nonce and binding it in as associated
// data so it cannot be swapped onto a different ciphertext. Structure:
// [nonce][siv][ciphertext].
func EncryptOb32p(kc keychain.Keychain, plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	eng, err := newSIVEngine(kc.SIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	nonce := make([]byte, ob32pNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, oberr.Wrap(oberr.EncryptionFailed, err)
	}
	sealed := eng.seal(plaintext, nonce)
	out := make([]byte, ob32pNonceSize+len(sealed))
	copy(out, nonce)
	copy(out[ob32pNonceSize:], sealed)
	return out, nil
}

// DecryptOb32p is the inverse of EncryptOb32p.
func DecryptOb32p(kc keychain.Keychain, data []byte) ([]byte, error) {
	if len(data) < ob32pNonceSize+sivTagSize {
		return nil, oberr.New(oberr.PayloadTooShort)
	}
	nonce := data[:ob32pNonceSize]
	sealed := data[ob32pNonceSize:]
	eng, err := newSIVEngine(kc.SIVKey())
	if err != nil {
		return nil, oberr.Wrap(oberr.DecryptionFailed, err)
	}
	return eng.open(sealed, nonce)
}
