package cipherset

import "github.com/go-i2p/oboron/oberr"

// EncryptOb70 is the identity scheme: it returns plaintext unchanged. It
// still rejects empty input so ob70 tokens obey the same non-empty-payload
// invariant every other scheme does. ob70 provides no confidentiality and
// exists only to exercise the codec pipeline without cipher overhead.
func EncryptOb70(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	return append([]byte(nil), plaintext...), nil
}

// DecryptOb70 is the inverse of EncryptOb70.
func DecryptOb70(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, oberr.New(oberr.EmptyPayload)
	}
	return append([]byte(nil), data...), nil
}

// EncryptOb71 reverses the byte order of plaintext. Like ob70 it provides
// no confidentiality; it exists to exercise a non-identity, non-keyed
// transform through the codec pipeline.
func EncryptOb71(plaintext []byte) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, oberr.New(oberr.EmptyPlaintext)
	}
	return reverseBytes(plaintext), nil
}

// DecryptOb71 is the inverse of EncryptOb71: reversing twice returns the
// original bytes.
func DecryptOb71(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, oberr.New(oberr.EmptyPayload)
	}
	return reverseBytes(data), nil
}

func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}
