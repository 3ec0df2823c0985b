// Package oberr defines the error taxonomy shared by every oboron package.
//
// Every failure path in the core library returns a *Error carrying one of
// the fixed Kind values below. Callers that need the original cause (an
// AEAD authentication failure, a malformed base32 string) can recover it
// with errors.Unwrap or errors.As; callers that only care about the kind
// of failure should use Is.
package oberr

import "fmt"

// Kind identifies the class of failure. Kind values are stable and are not
// meant to be extended by callers outside this module.
type Kind int

const (
	// Key construction.
	InvalidKeyLength Kind = iota
	InvalidHex
	InvalidBase64

	// Format parsing / dispatch.
	InvalidFormat
	UnknownScheme
	UnknownEncoding

	// Outer (text) decode.
	InvalidBase32RFC
	InvalidBase32Crockford
	InvalidBase64Encoding
	InvalidHexEncoding

	// Structural preconditions.
	EmptyPlaintext
	EmptyPayload
	PayloadTooShort
	InvalidBlockLength

	// Cipher primitive failures.
	EncryptionFailed
	DecryptionFailed

	// Pipeline-level failures.
	SchemeTagMismatch
	InvalidLegacyOutput
)

var kindText = map[Kind]string{
	InvalidKeyLength:       "key must be 64 bytes",
	InvalidHex:             "invalid hex encoding",
	InvalidBase64:          "invalid base64 encoding",
	InvalidFormat:          "invalid format string",
	UnknownScheme:          "unknown scheme",
	UnknownEncoding:        "unknown encoding",
	InvalidBase32RFC:       "invalid base32rfc encoding",
	InvalidBase32Crockford: "invalid base32crockford encoding",
	InvalidBase64Encoding:  "invalid base64 encoding",
	InvalidHexEncoding:     "invalid hex encoding",
	EmptyPlaintext:         "enc failed: empty plaintext",
	EmptyPayload:           "dec failed: empty payload",
	PayloadTooShort:        "dec failed: payload too short",
	InvalidBlockLength:     "invalid block length",
	EncryptionFailed:       "enc failed",
	DecryptionFailed:       "decryption failed",
	SchemeTagMismatch:      "decoding failed: scheme byte mismatch",
	InvalidLegacyOutput:    "ob00 fallback produced invalid output (likely encoding mismatch)",
}

func (k Kind) String() string {
	if s, ok := kindText[k]; ok {
		return s
	}
	return "unknown error"
}

// Error is the concrete error type returned by every oboron package.
type Error struct {
	Kind Kind
	Err  error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New builds a bare Error for kind k with no wrapped cause.
func New(k Kind) *Error { return &Error{Kind: k} }

// Wrap builds an Error for kind k that wraps err for errors.Unwrap/As.
func Wrap(k Kind, err error) *Error { return &Error{Kind: k, Err: err} }

// Is reports whether err is an *Error of the given kind.
func Is(err error, k Kind) bool {
	var e *Error
	if ok := asError(err, &e); ok {
		return e.Kind == k
	}
	return false
}

func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
