package codec

import (
	"testing"

	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/oberr"
	"github.com/go-i2p/oboron/scheme"
)

func testKeychain(t *testing.T) keychain.Keychain {
	t.Helper()
	kc, err := keychain.Generate()
	if err != nil {
		t.Fatalf("keychain.Generate: %v", err)
	}
	return kc
}

func TestEncodeDecodeRoundTripAllFormats(t *testing.T) {
	kc := testKeychain(t)
	for _, s := range scheme.All {
		for _, e := range encoding.All {
			f := format.New(s, e)
			token, err := Encode(kc, "round trip payload", f)
			if err != nil {
				t.Fatalf("%v: Encode: %v", f, err)
			}
			got, err := Decode(kc, token, f)
			if err != nil {
				t.Fatalf("%v: Decode: %v", f, err)
			}
			if got != "round trip payload" {
				t.Fatalf("%v: got %q", f, got)
			}
		}
	}
}

func TestEncodeEmptyPlaintext(t *testing.T) {
	kc := testKeychain(t)
	f := format.New(scheme.Ob32, encoding.Crockford)
	if _, err := Encode(kc, "", f); !oberr.Is(err, oberr.EmptyPlaintext) {
		t.Fatalf("expected EmptyPlaintext, got %v", err)
	}
}

func TestDecodeSchemeTagMismatch(t *testing.T) {
	kc := testKeychain(t)
	token, err := Encode(kc, "payload", format.New(scheme.Ob32, encoding.Crockford))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	wrongFormat := format.New(scheme.Ob70, encoding.Crockford)
	if _, err := Decode(kc, token, wrongFormat); !oberr.Is(err, oberr.SchemeTagMismatch) {
		t.Fatalf("expected SchemeTagMismatch, got %v", err)
	}
}

func TestDecodeWrongKeyFails(t *testing.T) {
	kc1 := testKeychain(t)
	kc2 := testKeychain(t)
	f := format.New(scheme.Ob31, encoding.Base64)
	token, err := Encode(kc1, "secret", f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(kc2, token, f); err == nil {
		t.Fatal("expected decode failure under the wrong key")
	}
}

func TestDecodeKeyFormatEquivalence(t *testing.T) {
	kc, err := keychain.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	fromHex, err := keychain.FromHex(kc.Hex())
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	f := format.New(scheme.Ob32, encoding.Hex)
	token, err := Encode(kc, "payload", f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(fromHex, token, f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "payload" {
		t.Fatalf("got %q", got)
	}
}

func TestProbabilisticSchemesProduceDistinctTokens(t *testing.T) {
	kc := testKeychain(t)
	for _, s := range []scheme.Scheme{scheme.Ob21p, scheme.Ob31p, scheme.Ob32p} {
		f := format.New(s, encoding.Base64)
		seen := make(map[string]bool)
		for i := 0; i < 10; i++ {
			token, err := Encode(kc, "same plaintext", f)
			if err != nil {
				t.Fatalf("%v: Encode: %v", s, err)
			}
			seen[token] = true
		}
		if len(seen) != 10 {
			t.Fatalf("%v: expected 10 distinct tokens, got %d", s, len(seen))
		}
	}
}

func TestDeterministicSchemesProduceSameToken(t *testing.T) {
	kc := testKeychain(t)
	for _, s := range []scheme.Scheme{scheme.Ob01, scheme.Ob31, scheme.Ob32, scheme.Ob70, scheme.Ob71} {
		f := format.New(s, encoding.Hex)
		a, err := Encode(kc, "same plaintext", f)
		if err != nil {
			t.Fatalf("%v: Encode: %v", s, err)
		}
		b, _ := Encode(kc, "same plaintext", f)
		if a != b {
			t.Fatalf("%v: expected identical tokens, got %q vs %q", s, a, b)
		}
	}
}
