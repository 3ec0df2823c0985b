package cipherset

import (
	"testing"

	"github.com/go-i2p/oboron/oberr"
)

func TestOb32RoundTripAndDeterministic(t *testing.T) {
	kc := testKeychain(t)
	a, err := EncryptOb32(kc, []byte("siv payload"))
	if err != nil {
		t.Fatalf("EncryptOb32: %v", err)
	}
	b, _ := EncryptOb32(kc, []byte("siv payload"))
	if string(a) != string(b) {
		t.Fatal("ob32 must be deterministic")
	}
	pt, err := DecryptOb32(kc, a)
	if err != nil {
		t.Fatalf("DecryptOb32: %v", err)
	}
	if string(pt) != "siv payload" {
		t.Fatalf("got %q", pt)
	}
}

func TestOb32TamperDetected(t *testing.T) {
	kc := testKeychain(t)
	ct, _ := EncryptOb32(kc, []byte("siv payload"))
	ct[len(ct)-1] ^= 0xff
	if _, err := DecryptOb32(kc, ct); !oberr.Is(err, oberr.DecryptionFailed) {
		t.Fatalf("expected DecryptionFailed, got %v", err)
	}
}

func TestOb32pRoundTripAndProbabilistic(t *testing.T) {
	kc := testKeychain(t)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		ct, err := EncryptOb32p(kc, []byte("probabilistic siv"))
		if err != nil {
			t.Fatalf("EncryptOb32p: %v", err)
		}
		seen[string(ct)] = true
		pt, err := DecryptOb32p(kc, ct)
		if err != nil {
			t.Fatalf("DecryptOb32p: %v", err)
		}
		if string(pt) != "probabilistic siv" {
			t.Fatalf("got %q", pt)
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct tokens, got %d", len(seen))
	}
}

func TestOb32pPayloadTooShort(t *testing.T) {
	kc := testKeychain(t)
	if _, err := DecryptOb32p(kc, make([]byte, 4)); !oberr.Is(err, oberr.PayloadTooShort) {
		t.Fatalf("expected PayloadTooShort, got %v", err)
	}
}

func TestOb32pNonceSwapDetected(t *testing.T) {
	kc := testKeychain(t)
	a, _ := EncryptOb32p(kc, []byte("payload a"))
	b, _ := EncryptOb32p(kc, []byte("payload b"))
	// Swap a's nonce onto b's sealed body: associated-data binding must
	// cause authentication to fail rather than silently decrypting.
	swapped := append(append([]byte(nil), a[:ob32pNonceSize]...), b[ob32pNonceSize:]...)
	if _, err := DecryptOb32p(kc, swapped); !oberr.Is(err, oberr.DecryptionFailed) {
		t.Fatalf("expected DecryptionFailed on nonce swap, got %v", err)
	}
}
