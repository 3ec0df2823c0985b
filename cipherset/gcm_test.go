package cipherset

import (
	"testing"

	"github.com/go-i2p/oboron/oberr"
)

func TestOb31RoundTripAndDeterministic(t *testing.T) {
	kc := testKeychain(t)
	a, err := EncryptOb31(kc, []byte("aead payload"))
	if err != nil {
		t.Fatalf("EncryptOb31: %v", err)
	}
	b, _ := EncryptOb31(kc, []byte("aead payload"))
	if string(a) != string(b) {
		t.Fatal("ob31 must be deterministic")
	}
	pt, err := DecryptOb31(kc, a)
	if err != nil {
		t.Fatalf("DecryptOb31: %v", err)
	}
	if string(pt) != "aead payload" {
		t.Fatalf("got %q", pt)
	}
}

func TestOb31TamperDetected(t *testing.T) {
	kc := testKeychain(t)
	ct, _ := EncryptOb31(kc, []byte("aead payload"))
	ct[0] ^= 0xff
	if _, err := DecryptOb31(kc, ct); !oberr.Is(err, oberr.DecryptionFailed) {
		t.Fatalf("expected DecryptionFailed, got %v", err)
	}
}

func TestOb31pRoundTripAndProbabilistic(t *testing.T) {
	kc := testKeychain(t)
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		ct, err := EncryptOb31p(kc, []byte("probabilistic aead"))
		if err != nil {
			t.Fatalf("EncryptOb31p: %v", err)
		}
		seen[string(ct)] = true
		pt, err := DecryptOb31p(kc, ct)
		if err != nil {
			t.Fatalf("DecryptOb31p: %v", err)
		}
		if string(pt) != "probabilistic aead" {
			t.Fatalf("got %q", pt)
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct tokens, got %d", len(seen))
	}
}

func TestOb31pPayloadTooShort(t *testing.T) {
	kc := testKeychain(t)
	if _, err := DecryptOb31p(kc, make([]byte, 5)); !oberr.Is(err, oberr.PayloadTooShort) {
		t.Fatalf("expected PayloadTooShort, got %v", err)
	}
}

func TestOb31KeySensitive(t *testing.T) {
	kc1 := testKeychain(t)
	kc2 := testKeychain(t)
	ct, _ := EncryptOb31(kc1, []byte("secret"))
	if _, err := DecryptOb31(kc2, ct); !oberr.Is(err, oberr.DecryptionFailed) {
		t.Fatalf("expected DecryptionFailed under wrong key, got %v", err)
	}
}
