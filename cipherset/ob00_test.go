package cipherset

import "testing"

func TestOb00RoundTrip(t *testing.T) {
	kc := testKeychain(t)
	ct, err := EncryptOb00(kc, []byte("legacy payload"))
	if err != nil {
		t.Fatalf("EncryptOb00: %v", err)
	}
	pt, err := DecryptOb00(kc, ct)
	if err != nil {
		t.Fatalf("DecryptOb00: %v", err)
	}
	if string(pt) != "legacy payload" {
		t.Fatalf("got %q", pt)
	}
}

func TestOb00DiffersFromOb01Padding(t *testing.T) {
	kc := testKeychain(t)
	legacy, _ := EncryptOb00(kc, []byte("x"))
	primary, _ := EncryptOb01(kc, []byte("x"))
	if string(legacy) == string(primary) {
		t.Fatal("ob00 and ob01 must differ: different padding bytes")
	}
}
