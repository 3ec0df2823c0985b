package keychain

import (
	"testing"

	"github.com/go-i2p/oboron/oberr"
)

func TestGenerateThenHexBase64RoundTrip(t *testing.T) {
	kc, err := Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	fromHex, err := FromHex(kc.Hex())
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if fromHex.Bytes() != kc.Bytes() {
		t.Fatal("hex round trip mismatch")
	}

	fromB64, err := FromBase64(kc.Base64())
	if err != nil {
		t.Fatalf("FromBase64: %v", err)
	}
	if fromB64.Bytes() != kc.Bytes() {
		t.Fatal("base64 round trip mismatch")
	}
}

func TestFromSliceRejectsWrongLength(t *testing.T) {
	if _, err := FromSlice(make([]byte, 10)); !oberr.Is(err, oberr.InvalidKeyLength) {
		t.Fatalf("expected InvalidKeyLength, got %v", err)
	}
}

func TestFromHexRejectsGarbage(t *testing.T) {
	if _, err := FromHex("not hex"); !oberr.Is(err, oberr.InvalidHex) {
		t.Fatalf("expected InvalidHex, got %v", err)
	}
}

func TestFromBase64RejectsGarbage(t *testing.T) {
	if _, err := FromBase64("!!!not base64!!!"); !oberr.Is(err, oberr.InvalidBase64) {
		t.Fatalf("expected InvalidBase64, got %v", err)
	}
}

func TestSubViewsAreFixedSlices(t *testing.T) {
	var raw [KeySize]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	kc := FromBytes(raw)

	if cbcKey := kc.CBCKey(); cbcKey != [16]byte(raw[0:16]) {
		t.Fatal("CBCKey mismatch")
	}
	if cbcIV := kc.CBCIV(); cbcIV != [16]byte(raw[16:32]) {
		t.Fatal("CBCIV mismatch")
	}
	if gcmKey := kc.GCMSIVKey(); gcmKey != [32]byte(raw[32:64]) {
		t.Fatal("GCMSIVKey mismatch")
	}
	if sivKey := kc.SIVKey(); sivKey != raw {
		t.Fatal("SIVKey mismatch")
	}
}

func TestGenerateBase64HasNoDashOrUnderscore(t *testing.T) {
	s, err := GenerateBase64()
	if err != nil {
		t.Fatalf("GenerateBase64: %v", err)
	}
	if containsAny(s, "-_") {
		t.Fatalf("GenerateBase64 result contains '-' or '_': %q", s)
	}
	if len(s) != 86 {
		t.Fatalf("expected 86-character base64 key, got %d", len(s))
	}
}
