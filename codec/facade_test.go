package codec

import "testing"

func TestCodecEncodeDecode(t *testing.T) {
	kc := testKeychain(t)
	c := New(kc)
	token, err := c.Encode("façade payload", "ob32:c32")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(token, "ob32:c32")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "façade payload" {
		t.Fatalf("got %q", got)
	}
}

func TestCodecAutodecode(t *testing.T) {
	kc := testKeychain(t)
	c := New(kc)
	token, err := c.Encode("autodecode me", "ob31p:b64")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Autodecode(token)
	if err != nil {
		t.Fatalf("Autodecode: %v", err)
	}
	if got != "autodecode me" {
		t.Fatalf("got %q", got)
	}
}

func TestNewWithLegacyEnablesFallback(t *testing.T) {
	kc := testKeychain(t)
	plain := New(kc)
	legacy := NewWithLegacy(kc)
	if plain.LegacyEnabled() {
		t.Fatal("New should not enable legacy fallback")
	}
	if !legacy.LegacyEnabled() {
		t.Fatal("NewWithLegacy should enable legacy fallback")
	}
}
