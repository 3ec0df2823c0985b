package encoding

import (
	"bytes"
	"testing"

	"github.com/go-i2p/oboron/oberr"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		[]byte("a"),
		[]byte("hello, oboron"),
		{0x00, 0x01, 0x02, 0xff, 0xfe},
		bytes.Repeat([]byte{0xAB}, 33),
	}
	for _, e := range All {
		for _, p := range payloads {
			s := e.Encode(p)
			got, err := e.Decode(s)
			if err != nil {
				t.Fatalf("%v: Decode(Encode(%x)): %v", e, p, err)
			}
			if !bytes.Equal(got, p) {
				t.Fatalf("%v: round trip mismatch: got %x want %x", e, got, p)
			}
		}
	}
}

func TestParseShortAndLongNames(t *testing.T) {
	cases := map[string]Encoding{
		"c32":             Crockford,
		"base32crockford": Crockford,
		"b32":             RFC,
		"base32rfc":       RFC,
		"b64":             Base64,
		"base64":          Base64,
		"hex":             Hex,
	}
	for name, want := range cases {
		got, err := Parse(name)
		if err != nil {
			t.Fatalf("Parse(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("Parse(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	if _, err := Parse("base99"); err == nil {
		t.Fatal("expected error for unknown encoding name")
	}
}

func TestCrockfordIsStrictLowercase(t *testing.T) {
	if _, err := Crockford.Decode("ABCD"); err == nil {
		t.Fatal("Crockford.Decode should reject uppercase input")
	}
}

func TestRFCRejectsLowercase(t *testing.T) {
	if _, err := RFC.Decode("abcd"); err == nil {
		t.Fatal("RFC.Decode should reject lowercase input")
	}
}

func TestDistinctErrorKinds(t *testing.T) {
	if _, err := Crockford.Decode("!!!!"); !oberr.Is(err, oberr.InvalidBase32Crockford) {
		t.Fatalf("expected InvalidBase32Crockford, got %v", err)
	}
	if _, err := Hex.Decode("zz"); !oberr.Is(err, oberr.InvalidHexEncoding) {
		t.Fatalf("expected InvalidHexEncoding, got %v", err)
	}
}
