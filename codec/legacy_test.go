package codec

import (
	"testing"

	"github.com/go-i2p/oboron/encoding"
)

func TestLegacyRoundTripAllEncodings(t *testing.T) {
	kc := testKeychain(t)
	for _, e := range encoding.All {
		token, err := EncodeLegacy(kc, "legacy round trip", e)
		if err != nil {
			t.Fatalf("%v: EncodeLegacy: %v", e, err)
		}
		got, err := DecodeLegacy(kc, token, e)
		if err != nil {
			t.Fatalf("%v: DecodeLegacy: %v", e, err)
		}
		if got != "legacy round trip" {
			t.Fatalf("%v: got %q", e, got)
		}
	}
}

func TestReverseStringIsInvolution(t *testing.T) {
	s := "hello, oboron"
	if reverseString(reverseString(s)) != s {
		t.Fatal("reverseString should be its own inverse")
	}
}

func TestRepairRFC32PadsToMultipleOfEight(t *testing.T) {
	for _, in := range []string{"A", "AB", "ABCDEFGH", "ABCDEFGHI"} {
		out := repairRFC32(in)
		if len(out)%8 != 0 {
			t.Fatalf("repairRFC32(%q) = %q, length not a multiple of 8", in, out)
		}
	}
}

func TestReasonableFraction(t *testing.T) {
	if got := reasonableFraction("hello world"); got != 1 {
		t.Fatalf("expected fully reasonable text to score 1, got %v", got)
	}
	if got := reasonableFraction(""); got != 0 {
		t.Fatalf("expected empty string to score 0, got %v", got)
	}
}
