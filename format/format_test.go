package format

import (
	"testing"

	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/oberr"
	"github.com/go-i2p/oboron/scheme"
)

func TestParseAndString(t *testing.T) {
	f, err := Parse("ob32:c32")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Scheme != scheme.Ob32 || f.Encoding != encoding.Crockford {
		t.Fatalf("got %+v", f)
	}
	if f.String() != "ob32:c32" {
		t.Fatalf("String() = %q", f.String())
	}
}

func TestParseLegacyFormat(t *testing.T) {
	f, err := Parse("ob00:hex")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Scheme != scheme.Legacy {
		t.Fatalf("got %v", f.Scheme)
	}
}

func TestParseMissingColon(t *testing.T) {
	if _, err := Parse("ob32c32"); !oberr.Is(err, oberr.InvalidFormat) {
		t.Fatalf("expected InvalidFormat, got %v", err)
	}
}

func TestParseUnknownScheme(t *testing.T) {
	if _, err := Parse("ob99:c32"); !oberr.Is(err, oberr.UnknownScheme) {
		t.Fatalf("expected UnknownScheme, got %v", err)
	}
}

func TestParseUnknownEncoding(t *testing.T) {
	if _, err := Parse("ob32:zzz"); !oberr.Is(err, oberr.UnknownEncoding) {
		t.Fatalf("expected UnknownEncoding, got %v", err)
	}
}

func TestParseEmptyParts(t *testing.T) {
	if _, err := Parse(":c32"); !oberr.Is(err, oberr.InvalidFormat) {
		t.Fatalf("expected InvalidFormat, got %v", err)
	}
	if _, err := Parse("ob32:"); !oberr.Is(err, oberr.InvalidFormat) {
		t.Fatalf("expected InvalidFormat, got %v", err)
	}
}
