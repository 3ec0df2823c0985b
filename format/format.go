// Package format combines a scheme.Scheme and an encoding.Encoding into
// the {Scheme, Encoding} pair oboron calls a Format.
package format

import (
	"strings"

	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/oberr"
	"github.com/go-i2p/oboron/scheme"
)

// Format is the value type {Scheme, Encoding} that the encode/decode
// pipeline is parameterized on.
type Format struct {
	Scheme   scheme.Scheme
	Encoding encoding.Encoding
}

// New builds a Format from a scheme and encoding directly.
func New(s scheme.Scheme, e encoding.Encoding) Format {
	return Format{Scheme: s, Encoding: e}
}

// String renders the format in "scheme:enc" form.
func (f Format) String() string {
	return f.Scheme.String() + ":" + f.Encoding.ShortName()
}

// schemeNames is the set of scheme short names Parse accepts, including
// "ob00" for the legacy scheme. Parse looks the scheme half up here and
// the encoding half up separately via encoding.Parse, so every
// {scheme, encoding} combination is accepted.
var schemeNames = func() map[string]scheme.Scheme {
	m := make(map[string]scheme.Scheme, len(scheme.All)+1)
	for _, s := range scheme.All {
		m[s.String()] = s
	}
	m[scheme.Legacy.String()] = scheme.Legacy
	return m
}()

// Parse parses a "scheme:enc" string, e.g. "ob32:c32". No whitespace or
// casing tolerance is applied; the caller must pass the exact short form.
// Unknown scheme names and unknown encoding names are reported with their
// own distinct error kinds so a malformed "--format" flag can be diagnosed
// precisely.
func Parse(s string) (Format, error) {
	schemePart, encPart, ok := strings.Cut(s, ":")
	if !ok || schemePart == "" || encPart == "" {
		return Format{}, oberr.New(oberr.InvalidFormat)
	}
	sc, ok := schemeNames[schemePart]
	if !ok {
		return Format{}, oberr.New(oberr.UnknownScheme)
	}
	enc, err := encoding.Parse(encPart)
	if err != nil {
		return Format{}, err
	}
	return Format{Scheme: sc, Encoding: enc}, nil
}
