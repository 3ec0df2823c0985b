// Package scheme enumerates oboron's cryptographic (and testing) schemes
// and their tag-byte / determinism / reversal properties.
//
// The tag byte's bit layout is deliberate: the three top bits group
// schemes into tiers (legacy-adjacent CBC, AEAD, testing), the next four
// bits index the scheme within its tier, and the bottom bit marks the
// probabilistic variant of a deterministic/probabilistic pair. Nothing in
// this package relies on that layout beyond the fixed constants below —
// it exists for the token's on-wire entropy, not for program logic.
package scheme

import "github.com/go-i2p/oboron/oberr"

// Scheme identifies a cryptographic or testing transformation.
type Scheme byte

const (
	Ob01  Scheme = 0x02
	Ob21p Scheme = 0x23
	Ob31  Scheme = 0x62
	Ob31p Scheme = 0x63
	Ob32  Scheme = 0x64
	Ob32p Scheme = 0x65
	Ob70  Scheme = 0xE0
	Ob71  Scheme = 0xE2
)

// Legacy is a sentinel scheme with no tag byte. It is never dispatched
// through the tag table and only appears as an explicit fallback (§4.9/§4.7
// of the spec); it must never be compared against a tag byte extracted
// from a token.
const Legacy Scheme = 0x00

// names holds the short string form of every tag-bearing scheme, plus
// Legacy's "ob00" for display and format-string parsing purposes only.
var names = map[Scheme]string{
	Ob01:   "ob01",
	Ob21p:  "ob21p",
	Ob31:   "ob31",
	Ob31p:  "ob31p",
	Ob32:   "ob32",
	Ob32p:  "ob32p",
	Ob70:   "ob70",
	Ob71:   "ob71",
	Legacy: "ob00",
}

var byName = func() map[string]Scheme {
	m := make(map[string]Scheme, len(names))
	for s, n := range names {
		m[n] = s
	}
	return m
}()

// deterministic records which schemes produce the same output for the
// same (key, plaintext). Every scheme, Legacy included, has an explicit
// entry.
var deterministic = map[Scheme]bool{
	Ob01:  true,
	Ob21p: false,
	Ob31:  true,
	Ob31p: false,
	Ob32:  true,
	Ob32p: false,
	Ob70:  true,
	Ob71:  true,
	Legacy: true,
}

// Reversed is the fixed set of schemes whose assembled {payload, tag}
// buffer is byte-reversed before outer text encoding. This is data, not
// per-scheme behavior, per the design note that a rewrite should treat
// reversal as a constant lookup rather than a method distributed across
// scheme types.
var Reversed = map[Scheme]bool{
	Ob01:  true,
	Ob21p: true,
}

// All lists every tag-bearing scheme in a stable order, used for
// autodetection cascades and test enumeration. Legacy is intentionally
// excluded: it carries no tag byte and is never a dispatch target.
var All = []Scheme{Ob01, Ob21p, Ob31, Ob31p, Ob32, Ob32p, Ob70, Ob71}

// String returns the scheme's short name (e.g. "ob32").
func (s Scheme) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "unknown"
}

// Byte returns the scheme's tail tag byte. It must not be called on Legacy.
func (s Scheme) Byte() byte { return byte(s) }

// Deterministic reports whether the scheme is deterministic.
func (s Scheme) Deterministic() bool { return deterministic[s] }

// Probabilistic reports whether the scheme is probabilistic.
func (s Scheme) Probabilistic() bool { return !s.Deterministic() }

// IsReversed reports whether this scheme's payload is byte-reversed before
// outer encoding.
func (s Scheme) IsReversed() bool { return Reversed[s] }

// Parse looks up a scheme by its short name (e.g. "ob01", "ob00").
func Parse(s string) (Scheme, error) {
	v, ok := byName[s]
	if !ok {
		return 0, oberr.New(oberr.UnknownScheme)
	}
	return v, nil
}

// FromTag looks up the tag-bearing scheme with the given tail byte. The
// bool result is false for any byte that is not a known scheme's tag,
// including 0x00 (Legacy's sentinel, which never appears as a real tag).
func FromTag(tag byte) (Scheme, bool) {
	s := Scheme(tag)
	if s == Legacy {
		return 0, false
	}
	if _, ok := names[s]; !ok {
		return 0, false
	}
	return s, true
}
