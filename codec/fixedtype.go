package codec

import (
	"sync"

	"github.com/go-i2p/oboron/encoding"
	"github.com/go-i2p/oboron/format"
	"github.com/go-i2p/oboron/keychain"
	"github.com/go-i2p/oboron/scheme"
)

// SchemeTag is a zero-size marker type carrying a Scheme at the type level,
// so FixedT can bake a format into a type signature the way a Rust
// feature-gated enum variant would. The TagOb* types below implement it.
type SchemeTag interface {
	Scheme() scheme.Scheme
}

// EncodingTag is SchemeTag's counterpart for encodings.
type EncodingTag interface {
	Encoding() encoding.Encoding
}

type (
	TagOb01  struct{}
	TagOb21p struct{}
	TagOb31  struct{}
	TagOb31p struct{}
	TagOb32  struct{}
	TagOb32p struct{}
	TagOb70  struct{}
	TagOb71  struct{}
)

func (TagOb01) Scheme() scheme.Scheme   { return scheme.Ob01 }
func (TagOb21p) Scheme() scheme.Scheme  { return scheme.Ob21p }
func (TagOb31) Scheme() scheme.Scheme   { return scheme.Ob31 }
func (TagOb31p) Scheme() scheme.Scheme  { return scheme.Ob31p }
func (TagOb32) Scheme() scheme.Scheme   { return scheme.Ob32 }
func (TagOb32p) Scheme() scheme.Scheme  { return scheme.Ob32p }
func (TagOb70) Scheme() scheme.Scheme   { return scheme.Ob70 }
func (TagOb71) Scheme() scheme.Scheme   { return scheme.Ob71 }

type (
	TagCrockford struct{}
	TagRFC       struct{}
	TagBase64    struct{}
	TagHex       struct{}
)

func (TagCrockford) Encoding() encoding.Encoding { return encoding.Crockford }
func (TagRFC) Encoding() encoding.Encoding       { return encoding.RFC }
func (TagBase64) Encoding() encoding.Encoding    { return encoding.Base64 }
func (TagHex) Encoding() encoding.Encoding       { return encoding.Hex }

// FixedT is a generic wrapper over Fixed that bakes the {Scheme, Encoding}
// pair into the type signature via zero-size marker types (S, E), for
// callers who want the format to be a compile-time property rather than a
// runtime value. Its observable behavior is identical to Fixed for the
// equivalent format; it stores only the Keychain and delegates every
// codec call to a Fixed that fixedRegistry builds once per (Keychain,
// Format) pair and caches.
type FixedT[S SchemeTag, E EncodingTag] struct {
	key keychain.Keychain
}

// NewFixedT builds a FixedT for the given key; S and E supply the format.
func NewFixedT[S SchemeTag, E EncodingTag](key keychain.Keychain) FixedT[S, E] {
	return FixedT[S, E]{key: key}
}

func (f FixedT[S, E]) fixed() Fixed {
	var s S
	var e E
	return fixedRegistry.get(f.key, format.New(s.Scheme(), e.Encoding()))
}

func (f FixedT[S, E]) Key() keychain.Keychain        { return f.key }
func (f FixedT[S, E]) Scheme() scheme.Scheme         { var s S; return s.Scheme() }
func (f FixedT[S, E]) Encoding() encoding.Encoding    { var e E; return e.Encoding() }
func (f FixedT[S, E]) Encode(plaintext string) (string, error) { return f.fixed().Encode(plaintext) }
func (f FixedT[S, E]) Decode(token string) (string, error)     { return f.fixed().Decode(token) }
func (f FixedT[S, E]) DecodeStrict(token string) (string, error) {
	return f.fixed().DecodeStrict(token)
}

// registry caches Fixed values per (key, format) pair so repeated FixedT
// method calls don't reallocate the underlying Fixed on every call.
type registry struct {
	mu    sync.Mutex
	once  sync.Once
	cache map[registryKey]Fixed
}

type registryKey struct {
	key keychain.Keychain
	fmt format.Format
}

var fixedRegistry = &registry{}

func (r *registry) get(key keychain.Keychain, f format.Format) Fixed {
	r.once.Do(func() { r.cache = make(map[registryKey]Fixed) })
	k := registryKey{key: key, fmt: f}
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.cache[k]; ok {
		return v
	}
	v := NewFixed(key, f)
	r.cache[k] = v
	return v
}
