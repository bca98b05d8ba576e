package inspect

import (
	"sync"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/doc"
)

// Unbounded disables a limit entirely.
const Unbounded = -1

// Base selects the rendering radix for integers and byte sequences.
type Base int

const (
	Decimal Base = iota
	Hex
	Octal
	Binary
)

// BinariesMode controls how byte payloads are rendered.
type BinariesMode int

const (
	// BinariesInfer renders printable payloads as quoted strings and
	// everything else as byte sequences.
	BinariesInfer BinariesMode = iota
	// BinariesAsStrings forces quoted-string rendering.
	BinariesAsStrings
	// BinariesAsBinaries forces byte-sequence rendering.
	BinariesAsBinaries
)

// CharlistsMode controls how rune sequences are rendered.
type CharlistsMode int

const (
	// CharlistsInfer renders printable rune sequences as ~c sigils and
	// everything else as integer lists.
	CharlistsInfer CharlistsMode = iota
	// CharlistsAsCharlists forces ~c sigil rendering, escaping runes the
	// sigil cannot show verbatim.
	CharlistsAsCharlists
	// CharlistsAsLists forces integer-list rendering.
	CharlistsAsLists
)

// RenderFunc is a pre-dispatch hook. It returns the document for v and
// true, or declines with false to fall through to the built-in strategies.
type RenderFunc func(v any, cfg *Config) (doc.Doc, bool)

// Inspectable is implemented by values that render themselves. The method
// runs under the safety wrapper: a panic inside it becomes a diagnostic
// document (safe mode) or a decorated error.
type Inspectable interface {
	InspectDoc(cfg *Config) doc.Doc
}

// Config is the immutable option snapshot for one top-level inspect call.
type Config struct {
	// Width is the maximum line width; effective values below 1 force
	// breaking everywhere when Pretty is set.
	Width int
	// Pretty enables width-aware line breaking; off means always flat.
	Pretty bool
	// Limit caps how many elements of a collection are shown.
	// Unbounded disables the cap; 0 shows none.
	Limit int
	// PrintableLimit caps how many characters of a textual literal are
	// shown before the truncation marker.
	PrintableLimit int
	// Base selects the integer radix.
	Base Base
	// Binaries selects byte-payload rendering.
	Binaries BinariesMode
	// Charlists selects rune-sequence rendering.
	Charlists CharlistsMode
	// SyntaxColors maps semantic tags to color specs; nil disables color.
	SyntaxColors colors.Scheme
	// Safe converts renderer failures into diagnostic text instead of
	// returning an error.
	Safe bool
	// Custom is dispatched before any built-in strategy.
	Custom RenderFunc
	// CustomOptions is a free-form pass-through map available to
	// per-type renderers. Renderers extend copies, never this map.
	CustomOptions map[string]any
}

// Option mutates a Config during construction.
type Option func(*Config)

func WithWidth(w int) Option            { return func(c *Config) { c.Width = w } }
func WithPretty(on bool) Option         { return func(c *Config) { c.Pretty = on } }
func WithLimit(n int) Option            { return func(c *Config) { c.Limit = n } }
func WithPrintableLimit(n int) Option   { return func(c *Config) { c.PrintableLimit = n } }
func WithBase(b Base) Option            { return func(c *Config) { c.Base = b } }
func WithBinaries(m BinariesMode) Option { return func(c *Config) { c.Binaries = m } }
func WithCharlists(m CharlistsMode) Option { return func(c *Config) { c.Charlists = m } }
func WithColors(s colors.Scheme) Option { return func(c *Config) { c.SyntaxColors = s } }
func WithSafe(on bool) Option           { return func(c *Config) { c.Safe = on } }
func WithCustom(fn RenderFunc) Option   { return func(c *Config) { c.Custom = fn } }

// WithCustomOption sets one free-form option reachable by renderers.
func WithCustomOption(key string, value any) Option {
	return func(c *Config) {
		if c.CustomOptions == nil {
			c.CustomOptions = make(map[string]any)
		}
		c.CustomOptions[key] = value
	}
}

// Option returns a free-form custom option by key.
func (c *Config) Option(key string) (any, bool) {
	v, ok := c.CustomOptions[key]
	return v, ok
}

// WithOption returns a copy of c whose CustomOptions include key. The
// receiver is left untouched, so nested renderers can thread extra context
// downward without mutating the caller's configuration.
func (c *Config) WithOption(key string, value any) *Config {
	cp := *c
	cp.CustomOptions = make(map[string]any, len(c.CustomOptions)+1)
	for k, v := range c.CustomOptions {
		cp.CustomOptions[k] = v
	}
	cp.CustomOptions[key] = value
	return &cp
}

func baseConfig() Config {
	return Config{
		Width:          80,
		Pretty:         false,
		Limit:          50,
		PrintableLimit: 4096,
		Base:           Decimal,
		Binaries:       BinariesInfer,
		Charlists:      CharlistsInfer,
		Safe:           true,
	}
}

var (
	defaultsMu sync.RWMutex
	defaults   = baseConfig()
)

// Default returns a snapshot of the process-wide default configuration.
func Default() Config {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	cfg := defaults
	if defaults.CustomOptions != nil {
		cfg.CustomOptions = make(map[string]any, len(defaults.CustomOptions))
		for k, v := range defaults.CustomOptions {
			cfg.CustomOptions[k] = v
		}
	}
	return cfg
}

// Configure merges options into the process-wide defaults. Inspect calls
// read one snapshot at call start and are unaffected by later changes.
func Configure(opts ...Option) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	for _, opt := range opts {
		opt(&defaults)
	}
}

// ResetDefaults restores the stock defaults.
func ResetDefaults() {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = baseConfig()
}
