// Package inspect renders arbitrary Go values as human-readable text. It
// dispatches on the value's dynamic type to build an intermediate document,
// then lays the document out against a width budget (see pkg/doc).
//
// Rendering honors element-count and printable-length limits, numeric
// bases, optional ANSI colorization, per-type custom renderers and, in the
// default safe mode, converts renderer failures into diagnostic text
// instead of failing the call.
package inspect

import (
	"github.com/silverdr/inspect/pkg/doc"
)

// Inspect renders v with the process-wide defaults plus opts. Under the
// default safe mode the returned error is always nil: any renderer failure
// is replaced with a diagnostic document. With WithSafe(false) a failure
// propagates as a RENDER_FAILURE error decorated with a description of the
// value that triggered it.
func Inspect(v any, opts ...Option) (string, error) {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return inspectWith(v, cfg)
}

// Sprint renders v, forcing safe mode. It never fails: for any value,
// however broken its custom renderer, the result is readable text.
func Sprint(v any, opts ...Option) string {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Safe = true
	s, _ := inspectWith(v, cfg)
	return s
}

func inspectWith(v any, cfg Config) (string, error) {
	// under safe mode render never fails: the safety wrapper substitutes
	// a diagnostic document at the dispatch point of the failure
	d, err := newRenderer(&cfg).render(v)
	if err != nil {
		return "", decorate(err, v, cfg)
	}
	return doc.Render(d, doc.RenderOptions{
		Width:  cfg.Width,
		Pretty: cfg.Pretty,
		Colors: cfg.SyntaxColors,
	}), nil
}
