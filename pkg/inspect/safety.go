package inspect

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/silverdr/inspect/pkg/doc"
	"github.com/silverdr/inspect/pkg/errors"
)

// invokeCustom runs the pre-dispatch hook under panic recovery. A panic
// becomes an explicit RENDER_FAILURE result instead of unwinding the call.
func (r *renderer) invokeCustom(v any) (d doc.Doc, handled bool, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = renderPanic(p, v)
		}
	}()
	d, handled = r.cfg.Custom(v, r.cfg)
	return d, handled, err
}

// invokeInspectable runs a value's own renderer under panic recovery.
func (r *renderer) invokeInspectable(v Inspectable) (d doc.Doc, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = renderPanic(p, v)
		}
	}()
	return v.InspectDoc(r.cfg), err
}

// failed resolves a renderer failure at the dispatch point where it
// happened. Safe mode substitutes the diagnostic document inline, so
// sibling renderings already completed are untouched; unsafe mode threads
// the error up to the caller.
func (r *renderer) failed(err error, v any) (doc.Doc, error) {
	if r.cfg.Safe {
		return diagnostic(err, v, *r.cfg), nil
	}
	return nil, err
}

// renderPanic converts a recovered panic into a coded error carrying the
// dispatch frame closest to the failure, not the wrapper's own frame.
func renderPanic(p any, v any) *errors.InspectError {
	var e *errors.InspectError
	switch pv := p.(type) {
	case error:
		e = errors.Wrapf(pv, errors.ErrRenderFailure, "renderer failed for %T", v)
	default:
		e = errors.Newf(errors.ErrRenderFailure, "renderer failed for %T: %v", v, pv)
	}
	frame := closestFrame(debug.Stack())
	e.WithDetail("stack", frame)
	log.Debug().Str("frame", frame).Str("type", fmt.Sprintf("%T", v)).Msg("renderer panicked")
	return e
}

// closestFrame picks the first stack frame belonging to the failing
// renderer, skipping the runtime's panic machinery and our own recovery
// frames.
func closestFrame(stack []byte) string {
	lines := strings.Split(string(stack), "\n")
	for i := 0; i+1 < len(lines); i++ {
		fn := lines[i]
		if strings.HasPrefix(fn, "goroutine ") || strings.HasPrefix(fn, "\t") {
			continue
		}
		if strings.HasPrefix(fn, "runtime") || strings.HasPrefix(fn, "panic") {
			continue
		}
		if strings.Contains(fn, "runtime/debug.Stack") ||
			strings.Contains(fn, "/pkg/inspect.renderPanic") ||
			strings.Contains(fn, "/pkg/inspect.closestFrame") ||
			strings.Contains(fn, "/pkg/inspect.(*renderer).invoke") {
			continue
		}
		loc := strings.TrimSpace(lines[i+1])
		return fmt.Sprintf("%s at %s", fn, loc)
	}
	return ""
}

// diagnostic builds the safe-mode replacement document: the failure's code
// and message, plus a best-effort rendering of the offending value.
// Colorization is off on this path no matter what the caller configured.
func diagnostic(err error, v any, cfg Config) doc.Doc {
	desc := describe(v, cfg)
	return doc.Group(doc.Concat(
		doc.Text("#Inspect.Error<"),
		doc.Nest(doc.Concat(
			doc.Line(),
			doc.Text(err.Error()),
			doc.Line(),
			doc.Text("while inspecting:"),
			doc.Line(),
			doc.Text(desc),
		), 2),
		doc.Line(),
		doc.Text(">"),
	))
}

// describe re-renders v without safe mode and without custom renderers,
// bounded by one retry. It never panics: any failure degrades to an opaque
// placeholder.
func describe(v any, cfg Config) (s string) {
	defer func() {
		if recover() != nil {
			s = opaque(v)
		}
	}()
	retry := cfg
	retry.Safe = false
	retry.Custom = nil
	retry.SyntaxColors = nil
	retry.Pretty = false

	d, err := newRenderer(&retry).render(v)
	if err != nil {
		return opaque(v)
	}
	return doc.Render(d, doc.RenderOptions{Width: retry.Width})
}

func opaque(v any) string {
	return fmt.Sprintf("#opaque<%T>", v)
}

// decorate wraps a render failure for unsafe-mode propagation, embedding
// the partial value description next to the original failure.
func decorate(err error, v any, cfg Config) error {
	desc := describe(v, cfg)
	wrapped := errors.Wrapf(err, errors.ErrRenderFailure, "got an error while inspecting %s", desc)
	wrapped.WithDetail("value", desc)
	if orig, ok := errors.AsInspectError(err); ok {
		if frame := orig.Detail("stack"); frame != nil {
			wrapped.WithDetail("stack", frame)
		}
	}
	return wrapped
}
