package doc

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/silverdr/inspect/pkg/colors"
)

// RenderOptions controls layout of a document.
type RenderOptions struct {
	// Width is the maximum line width. Values <= 0 with Pretty enabled
	// force break mode for every group.
	Width int
	// Pretty enables line breaking. When false every group renders flat
	// and Width is ignored.
	Pretty bool
	// Colors resolves semantic tags; nil or empty disables styling.
	Colors colors.Scheme
}

// colorPop is an internal sentinel marking the end of a colored region on
// the work stack.
type colorPop struct{}

func (colorPop) isDoc() {}

type frame struct {
	indent int
	flat   bool
	doc    Doc
}

// Render lays out d and returns the final text. The walk is iterative over
// an explicit work stack, so call depth never grows with document size.
func Render(d Doc, opts RenderOptions) string {
	var b strings.Builder
	forceBreak := opts.Pretty && opts.Width <= 0
	colorized := len(opts.Colors) > 0

	stack := []frame{{indent: 0, flat: !opts.Pretty, doc: d}}
	var active []colors.Tag
	col := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := f.doc.(type) {
		case textDoc:
			b.WriteString(n.s)
			col += runewidth.StringWidth(n.s)
		case concatDoc:
			stack = append(stack, frame{f.indent, f.flat, n.right}, frame{f.indent, f.flat, n.left})
		case lineDoc:
			switch {
			case n.style == Literal:
				b.WriteByte('\n')
				col = 0
			case n.style == Hard || !f.flat:
				b.WriteByte('\n')
				b.WriteString(strings.Repeat(" ", f.indent))
				col = f.indent
			default:
				b.WriteByte(' ')
				col++
			}
		case nestDoc:
			stack = append(stack, frame{f.indent + n.indent, f.flat, n.doc})
		case groupDoc:
			flat := true
			if opts.Pretty && !f.flat {
				flat = !forceBreak && fits(opts.Width-col, n.doc)
			}
			stack = append(stack, frame{f.indent, flat, n.doc})
		case colorDoc:
			if !colorized {
				stack = append(stack, frame{f.indent, f.flat, n.doc})
				break
			}
			seq := opts.Colors.Sequence(n.tag)
			if seq == "" {
				stack = append(stack, frame{f.indent, f.flat, n.doc})
				break
			}
			b.WriteString(seq)
			active = append(active, n.tag)
			stack = append(stack, frame{f.indent, f.flat, colorPop{}}, frame{f.indent, f.flat, n.doc})
		case colorPop:
			active = active[:len(active)-1]
			if len(active) > 0 {
				// restore the enclosing color, not the terminal default
				b.WriteString(opts.Colors.Sequence(active[len(active)-1]))
			} else {
				b.WriteString(opts.Colors.ResetSequence())
			}
		}
	}
	return b.String()
}

// fits reports whether d rendered flat stays within rem columns. The
// lookahead is bounded: it stops as soon as the budget is exceeded, treats
// nested groups optimistically as flat and treats any hard or literal line
// as an immediate "does not fit" for the enclosing group.
func fits(rem int, d Doc) bool {
	stack := []Doc{d}
	for len(stack) > 0 {
		if rem < 0 {
			return false
		}
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch n := cur.(type) {
		case textDoc:
			rem -= runewidth.StringWidth(n.s)
		case concatDoc:
			stack = append(stack, n.right, n.left)
		case lineDoc:
			if n.style != Soft {
				return false
			}
			rem--
		case nestDoc:
			stack = append(stack, n.doc)
		case groupDoc:
			stack = append(stack, n.doc)
		case colorDoc:
			stack = append(stack, n.doc)
		}
	}
	// an exact fit at the boundary renders flat
	return rem >= 0
}
