// Package doc implements a small document algebra for width-aware pretty
// printing, in the style of Wadler's "A prettier printer".
//
// A Doc describes what could be printed, with explicit break points. Building
// a Doc is pure: combinators only assemble structure and never look at the
// target width or mode. Render turns a Doc into final text.
package doc

import (
	"github.com/silverdr/inspect/pkg/colors"
)

// LineStyle controls how a line break behaves during layout.
type LineStyle int

const (
	// Soft renders as a single space in flat mode and as a newline plus
	// indentation in break mode.
	Soft LineStyle = iota
	// Hard always renders as a newline plus indentation.
	Hard
	// Literal always renders as a newline and does not re-apply
	// indentation.
	Literal
)

// Doc is an immutable document tree node.
type Doc interface {
	isDoc()
}

type textDoc struct {
	s string
}

type concatDoc struct {
	left  Doc
	right Doc
}

type lineDoc struct {
	style LineStyle
}

type nestDoc struct {
	doc    Doc
	indent int
}

type groupDoc struct {
	doc Doc
}

type colorDoc struct {
	doc Doc
	tag colors.Tag
}

func (textDoc) isDoc()   {}
func (concatDoc) isDoc() {}
func (lineDoc) isDoc()   {}
func (nestDoc) isDoc()   {}
func (groupDoc) isDoc()  {}
func (colorDoc) isDoc()  {}

// Empty is the zero-width document.
var Empty Doc = textDoc{}

// Text returns a document holding a literal string. The string must not
// contain newlines; use Line variants for breaks.
func Text(s string) Doc {
	return textDoc{s: s}
}

// Concat joins documents left to right. Concatenation is associative.
func Concat(docs ...Doc) Doc {
	switch len(docs) {
	case 0:
		return Empty
	case 1:
		return docs[0]
	}
	d := docs[len(docs)-1]
	for i := len(docs) - 2; i >= 0; i-- {
		d = concatDoc{left: docs[i], right: d}
	}
	return d
}

// Line returns a soft break: a space when flat, a newline when broken.
func Line() Doc {
	return lineDoc{style: Soft}
}

// HardLine returns a break that is always a newline.
func HardLine() Doc {
	return lineDoc{style: Hard}
}

// LiteralLine returns a newline that skips indentation re-application,
// for embedding pre-formatted text.
func LiteralLine() Doc {
	return lineDoc{style: Literal}
}

// Nest shifts the indentation of line breaks inside d by indent columns.
// Nesting is cumulative: Nest(Nest(d, a), b) is equivalent to Nest(d, a+b).
func Nest(d Doc, indent int) Doc {
	if indent == 0 {
		return d
	}
	if nd, ok := d.(nestDoc); ok {
		return nestDoc{doc: nd.doc, indent: nd.indent + indent}
	}
	return nestDoc{doc: d, indent: indent}
}

// Group marks d as a layout unit: it renders entirely flat when it fits in
// the remaining width, otherwise entirely broken.
func Group(d Doc) Doc {
	return groupDoc{doc: d}
}

// Colored annotates d with a semantic highlight tag. Tags are resolved at
// render time and have no effect on layout.
func Colored(tag colors.Tag, d Doc) Doc {
	return colorDoc{doc: d, tag: tag}
}

// Join interleaves sep between the given documents.
func Join(sep Doc, docs ...Doc) Doc {
	switch len(docs) {
	case 0:
		return Empty
	case 1:
		return docs[0]
	}
	joined := make([]Doc, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, d)
	}
	return Concat(joined...)
}
