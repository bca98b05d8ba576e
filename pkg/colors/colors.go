// Package colors resolves semantic highlight tags to ANSI escape sequences.
//
// Tags classify rendered fragments (atoms, numbers, delimiters...) and are
// used purely for colorization; they never affect layout decisions.
package colors

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Tag is a semantic category attached to a rendered fragment.
type Tag string

const (
	Atom       Tag = "atom"
	String     Tag = "string"
	Number     Tag = "number"
	Char       Tag = "char"
	Charlist   Tag = "charlist"
	Boolean    Tag = "boolean"
	Tuple      Tag = "tuple"
	List       Tag = "list"
	Map        Tag = "map"
	StructName Tag = "struct_name"
	Regex      Tag = "regex"
	Reset      Tag = "reset"
)

// Basic ANSI color specs usable as Scheme values. Any spec termenv can
// resolve works too: "0".."255" or "#rrggbb".
const (
	Black   = "0"
	Red     = "1"
	Green   = "2"
	Yellow  = "3"
	Blue    = "4"
	Magenta = "5"
	Cyan    = "6"
	White   = "7"
)

// Scheme maps semantic tags to color specs. A nil or empty Scheme disables
// colorization entirely.
type Scheme map[Tag]string

// Default returns the stock highlight palette.
func Default() Scheme {
	return Scheme{
		Atom:     Cyan,
		String:   Green,
		Charlist: Yellow,
		Number:   Yellow,
		Boolean:  Magenta,
		Regex:    Red,
	}
}

// Sequence resolves a tag to its SGR prefix. Missing tags resolve to an
// empty string; enclosing color regions stay active in that case.
func (s Scheme) Sequence(tag Tag) string {
	if len(s) == 0 {
		return ""
	}
	spec, ok := s[tag]
	if !ok || spec == "" {
		return ""
	}
	c := termenv.TrueColor.Color(spec)
	if c == nil {
		return ""
	}
	return termenv.CSI + c.Sequence(false) + "m"
}

// ResetSequence returns the sequence emitted when the outermost color region
// is left. A Scheme may override it via the Reset tag; the fallback is the
// terminal SGR reset.
func (s Scheme) ResetSequence() string {
	if len(s) == 0 {
		return ""
	}
	if spec, ok := s[Reset]; ok && spec != "" {
		c := termenv.TrueColor.Color(spec)
		if c != nil {
			return termenv.CSI + c.Sequence(false) + "m"
		}
	}
	return termenv.CSI + termenv.ResetSeq + "m"
}

// Enabled reports whether colorized output should be on by default: stdout
// is a terminal, NO_COLOR is unset and TERM is not dumb.
func Enabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
