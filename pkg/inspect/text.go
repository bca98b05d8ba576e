package inspect

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/doc"
)

// str renders a textual value. Printable content becomes a quoted literal;
// non-printable content, a forced binaries mode or a non-decimal base all
// fall back to the byte-sequence form.
func (r *renderer) str(s string) doc.Doc {
	switch {
	case r.cfg.Binaries == BinariesAsBinaries || r.cfg.Base != Decimal:
		return r.byteSeq([]byte(s), 0)
	case r.cfg.Binaries == BinariesAsStrings || printable(s):
		return r.quoted(s)
	}
	return r.byteSeq([]byte(s), 0)
}

// byteSlice renders a []byte payload, inferring string form when allowed.
func (r *renderer) byteSlice(b []byte) doc.Doc {
	switch {
	case r.cfg.Binaries == BinariesAsStrings:
		return r.quoted(string(b))
	case r.cfg.Binaries == BinariesInfer && r.cfg.Base == Decimal && printable(string(b)):
		return r.quoted(string(b))
	}
	return r.byteSeq(b, 0)
}

// quoted renders a double-quoted literal, honoring PrintableLimit. A
// truncated literal keeps its closing quote and appends the concatenation
// marker, which is deliberately distinct from the ... element sentinel.
func (r *renderer) quoted(s string) doc.Doc {
	limit := r.cfg.PrintableLimit
	if limit != Unbounded && utf8.RuneCountInString(s) > limit {
		prefix := string([]rune(s)[:limit])
		return doc.Concat(
			doc.Colored(colors.String, doc.Text(`"`+escapeString(prefix, '"')+`"`)),
			doc.Text(" <> ..."),
		)
	}
	return doc.Colored(colors.String, doc.Text(`"`+escapeString(s, '"')+`"`))
}

// byteSeq renders a bracketed byte sequence in the configured base. A
// positive partialBits annotates the final unit with its bit size.
func (r *renderer) byteSeq(b []byte, partialBits int) doc.Doc {
	shown, truncated := truncate(len(b), r.cfg.Limit)
	elems := make([]doc.Doc, 0, shown+1)
	for i := 0; i < shown; i++ {
		txt := formatMagnitude(uint64(b[i]), r.cfg.Base)
		if partialBits > 0 && i == len(b)-1 {
			txt += "::size(" + strconv.Itoa(partialBits) + ")"
		}
		elems = append(elems, doc.Colored(colors.Number, doc.Text(txt)))
	}
	if truncated {
		elems = append(elems, doc.Text("..."))
	}
	return container("<<", ">>", "", elems)
}

func (r *renderer) bitstring(bs BitString) doc.Doc {
	partial := bs.Bits % 8
	n := bs.Bits / 8
	if partial > 0 {
		n++
	}
	b := bs.Bytes
	if n < len(b) {
		b = b[:n]
	}
	return r.byteSeq(b, partial)
}

// charlist renders a rune sequence, preferring the ~c sigil when the
// configuration and the payload allow it. Sigil truncation reuses the
// textual rules but with the list concatenation marker.
func (r *renderer) charlist(rs []rune) doc.Doc {
	asText := false
	switch r.cfg.Charlists {
	case CharlistsAsLists:
	case CharlistsAsCharlists:
		asText = true
	default:
		asText = printable(string(rs))
	}
	if !asText {
		shown, truncated := truncate(len(rs), r.cfg.Limit)
		elems := make([]doc.Doc, 0, shown+1)
		for i := 0; i < shown; i++ {
			elems = append(elems, doc.Colored(colors.Char, doc.Text(formatSigned(int64(rs[i]), r.cfg.Base))))
		}
		if truncated {
			elems = append(elems, doc.Text("..."))
		}
		return container("[", "]", colors.List, elems)
	}

	limit := r.cfg.PrintableLimit
	if limit != Unbounded && len(rs) > limit {
		prefix := string(rs[:limit])
		return doc.Concat(
			doc.Colored(colors.Charlist, doc.Text(`~c"`+escapeString(prefix, '"')+`"`)),
			doc.Text(" ++ ..."),
		)
	}
	return doc.Colored(colors.Charlist, doc.Text(`~c"`+escapeString(string(rs), '"')+`"`))
}

// printable reports whether s can be shown as a quoted literal: valid
// UTF-8 with control characters restricted to the allowed escape set.
func printable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if !printableRune(r) {
			return false
		}
	}
	return true
}

func printableRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '\v', '\b', '\f', '\a', '\x1b':
		return true
	}
	return unicode.IsPrint(r)
}

// escapeString escapes backslash, the quote character and control
// characters for embedding inside a quoted literal.
func escapeString(s string, quote rune) string {
	var b []byte
	for _, r := range s {
		switch r {
		case '\\':
			b = append(b, `\\`...)
		case quote:
			b = append(b, '\\')
			b = utf8.AppendRune(b, quote)
		case '\n':
			b = append(b, `\n`...)
		case '\r':
			b = append(b, `\r`...)
		case '\t':
			b = append(b, `\t`...)
		case '\v':
			b = append(b, `\v`...)
		case '\b':
			b = append(b, `\b`...)
		case '\f':
			b = append(b, `\f`...)
		case '\a':
			b = append(b, `\a`...)
		case '\x1b':
			b = append(b, `\e`...)
		default:
			if unicode.IsPrint(r) {
				b = utf8.AppendRune(b, r)
			} else if r < 0x100 {
				b = append(b, fmt.Sprintf(`\x%02X`, r)...)
			} else {
				b = append(b, fmt.Sprintf(`\u{%X}`, r)...)
			}
		}
	}
	return string(b)
}
