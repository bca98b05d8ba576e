package inspect

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/doc"
)

var identifierRe = regexp.MustCompile(`^[a-z_][A-Za-z0-9_]*[?!]?$`)

func isIdentifier(s string) bool {
	return identifierRe.MatchString(s)
}

func (r *renderer) atom(a Atom) doc.Doc {
	s := string(a)
	if isIdentifier(s) {
		return doc.Colored(colors.Atom, doc.Text(":"+s))
	}
	return doc.Colored(colors.Atom, doc.Text(`:"`+escapeString(s, '"')+`"`))
}

func (r *renderer) signed(v int64) doc.Doc {
	return doc.Colored(colors.Number, doc.Text(formatSigned(v, r.cfg.Base)))
}

func formatSigned(v int64, base Base) string {
	mag := uint64(v)
	if v < 0 {
		// the sign precedes the radix prefix: -100 in hex is -0x64
		return "-" + formatMagnitude(-mag, base)
	}
	return formatMagnitude(mag, base)
}

func (r *renderer) unsigned(v uint64) doc.Doc {
	return doc.Colored(colors.Number, doc.Text(formatMagnitude(v, r.cfg.Base)))
}

func formatMagnitude(mag uint64, base Base) string {
	switch base {
	case Hex:
		return "0x" + strings.ToUpper(strconv.FormatUint(mag, 16))
	case Octal:
		return "0o" + strconv.FormatUint(mag, 8)
	case Binary:
		return "0b" + strconv.FormatUint(mag, 2)
	}
	return strconv.FormatUint(mag, 10)
}

// float renders the shortest representation that round-trips, always with a
// decimal point so integral floats stay distinguishable from integers. A
// bare-mantissa exponent form gains the point too: 1e21 renders 1.0e+21.
func (r *renderer) float(f float64, bits int) doc.Doc {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		if !strings.Contains(s[:i], ".") {
			s = s[:i] + ".0" + s[i:]
		}
	} else if !strings.ContainsAny(s, ".IN") {
		s += ".0"
	}
	return doc.Colored(colors.Number, doc.Text(s))
}
