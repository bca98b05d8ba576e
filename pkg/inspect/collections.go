package inspect

import (
	"reflect"
	"sort"

	"github.com/mattn/go-runewidth"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/doc"
)

// truncate applies the element-count limit: it returns how many items to
// show and whether the trailing sentinel is due. The sentinel is an extra
// pseudo-element and never counts against the limit.
func truncate(n, limit int) (shown int, truncated bool) {
	if limit == Unbounded || n <= limit {
		return n, false
	}
	return limit, true
}

// container assembles the standard collection layout: delimiters around
// comma-separated elements, grouped so the whole unit renders flat when it
// fits and otherwise breaks each element onto its own line, indented past
// the opening delimiter.
func container(open, close string, tag colors.Tag, elems []doc.Doc) doc.Doc {
	if len(elems) == 0 {
		return doc.Concat(delim(tag, open), delim(tag, close))
	}
	sep := doc.Concat(doc.Text(","), doc.Line())
	inner := doc.Join(sep, elems...)
	return doc.Group(doc.Concat(
		delim(tag, open),
		doc.Nest(inner, runewidth.StringWidth(open)),
		delim(tag, close),
	))
}

func delim(tag colors.Tag, s string) doc.Doc {
	if tag == "" {
		return doc.Text(s)
	}
	return doc.Colored(tag, doc.Text(s))
}

func (r *renderer) tuple(t Tuple) (doc.Doc, error) {
	shown, truncated := truncate(len(t), r.cfg.Limit)
	elems := make([]doc.Doc, 0, shown+1)
	for i := 0; i < shown; i++ {
		d, err := r.render(t[i])
		if err != nil {
			return nil, err
		}
		elems = append(elems, d)
	}
	if truncated {
		elems = append(elems, doc.Text("..."))
	}
	return container("{", "}", colors.Tuple, elems), nil
}

// cons renders a linked-list chain. An improper chain, one whose terminator
// is not nil, renders its tail after a pipe instead of a comma.
func (r *renderer) cons(c *Cons) (doc.Doc, error) {
	if c == nil {
		return container("[", "]", colors.List, nil), nil
	}

	var heads []doc.Doc
	var tail doc.Doc
	truncated := false
	cur := c
	for {
		if r.cfg.Limit != Unbounded && len(heads) >= r.cfg.Limit {
			truncated = true
			break
		}
		d, err := r.render(cur.Head)
		if err != nil {
			return nil, err
		}
		heads = append(heads, d)

		switch t := cur.Tail.(type) {
		case nil:
		case *Cons:
			cur = t
			continue
		case Cons:
			cur = &t
			continue
		default:
			td, err := r.render(t)
			if err != nil {
				return nil, err
			}
			tail = td
		}
		break
	}

	sep := doc.Concat(doc.Text(","), doc.Line())
	inner := doc.Join(sep, heads...)
	if truncated {
		if len(heads) == 0 {
			inner = doc.Text("...")
		} else {
			inner = doc.Concat(inner, sep, doc.Text("..."))
		}
	} else if tail != nil {
		inner = doc.Concat(inner, doc.Text(" |"), doc.Line(), tail)
	}
	return doc.Group(doc.Concat(
		delim(colors.List, "["),
		doc.Nest(inner, 1),
		delim(colors.List, "]"),
	)), nil
}

// mapDoc renders a keyed association. When every key is an
// identifier-shaped atom the pairs use the key: value form, otherwise
// key => value. Go maps carry no insertion order, so pairs sort by their
// rendered key unless the sort_maps custom option is disabled.
func (r *renderer) mapDoc(rv reflect.Value) (doc.Doc, error) {
	keys := rv.MapKeys()

	keyword := len(keys) > 0
	for _, k := range keys {
		a, ok := concreteAtom(k)
		if !ok || !isIdentifier(string(a)) {
			keyword = false
			break
		}
	}

	// keys are rendered and sorted up front; values only for the entries
	// the limit lets through
	type entry struct {
		sortKey string
		key     reflect.Value
		kd      doc.Doc
	}
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		if keyword {
			a, _ := concreteAtom(k)
			entries = append(entries, entry{sortKey: string(a), key: k})
			continue
		}
		kd, err := r.render(k.Interface())
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{
			sortKey: doc.Render(kd, doc.RenderOptions{}),
			key:     k,
			kd:      kd,
		})
	}

	if r.sortMaps() {
		sort.Slice(entries, func(i, j int) bool { return entries[i].sortKey < entries[j].sortKey })
	}

	shown, truncated := truncate(len(entries), r.cfg.Limit)
	elems := make([]doc.Doc, 0, shown+1)
	for _, e := range entries[:shown] {
		vd, err := r.render(rv.MapIndex(e.key).Interface())
		if err != nil {
			return nil, err
		}
		if keyword {
			elems = append(elems, doc.Concat(doc.Colored(colors.Atom, doc.Text(e.sortKey+": ")), vd))
			continue
		}
		elems = append(elems, doc.Concat(e.kd, doc.Text(" => "), vd))
	}
	if truncated {
		elems = append(elems, doc.Text("..."))
	}
	return container("%{", "}", colors.Map, elems), nil
}

func (r *renderer) sortMaps() bool {
	if v, ok := r.cfg.Option("sort_maps"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return true
}

// concreteAtom unwraps interface keys and reports whether the key is an
// Atom.
func concreteAtom(k reflect.Value) (Atom, bool) {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	if k.Kind() == reflect.String && k.Type() == reflect.TypeOf(Atom("")) {
		return Atom(k.String()), true
	}
	return "", false
}
