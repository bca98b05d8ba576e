package inspect

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"
	"strconv"
	"strings"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/doc"
	"github.com/silverdr/inspect/pkg/logging"
)

var log = logging.GetLogger("inspect")

// renderer holds the per-call state of one top-level inspect: the config
// snapshot and the set of addresses on the current descent path, used to cut
// genuinely cyclic values.
type renderer struct {
	cfg  *Config
	seen map[uintptr]struct{}
}

func newRenderer(cfg *Config) *renderer {
	return &renderer{cfg: cfg, seen: make(map[uintptr]struct{})}
}

// render dispatches one value. Order: custom hook, Inspectable, helper value
// types, built-in strategies by reflect kind. Custom code runs under panic
// recovery; the failure travels up as an explicit error result.
func (r *renderer) render(v any) (doc.Doc, error) {
	if v == nil {
		return nilDoc(), nil
	}

	if r.cfg.Custom != nil {
		d, handled, err := r.invokeCustom(v)
		if err != nil {
			return r.failed(err, v)
		}
		if handled {
			return d, nil
		}
	}

	if insp, ok := v.(Inspectable); ok {
		d, err := r.invokeInspectable(insp)
		if err != nil {
			return r.failed(err, v)
		}
		return d, nil
	}

	switch t := v.(type) {
	case Atom:
		return r.atom(t), nil
	case Tuple:
		return r.tuple(t)
	case Cons:
		return r.cons(&t)
	case *Cons:
		return r.cons(t)
	case BitString:
		return r.bitstring(t), nil
	case Charlist:
		return r.charlist([]rune(t)), nil
	case *regexp.Regexp:
		return r.regex(t), nil
	}

	return r.value(reflect.ValueOf(v))
}

func (r *renderer) value(rv reflect.Value) (doc.Doc, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return nilDoc(), nil
	case reflect.Bool:
		return doc.Colored(colors.Boolean, doc.Text(strconv.FormatBool(rv.Bool()))), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return r.signed(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return r.unsigned(rv.Uint()), nil
	case reflect.Float32:
		return r.float(rv.Float(), 32), nil
	case reflect.Float64:
		return r.float(rv.Float(), 64), nil
	case reflect.Complex64:
		return doc.Colored(colors.Number, doc.Text(strconv.FormatComplex(rv.Complex(), 'g', -1, 64))), nil
	case reflect.Complex128:
		return doc.Colored(colors.Number, doc.Text(strconv.FormatComplex(rv.Complex(), 'g', -1, 128))), nil
	case reflect.String:
		return r.str(rv.String()), nil
	case reflect.Slice:
		if rv.IsNil() {
			return nilDoc(), nil
		}
		leave, fresh := r.enter(rv)
		if !fresh {
			return cycleDoc(rv.Pointer()), nil
		}
		defer leave()
		return r.sequence(rv)
	case reflect.Array:
		return r.sequence(rv)
	case reflect.Map:
		if rv.IsNil() {
			return nilDoc(), nil
		}
		leave, fresh := r.enter(rv)
		if !fresh {
			return cycleDoc(rv.Pointer()), nil
		}
		defer leave()
		return r.mapDoc(rv)
	case reflect.Struct:
		return r.structDoc(rv)
	case reflect.Ptr:
		if rv.IsNil() {
			return nilDoc(), nil
		}
		leave, fresh := r.enter(rv)
		if !fresh {
			return cycleDoc(rv.Pointer()), nil
		}
		defer leave()
		return r.render(rv.Elem().Interface())
	case reflect.Interface:
		if rv.IsNil() {
			return nilDoc(), nil
		}
		return r.render(rv.Elem().Interface())
	case reflect.Func:
		return r.funcDoc(rv), nil
	case reflect.Chan:
		if rv.IsNil() {
			return nilDoc(), nil
		}
		return doc.Text(fmt.Sprintf("#Chan<0x%x>", rv.Pointer())), nil
	case reflect.UnsafePointer:
		return doc.Text(fmt.Sprintf("#Ref<0x%x>", rv.Pointer())), nil
	}
	// unknown category: generic rendering of the internal representation
	return doc.Text(fmt.Sprintf("#%s<%v>", rv.Type(), rv)), nil
}

// sequence renders a slice or array, with charlist inference for rune
// payloads and byte-sequence handling for byte payloads.
func (r *renderer) sequence(rv reflect.Value) (doc.Doc, error) {
	elem := rv.Type().Elem()
	switch elem.Kind() {
	case reflect.Uint8:
		return r.byteSlice(toBytes(rv)), nil
	case reflect.Int32:
		if elem == reflect.TypeOf(rune(0)) {
			return r.charlist(toRunes(rv)), nil
		}
	}
	return r.list(rv)
}

func (r *renderer) list(rv reflect.Value) (doc.Doc, error) {
	shown, truncated := truncate(rv.Len(), r.cfg.Limit)
	elems := make([]doc.Doc, 0, shown+1)
	for i := 0; i < shown; i++ {
		d, err := r.render(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		elems = append(elems, d)
	}
	if truncated {
		elems = append(elems, doc.Text("..."))
	}
	return container("[", "]", colors.List, elems), nil
}

// enter marks the address of a pointer-like value on the descent path.
// A revisit signals a cycle; the caller renders a placeholder instead of
// descending again.
func (r *renderer) enter(rv reflect.Value) (leave func(), fresh bool) {
	p := rv.Pointer()
	if _, ok := r.seen[p]; ok {
		return nil, false
	}
	r.seen[p] = struct{}{}
	return func() { delete(r.seen, p) }, true
}

func (r *renderer) funcDoc(rv reflect.Value) doc.Doc {
	if rv.IsNil() {
		return nilDoc()
	}
	arity := rv.Type().NumIn()
	pc := rv.Pointer()
	if fn := runtime.FuncForPC(pc); fn != nil {
		name := fn.Name()
		if name != "" && !strings.Contains(name, ".func") {
			if i := strings.LastIndex(name, "/"); i >= 0 {
				name = name[i+1:]
			}
			return doc.Text(fmt.Sprintf("&%s/%d", name, arity))
		}
	}
	return doc.Text(fmt.Sprintf("#Function<0x%x/%d>", pc, arity))
}

// regex renders the literal sigil form when the source round-trips through
// the default delimiter, and a constructor call otherwise.
func (r *renderer) regex(re *regexp.Regexp) doc.Doc {
	if re == nil {
		return nilDoc()
	}
	src := re.String()
	if !strings.Contains(src, "/") {
		return doc.Colored(colors.Regex, doc.Text("~r/"+src+"/"))
	}
	return doc.Colored(colors.Regex, doc.Text(`Regex.compile!("`+escapeString(src, '"')+`")`))
}

func nilDoc() doc.Doc {
	return doc.Colored(colors.Boolean, doc.Text("nil"))
}

func cycleDoc(p uintptr) doc.Doc {
	return doc.Text(fmt.Sprintf("#Cycle<0x%x>", p))
}

func toBytes(rv reflect.Value) []byte {
	if rv.Kind() == reflect.Slice {
		return rv.Bytes()
	}
	b := make([]byte, rv.Len())
	for i := range b {
		b[i] = byte(rv.Index(i).Uint())
	}
	return b
}

func toRunes(rv reflect.Value) []rune {
	rs := make([]rune, rv.Len())
	for i := range rs {
		rs[i] = rune(rv.Index(i).Int())
	}
	return rs
}
