package inspect

import (
	"fmt"
	"reflect"
	"unicode"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/doc"
	"github.com/silverdr/inspect/pkg/errors"
	"github.com/silverdr/inspect/pkg/registry"
)

// DeriveOptions customizes how a registered struct type renders. Field
// names refer to exported Go fields and are validated at registration time:
// a name that does not exist on the type is a configuration error, raised
// immediately and never absorbed by safe mode.
type DeriveOptions struct {
	// Name overrides the displayed type name.
	Name string
	// Only restricts rendering to these fields. Mutually exclusive with
	// Except.
	Only []string
	// Except hides these fields.
	Except []string
	// Optional fields are shown only when their value differs from the
	// corresponding field of Defaults (zero value when Defaults is nil).
	Optional []string
	// Order renders these fields first, in this order; remaining selected
	// fields follow in declaration order.
	Order []string
	// Defaults is a prototype value supplying Optional defaults.
	Defaults any
}

type deriveSpec struct {
	opts   DeriveOptions
	fields []reflect.StructField
}

var deriveRegistry = registry.New[*deriveSpec]()

// typeKey names a struct type uniquely enough for the registry: the package
// path disambiguates same-named types, anonymous structs fall back to their
// full signature.
func typeKey(t reflect.Type) string {
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}

// Register installs a derive spec for struct type T. It fails fast with a
// CONFIG_INVALID error on any bad field specification; rendering never
// re-validates.
func Register[T any](opts DeriveOptions) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return errors.Newf(errors.ErrConfigInvalid, "derive target %s is not a struct", t)
	}
	fields := exportedFields(t)
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Name] = true
	}

	if len(opts.Only) > 0 && len(opts.Except) > 0 {
		return errors.Newf(errors.ErrConfigInvalid, "derive spec for %s sets both only and except", t)
	}
	for listName, list := range map[string][]string{
		"only": opts.Only, "except": opts.Except, "optional": opts.Optional, "order": opts.Order,
	} {
		for _, name := range list {
			if !known[name] {
				return errors.Newf(errors.ErrConfigInvalid,
					"unknown field %q in %s for %s", name, listName, t)
			}
		}
	}
	if opts.Defaults != nil && reflect.TypeOf(opts.Defaults) != t {
		return errors.Newf(errors.ErrConfigInvalid,
			"defaults for %s has type %T", t, opts.Defaults)
	}

	if deriveRegistry.Has(typeKey(t)) {
		return errors.Newf(errors.ErrAlreadyExists, "derive spec for %s is already registered", t)
	}
	return deriveRegistry.Register(typeKey(t), &deriveSpec{opts: opts, fields: fields})
}

// MustRegister registers a derive spec and panics if registration fails.
// Useful in init functions where a bad spec is a programming error.
func MustRegister[T any](opts DeriveOptions) {
	if err := Register[T](opts); err != nil {
		panic(fmt.Sprintf("failed to register derive spec: %v", err))
	}
}

// Unregister removes the derive spec for T, if any.
func Unregister[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	_ = deriveRegistry.Remove(typeKey(t))
}

func lookupSpec(t reflect.Type) *deriveSpec {
	spec, err := deriveRegistry.Get(typeKey(t))
	if err != nil {
		return nil
	}
	return spec
}

func exportedFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.IsExported() {
			fields = append(fields, f)
		}
	}
	return fields
}

// structDoc renders a tagged composite as Name{field: value, ...}. A
// selection that omits declared fields switches to the Name<...> form with
// a trailing sentinel to signal partial display.
func (r *renderer) structDoc(rv reflect.Value) (doc.Doc, error) {
	t := rv.Type()
	fields := exportedFields(t)
	spec := lookupSpec(t)

	displayName := t.Name()
	selected := fields
	partial := false

	if spec != nil {
		if spec.opts.Name != "" {
			displayName = spec.opts.Name
		}
		selected, partial = spec.selectFields()
	}

	optional := make(map[string]bool)
	var defaults reflect.Value
	if spec != nil && len(spec.opts.Optional) > 0 {
		for _, name := range spec.opts.Optional {
			optional[name] = true
		}
		if spec.opts.Defaults != nil {
			defaults = reflect.ValueOf(spec.opts.Defaults)
		} else {
			defaults = reflect.New(t).Elem()
		}
	}

	var pairs []doc.Doc
	for _, f := range selected {
		fv := rv.FieldByIndex(f.Index)
		if optional[f.Name] {
			dv := defaults.FieldByIndex(f.Index)
			if reflect.DeepEqual(fv.Interface(), dv.Interface()) {
				continue
			}
		}
		vd, err := r.render(fv.Interface())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, doc.Concat(
			doc.Colored(colors.Atom, doc.Text(fieldLabel(f.Name)+": ")),
			vd,
		))
	}

	shown, truncated := truncate(len(pairs), r.cfg.Limit)
	elems := pairs[:shown]
	if truncated || partial {
		elems = append(elems, doc.Text("..."))
	}

	open, close := "{", "}"
	if partial {
		open, close = "<", ">"
	}
	body := container(open, close, colors.Map, elems)
	if displayName == "" {
		return body, nil
	}
	return doc.Concat(doc.Colored(colors.StructName, doc.Text(displayName)), body), nil
}

// selectFields applies Only/Except and the Order override. partial reports
// whether the selection omits at least one declared field.
func (s *deriveSpec) selectFields() (selected []reflect.StructField, partial bool) {
	byName := make(map[string]reflect.StructField, len(s.fields))
	for _, f := range s.fields {
		byName[f.Name] = f
	}

	keep := func(name string) bool { return true }
	switch {
	case len(s.opts.Only) > 0:
		only := make(map[string]bool, len(s.opts.Only))
		for _, n := range s.opts.Only {
			only[n] = true
		}
		keep = func(name string) bool { return only[name] }
	case len(s.opts.Except) > 0:
		except := make(map[string]bool, len(s.opts.Except))
		for _, n := range s.opts.Except {
			except[n] = true
		}
		keep = func(name string) bool { return !except[name] }
	}

	taken := make(map[string]bool)
	for _, name := range s.opts.Order {
		if keep(name) && !taken[name] {
			selected = append(selected, byName[name])
			taken[name] = true
		}
	}
	for _, f := range s.fields {
		if keep(f.Name) && !taken[f.Name] {
			selected = append(selected, f)
			taken[f.Name] = true
		}
	}
	return selected, len(selected) < len(s.fields)
}

// fieldLabel converts an exported Go field name to the lower snake_case
// label used in rendered output: UserName becomes user_name.
func fieldLabel(name string) string {
	var out []rune
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if i > 0 && (prevLower || (nextLower && unicode.IsUpper(runes[i-1]))) {
				out = append(out, '_')
			}
			out = append(out, unicode.ToLower(r))
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
