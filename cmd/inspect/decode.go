package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/beevik/etree"
	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/silverdr/inspect/pkg/errors"
	"github.com/silverdr/inspect/pkg/inspect"
)

// decode reads a document in the given format and returns a generic value
// tree ready for inspection. With keywords enabled, maps whose keys are all
// identifier-shaped render in the key: value form.
func decode(in io.Reader, format string, keywords bool) (any, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecodeFailure, "failed to read input")
	}

	var value any
	switch format {
	case "json":
		err = json.Unmarshal(data, &value)
	case "yaml":
		err = yaml.Unmarshal(data, &value)
	case "toml":
		err = gotoml.Unmarshal(data, &value)
	case "xml":
		value, err = decodeXML(data)
	default:
		return nil, errors.Newf(errors.ErrDecodeFailure, "unknown format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecodeFailure, "failed to decode %s input", format)
	}

	if keywords {
		value = atomizeKeys(value)
	}
	return value, nil
}

// decodeXML flattens an XML tree into nested maps: attributes become @key
// entries, repeated child tags collapse into lists and text-only elements
// become plain strings.
func decodeXML(data []byte) (any, error) {
	d := etree.NewDocument()
	if err := d.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := d.Root()
	if root == nil {
		return nil, errors.New(errors.ErrDecodeFailure, "xml input has no root element")
	}
	return map[string]any{root.Tag: elementValue(root)}, nil
}

func elementValue(e *etree.Element) any {
	m := make(map[string]any)
	for _, a := range e.Attr {
		m["@"+a.Key] = a.Value
	}
	for _, child := range e.ChildElements() {
		v := elementValue(child)
		switch existing := m[child.Tag].(type) {
		case nil:
			m[child.Tag] = v
		case []any:
			m[child.Tag] = append(existing, v)
		default:
			m[child.Tag] = []any{existing, v}
		}
	}
	text := strings.TrimSpace(e.Text())
	if len(m) == 0 {
		return text
	}
	if text != "" {
		m["#text"] = text
	}
	return m
}

// atomizeKeys converts string-keyed maps whose keys are all
// identifier-shaped into atom-keyed maps, recursively.
func atomizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		allIdent := len(t) > 0
		for k := range t {
			if !isIdentifierKey(k) {
				allIdent = false
				break
			}
		}
		if !allIdent {
			out := make(map[string]any, len(t))
			for k, val := range t {
				out[k] = atomizeKeys(val)
			}
			return out
		}
		out := make(map[inspect.Atom]any, len(t))
		for k, val := range t {
			out[inspect.Atom(k)] = atomizeKeys(val)
		}
		return out
	case []any:
		for i, item := range t {
			t[i] = atomizeKeys(item)
		}
		return t
	}
	return v
}

func isIdentifierKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case i > 0 && (r >= '0' && r <= '9' || r >= 'A' && r <= 'Z'):
		case i == len(s)-1 && (r == '?' || r == '!'):
		default:
			return false
		}
	}
	return true
}
