// Package config loads CLI defaults for the inspect tool: embedded
// defaults, then the user file under the XDG config directory, then
// INSPECT_* environment variables, each layer overriding the previous one.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/silverdr/inspect/pkg/colors"
	"github.com/silverdr/inspect/pkg/errors"
	"github.com/silverdr/inspect/pkg/inspect"
)

//go:embed defaults.toml
var defaultsTOML []byte

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct {
	bytes []byte
}

func (p *rawBytesProvider) ReadBytes() ([]byte, error) {
	return p.bytes, nil
}

func (p *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "rawBytesProvider does not support Read")
}

// UserConfigPath returns the location of the user override file.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "inspect", "inspect.toml")
}

// Load builds the layered configuration.
func Load() (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultsTOML}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 2. User file, when present
	path := UserConfigPath()
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", path)
		}
	}

	// 3. Environment: INSPECT_PRINTABLE_LIMIT -> printable_limit
	envProvider := env.Provider("INSPECT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "INSPECT_"))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	return k, nil
}

// Options translates the merged configuration into inspect options.
func Options(k *koanf.Koanf) ([]inspect.Option, error) {
	opts := []inspect.Option{
		inspect.WithWidth(k.Int("width")),
		inspect.WithPretty(k.Bool("pretty")),
		inspect.WithLimit(k.Int("limit")),
		inspect.WithPrintableLimit(k.Int("printable_limit")),
	}

	base, err := ParseBase(k.String("base"))
	if err != nil {
		return nil, err
	}
	opts = append(opts, inspect.WithBase(base))

	if enabled := colorEnabled(k.String("colors.enabled")); enabled {
		scheme := colors.Default()
		for tag, spec := range k.StringMap("colors.scheme") {
			scheme[colors.Tag(tag)] = spec
		}
		opts = append(opts, inspect.WithColors(scheme))
	}

	return opts, nil
}

// ParseBase maps a configuration string to an integer base.
func ParseBase(s string) (inspect.Base, error) {
	switch s {
	case "", "decimal":
		return inspect.Decimal, nil
	case "hex":
		return inspect.Hex, nil
	case "octal":
		return inspect.Octal, nil
	case "binary":
		return inspect.Binary, nil
	}
	return inspect.Decimal, errors.Newf(errors.ErrConfigInvalid, "unknown base %q", s)
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return colors.Enabled()
}
