package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silverdr/inspect/pkg/errors"
	"github.com/silverdr/inspect/pkg/inspect"
)

func TestEmbeddedDefaults(t *testing.T) {
	k, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 80, k.Int("width"))
	assert.False(t, k.Bool("pretty"))
	assert.Equal(t, 50, k.Int("limit"))
	assert.Equal(t, 4096, k.Int("printable_limit"))
	assert.Equal(t, "decimal", k.String("base"))
	assert.Equal(t, "auto", k.String("colors.enabled"))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("INSPECT_LIMIT", "7")
	t.Setenv("INSPECT_PRINTABLE_LIMIT", "16")

	k, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, k.Int("limit"))
	assert.Equal(t, 16, k.Int("printable_limit"))
	// untouched keys keep their embedded defaults
	assert.Equal(t, 80, k.Int("width"))
}

func TestOptionsTranslation(t *testing.T) {
	t.Setenv("INSPECT_LIMIT", "2")
	t.Setenv("INSPECT_BASE", "hex")
	t.Setenv("INSPECT_COLORS.ENABLED", "never")

	k, err := Load()
	require.NoError(t, err)

	opts, err := Options(k)
	require.NoError(t, err)

	got := inspect.Sprint([]int{1, 2, 3}, opts...)
	assert.Equal(t, "[0x1, 0x2, ...]", got)
}

func TestOptionsRejectsBadBase(t *testing.T) {
	t.Setenv("INSPECT_BASE", "nonary")

	k, err := Load()
	require.NoError(t, err)

	_, err = Options(k)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
}

func TestParseBase(t *testing.T) {
	tests := []struct {
		in      string
		want    inspect.Base
		wantErr bool
	}{
		{"", inspect.Decimal, false},
		{"decimal", inspect.Decimal, false},
		{"hex", inspect.Hex, false},
		{"octal", inspect.Octal, false},
		{"binary", inspect.Binary, false},
		{"base64", inspect.Decimal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBase(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserConfigPath(t *testing.T) {
	assert.Contains(t, UserConfigPath(), "inspect/inspect.toml")
}
