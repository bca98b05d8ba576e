package inspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseDefaults(t *testing.T) {
	cfg := baseConfig()

	assert.Equal(t, 80, cfg.Width)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, 50, cfg.Limit)
	assert.Equal(t, 4096, cfg.PrintableLimit)
	assert.Equal(t, Decimal, cfg.Base)
	assert.True(t, cfg.Safe)
}

func TestConfigureChangesDefaults(t *testing.T) {
	t.Cleanup(ResetDefaults)

	Configure(WithLimit(3), WithBase(Hex))

	cfg := Default()
	assert.Equal(t, 3, cfg.Limit)
	assert.Equal(t, Hex, cfg.Base)

	// the new defaults flow into calls without explicit options
	assert.Equal(t, "[0x1, 0x2, 0x3, ...]", Sprint([]int{1, 2, 3, 4}))
}

func TestResetDefaults(t *testing.T) {
	Configure(WithLimit(1))
	ResetDefaults()

	assert.Equal(t, 50, Default().Limit)
}

func TestDefaultSnapshotIsolation(t *testing.T) {
	t.Cleanup(ResetDefaults)

	snap := Default()
	Configure(WithLimit(7))

	assert.Equal(t, 50, snap.Limit)
}

func TestDefaultCopiesCustomOptions(t *testing.T) {
	t.Cleanup(ResetDefaults)

	Configure(WithCustomOption("k", 1))
	snap := Default()
	snap.CustomOptions["k"] = 2

	fresh := Default()
	v, _ := fresh.Option("k")
	assert.Equal(t, 1, v)
}

func TestCallOptionsOverrideDefaults(t *testing.T) {
	t.Cleanup(ResetDefaults)

	Configure(WithLimit(50))
	assert.Equal(t, "[1, ...]", Sprint([]int{1, 2}, WithLimit(1)))
}

func TestWithOptionCopies(t *testing.T) {
	cfg := Default()
	cfg2 := cfg.WithOption("k", "v")

	_, ok := cfg.Option("k")
	assert.False(t, ok)

	v, ok := cfg2.Option("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestWithOptionDoesNotShareMap(t *testing.T) {
	cfg := Default()
	a := cfg.WithOption("k", 1)
	b := a.WithOption("k", 2)

	va, _ := a.Option("k")
	vb, _ := b.Option("k")
	assert.Equal(t, 1, va)
	assert.Equal(t, 2, vb)
}
