package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, InfoLevel, cfg.Level)
	assert.True(t, cfg.ShowTimestamp)
	// UseColors depends on the test environment's stderr attachment,
	// but it must be deterministic for a given attachment state.
	assert.Equal(t, DefaultConfig().UseColors, cfg.UseColors)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EMBER_LEVEL", "debug")
	t.Setenv("EMBER_COLORS", "false")
	t.Setenv("EMBER_TIMESTAMP", "false")

	cfg := ConfigFromEnv()

	assert.Equal(t, DebugLevel, cfg.Level)
	assert.False(t, cfg.UseColors)
	assert.False(t, cfg.ShowTimestamp)
}

func TestConfigFromEnvUnparsableLeavesDefault(t *testing.T) {
	t.Setenv("EMBER_LEVEL", "")
	t.Setenv("EMBER_COLORS", "not-a-bool")
	t.Setenv("EMBER_TIMESTAMP", "")

	cfg := ConfigFromEnv()
	def := DefaultConfig()

	assert.Equal(t, def.Level, cfg.Level)
	assert.Equal(t, def.UseColors, cfg.UseColors)
	assert.Equal(t, def.ShowTimestamp, cfg.ShowTimestamp)
}

func TestConfigFromEnvLabelForm(t *testing.T) {
	t.Setenv("EMBER_LEVEL", "ERRO")

	assert.Equal(t, ErrorLevel, ConfigFromEnv().Level)
}

func TestNoColorDisablesColors(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, DefaultConfig().UseColors)
}
