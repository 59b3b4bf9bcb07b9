package logger

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/emberlog/ember/core"
)

// Config holds a Logger's emit settings: the minimum level, whether
// output is colorized, and whether the timestamp column is shown.
type Config struct {
	// Level is the minimum severity that gets emitted
	Level core.Level
	// UseColors enables ANSI colors in the rendered output
	UseColors bool
	// ShowTimestamp enables the leading timestamp column
	ShowTimestamp bool
}

// DefaultConfig returns the default settings: InfoLevel, timestamps
// on, and colors enabled only when stderr is attached to an
// interactive terminal and the NO_COLOR convention is not in effect.
// Terminal attachment is queried here, once, not re-evaluated per log
// call.
func DefaultConfig() Config {
	return Config{
		Level:         core.InfoLevel,
		UseColors:     stderrIsTerminal(),
		ShowTimestamp: true,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by the EMBER_LEVEL,
// EMBER_COLORS, and EMBER_TIMESTAMP environment variables. Unset or
// unparsable variables leave the default untouched.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("EMBER_LEVEL"); v != "" {
		cfg.Level = ParseLevel(v)
	}
	if v := os.Getenv("EMBER_COLORS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseColors = b
		}
	}
	if v := os.Getenv("EMBER_TIMESTAMP"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ShowTimestamp = b
		}
	}
	return cfg
}

// stderrIsTerminal reports whether stderr is an interactive terminal
// and coloring has not been opted out via NO_COLOR.
func stderrIsTerminal() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
