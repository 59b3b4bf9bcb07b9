package logger

import (
	"strings"

	"github.com/emberlog/ember/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level. Both full names and the
// four-character display labels are accepted, case-insensitively;
// unknown strings parse as InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "TRCE":
		return TraceLevel
	case "DEBUG", "DEBG":
		return DebugLevel
	case "INFO":
		return InfoLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR", "ERRO":
		return ErrorLevel
	default:
		return InfoLevel
	}
}
