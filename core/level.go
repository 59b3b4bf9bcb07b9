package core

import "github.com/fatih/color"

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for fine-grained tracing information
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
)

// String returns the fixed four-character label of the level.
// All labels are exactly four characters so that log columns stay
// aligned regardless of severity.
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRCE"
	case DebugLevel:
		return "DEBG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERRO"
	default:
		return "UNKN"
	}
}

// Color returns the terminal color attribute associated with the level
func (l Level) Color() color.Attribute {
	switch l {
	case TraceLevel:
		return color.FgCyan
	case DebugLevel:
		return color.FgBlue
	case InfoLevel:
		return color.FgGreen
	case WarnLevel:
		return color.FgYellow
	case ErrorLevel:
		return color.FgRed
	default:
		return color.FgWhite
	}
}
