package formatter

import (
	"bytes"
	"io"

	"github.com/fatih/color"

	"github.com/emberlog/ember/core"
)

// Terminal formats log entries as single colorized lines for console
// output: an optional muted timestamp, the bold four-character level
// label in the level's color, the message verbatim, and key=value
// fields with muted keys.
type Terminal struct {
	Config
	muted    *color.Color
	levels   [core.ErrorLevel + 1]*color.Color
	fallback *color.Color
}

// NewTerminal creates a new terminal formatter
func NewTerminal(cfg Config) *Terminal {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}

	f := &Terminal{Config: cfg}

	// Color sequences are forced on so output stays identical whether
	// or not the destination is a real terminal; the UseColors flag is
	// the only switch.
	f.muted = color.New(color.FgHiBlack)
	f.muted.EnableColor()
	for l := core.TraceLevel; l <= core.ErrorLevel; l++ {
		c := color.New(l.Color(), color.Bold)
		c.EnableColor()
		f.levels[l] = c
	}
	f.fallback = color.New(color.FgWhite, color.Bold)
	f.fallback.EnableColor()

	return f
}

// WithOptions returns a new Terminal with the given configuration,
// leaving the receiver untouched.
func (f *Terminal) WithOptions(cfg Config) *Terminal {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = f.TimestampFormat
	}
	return NewTerminal(cfg)
}

// Format formats an entry as a colorized line
func (f *Terminal) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *Terminal) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// levelColor returns the precomputed color for a level
func (f *Terminal) levelColor(l core.Level) *color.Color {
	if l >= core.TraceLevel && l <= core.ErrorLevel {
		return f.levels[l]
	}
	return f.fallback
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *Terminal) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp
	if f.ShowTimestamp {
		if f.UseColors {
			buf.WriteString(f.muted.Sprint(entry.Time.Format(f.TimestampFormat)))
		} else {
			buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		}
		buf.WriteByte(' ')
	}

	// Level label, always 4 characters
	if f.UseColors {
		buf.WriteString(f.levelColor(entry.Level).Sprint(entry.Level.String()))
	} else {
		buf.WriteString(entry.Level.String())
	}
	buf.WriteByte(' ')

	// Message, verbatim
	buf.WriteString(entry.Message)

	// Fields in insertion order: muted key=, value in default foreground
	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		if f.UseColors {
			buf.WriteString(f.muted.Sprint(field.Key + "="))
		} else {
			buf.WriteString(field.Key)
			buf.WriteByte('=')
		}
		buf.WriteString(field.Value)
	}

	buf.WriteByte('\n')
}
