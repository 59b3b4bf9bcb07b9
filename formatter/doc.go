// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-provided buffer.
// Handlers check for the optional interfaces at construction time and
// prefer them when available, eliminating the intermediate byte slice
// allocation on the write path.
//
// The built-in Terminal formatter renders a single '\n'-terminated
// line per entry: a muted timestamp (millisecond precision), the bold
// four-character level label in the level's color, the message, and
// the fields as key=value pairs with muted keys. Color application is
// all-or-nothing per entry, driven by Config.UseColors; with colors
// disabled the output contains no escape sequences at all.
//
// Field rendering follows the entry's insertion order, so a given
// entry always produces the same line. The formatter uses a pooled
// bytes.Buffer internally; buffers larger than 64 KiB are not
// returned to the pool to prevent a single large log line from
// permanently inflating memory usage.
package formatter
