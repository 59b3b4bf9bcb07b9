package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/emberlog/ember/core"
	"github.com/emberlog/ember/formatter"
)

// bufPool holds format buffers so the sync write path stays
// allocation-free.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// Console writes log entries synchronously to a console stream. Each
// entry is formatted into a pooled buffer and emitted with a single
// Write call, so concurrent callers never interleave mid-line. Any
// failure during formatting or writing is contained here: Handle
// converts panics into dropped entries and never lets a broken stream
// unwind into the host application.
type Console struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	mu              *sync.Mutex
	stats           *Stats
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Writer to write to (default: colorable stderr)
	Writer io.Writer
	// Formatter to use (default: Terminal with timestamps on and
	// colors matching stderr terminal attachment)
	Formatter formatter.Formatter
}

// flusher is implemented by writers that buffer between Write calls
type flusher interface {
	Flush() error
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// stderrSupportsColor reports whether stderr is attached to an
// interactive terminal and the NO_COLOR convention is not in effect.
func stderrSupportsColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewConsole creates a new console handler
func NewConsole(cfg ConsoleConfig) *Console {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStderr()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTerminal(formatter.Config{
			UseColors:     stderrSupportsColor(),
			ShowTimestamp: true,
		})
	}

	h := &Console{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: isConcurrentSafeWriter(cfg.Writer),
		mu:             &sync.Mutex{},
		stats:          NewStats(),
	}

	// Cache BufferFormatter to skip the []byte copy in Format
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	return h
}

// Handle formats and writes an entry. Failures never escape: a panic
// from the formatter or the writer is swallowed and the entry counts
// as dropped. The returned error is informational only.
func (h *Console) Handle(entry *core.Entry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.stats.IncrementDropped()
			err = nil
		}
	}()
	return h.write(entry)
}

// write formats the entry and emits it with a single Write call
func (h *Console) write(entry *core.Entry) error {
	var data []byte

	if h.bufferFormatter != nil {
		buf := bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		defer func() {
			if buf.Cap() <= 64*1024 { // Don't keep very large buffers
				bufPool.Put(buf)
			}
		}()
		h.bufferFormatter.FormatEntry(entry, buf)
		data = buf.Bytes()
	} else {
		var err error
		data, err = h.formatter.Format(entry)
		if err != nil {
			h.stats.IncrementDropped()
			return err
		}
	}

	if !h.concurrentSafe {
		h.mu.Lock()
		defer h.mu.Unlock()
	}

	if _, err := h.writer.Write(data); err != nil {
		h.stats.IncrementDropped()
		return err
	}
	if f, ok := h.writer.(flusher); ok {
		// Flush failures count like write failures; the line may be lost.
		if err := f.Flush(); err != nil {
			h.stats.IncrementDropped()
			return err
		}
	}

	h.stats.IncrementProcessed()
	return nil
}

// reoptionable is implemented by formatters that can derive a variant
// with different options.
type reoptionable interface {
	WithOptions(formatter.Config) *formatter.Terminal
}

// Reconfigure returns a Console with the formatter re-optioned to the
// given configuration. The derived handler shares the writer, lock,
// and stats with the receiver, so lines from both are still serialized
// and counted together. If the formatter cannot be re-optioned the
// receiver is returned unchanged.
func (h *Console) Reconfigure(cfg formatter.Config) Handler {
	ro, ok := h.formatter.(reoptionable)
	if !ok {
		return h
	}
	derived := ro.WithOptions(cfg)

	return &Console{
		writer:          h.writer,
		formatter:       derived,
		bufferFormatter: derived,
		concurrentSafe:  h.concurrentSafe,
		mu:              h.mu,
		stats:           h.stats,
	}
}

// Stats returns a snapshot of the current statistics
func (h *Console) Stats() Snapshot {
	return h.stats.Snapshot()
}

// Close closes the handler. The console stream is not owned by the
// handler, so there is nothing to release.
func (h *Console) Close() error {
	return nil
}
