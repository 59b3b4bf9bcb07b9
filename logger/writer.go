package logger

import (
	"io"
	"strings"

	"github.com/emberlog/ember/core"
)

// Writer returns an io.Writer that logs each written chunk as one
// message at the given level, with the logger's context applied. It is
// meant for capturing the output of code that only knows io.Writer,
// like the standard library's log package:
//
//	log.SetOutput(l.Writer(logger.InfoLevel))
//	log.SetFlags(0)
func (l Logger) Writer(level core.Level) io.Writer {
	return &levelWriter{logger: l, level: level}
}

type levelWriter struct {
	logger Logger
	level  core.Level
}

// Write logs the payload with the trailing newline stripped. The
// stdlib logger emits exactly one line per Write call, so no buffering
// across calls is needed. Always reports full success; a dropped line
// is invisible here like everywhere else.
func (w *levelWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	w.logger.Log(w.level, msg)
	return len(p), nil
}
