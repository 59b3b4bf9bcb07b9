package logger

import (
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterAdapter(t *testing.T) {
	l, buf := plainLogger(InfoLevel)
	l = l.With("source", "stdlib")

	w := l.Writer(WarnLevel)
	n, err := w.Write([]byte("legacy message\n"))

	assert.NoError(t, err)
	assert.Equal(t, len("legacy message\n"), n)
	assert.Equal(t, "WARN legacy message source=stdlib\n", buf.String())
}

func TestWriterAdapterFiltered(t *testing.T) {
	l, buf := plainLogger(ErrorLevel)

	_, err := l.Writer(InfoLevel).Write([]byte("dropped\n"))

	assert.NoError(t, err, "a dropped line is still reported as written")
	assert.Zero(t, buf.Len())
}

func TestWriterCapturesStdlibLog(t *testing.T) {
	l, buf := plainLogger(InfoLevel)

	std := log.New(l.Writer(InfoLevel), "", 0)
	std.Println("hello from log")

	assert.Equal(t, "INFO hello from log\n", buf.String())
}
