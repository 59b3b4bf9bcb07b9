package benchmark

import (
	"github.com/emberlog/ember/core"
	"github.com/emberlog/ember/handler"
)

// noopHandler measures Logger overhead in isolation: the entry is
// touched but never formatted or written.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return noopHandler{}
}

func (noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (noopHandler) Close() error {
	return nil
}
