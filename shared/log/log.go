package log

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var current atomic.Pointer[zap.Logger]

func init() {
	current.Store(zap.NewNop())
}

// L returns the logger used by every container in this module.
// It is a no-op logger until SetLogger is called.
func L() *zap.Logger {
	return current.Load()
}

// SetLogger replaces the module-wide logger and returns a function restoring the previous one.
// A nil logger installs a no-op logger.
func SetLogger(logger *zap.Logger) (restore func()) {
	if logger == nil {
		logger = zap.NewNop()
	}
	prev := current.Swap(logger)
	return func() {
		current.Store(prev)
	}
}

// Named returns a child of the module-wide logger scoped to a container kind.
func Named(name string) *zap.Logger {
	return L().Named(name)
}
