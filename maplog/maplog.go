package maplog

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/handlemap"
)

var (
	logger   *zap.Logger
	loggerMu sync.Mutex
)

// Logger returns the package logger. It is a no-op logger until SetLogger
// is called.
func Logger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the package logger used by New(nil).
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Observer logs each map lifecycle event at Debug level.
type Observer[V any] struct {
	log *zap.Logger
}

// New returns an observer writing to log. A nil log falls back to the
// package logger.
func New[V any](log *zap.Logger) *Observer[V] {
	if log == nil {
		log = Logger()
	}
	return &Observer[V]{log: log}
}

// OnMapEvent implements handlemap.Observer.
func (o *Observer[V]) OnMapEvent(e handlemap.Event[V]) {
	o.log.Debug("handlemap event",
		zap.String("op", e.Type.String()),
		zap.Uint64("handle", e.Handle.Uint64()),
		zap.Any("value", e.Value),
	)
}
