package attr

import (
	"sync"

	"go.uber.org/zap"
)

var (
	pkgLogger   *zap.Logger
	pkgLoggerMu sync.RWMutex
)

// SetLogger installs a logger for the package's diagnostics (currently the
// numeric-fallback path in the decoder). Passing nil restores the default
// no-op logger. Diagnostics never change conversion output.
func SetLogger(l *zap.Logger) {
	pkgLoggerMu.Lock()
	defer pkgLoggerMu.Unlock()
	pkgLogger = l
}

// logger returns the installed logger, or a no-op logger by default.
func logger() *zap.Logger {
	pkgLoggerMu.RLock()
	defer pkgLoggerMu.RUnlock()
	if pkgLogger == nil {
		return zap.NewNop()
	}
	return pkgLogger
}
