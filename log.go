package aesmodes

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// init installs the no-op logger so logging is silent by default.
func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs l for diagnostics. Rejected calls are logged at debug
// level with their sizes; key material and data are never logged. nil
// restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	l = l.Named("aesmodes")
	l.Debug("logger installed", zap.Bool("hardwareAES", SupportsHardwareAES()))
	logger.Store(l)
}

// rejected logs a failed call at debug level and returns err unchanged.
func rejected(op string, err error, fields ...zap.Field) error {
	logger.Load().Debug("rejected "+op, append(fields, zap.Error(err))...)
	return err
}
