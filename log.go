package bls12381

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the diagnostic sink used by the package. Only the slow,
// debug-only code paths (InCorrectSubgroupSlow, the cross-check variants)
// log anything; the hot arithmetic paths never touch it.
type Logger interface {
	Debugw(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) Debugw(msg string, keyvals ...interface{}) { l.SugaredLogger.Debugw(msg, keyvals...) }
func (l *log) Warnw(msg string, keyvals ...interface{})   { l.SugaredLogger.Warnw(msg, keyvals...) }

var (
	defaultLoggerOnce sync.Once
	defaultLogger     Logger
)

// DefaultLogger returns the package-wide logger, built lazily on first use.
func DefaultLogger() Logger {
	defaultLoggerOnce.Do(func() {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), os.Stderr, zapcore.WarnLevel)
		defaultLogger = &log{zap.New(core).Sugar()}
	})
	return defaultLogger
}

// SetLogger overrides the package-wide logger, e.g. to raise its level or
// redirect output in an embedding application.
func SetLogger(l Logger) {
	defaultLoggerOnce.Do(func() {})
	defaultLogger = l
}
