package badgerfx

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

type zapLogger struct {
	logger *zap.Logger
}

func newLogger(l *zap.Logger) *zapLogger {
	return &zapLogger{
		logger: l.WithOptions(zap.AddCallerSkip(1)),
	}
}

// badger terminates most of its messages with a newline
func (l *zapLogger) format(format string, a []any) string {
	return strings.TrimRight(fmt.Sprintf(format, a...), "\n")
}

// Debugf implements badger.Logger.
func (l *zapLogger) Debugf(format string, a ...any) {
	l.logger.Debug(l.format(format, a))
}

// Errorf implements badger.Logger.
func (l *zapLogger) Errorf(format string, a ...any) {
	l.logger.Error(l.format(format, a))
}

// Infof implements badger.Logger.
func (l *zapLogger) Infof(format string, a ...any) {
	l.logger.Info(l.format(format, a))
}

// Warningf implements badger.Logger.
func (l *zapLogger) Warningf(format string, a ...any) {
	l.logger.Warn(l.format(format, a))
}

var _ badger.Logger = (*zapLogger)(nil)
