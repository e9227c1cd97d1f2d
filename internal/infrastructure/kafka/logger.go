package kafka

import (
	chlog "github.com/charmbracelet/log"
	"github.com/twmb/franz-go/pkg/kgo"
)

// ClientLogger forwards franz-go client logs to a charmbracelet logger.
type ClientLogger struct {
	l *chlog.Logger
}

// NewClientLogger wraps l for use with kgo.WithLogger.
func NewClientLogger(l *chlog.Logger) *ClientLogger {
	return &ClientLogger{l: l.WithPrefix("franz-go")}
}

// Level reports the franz-go level matching the wrapped logger.
func (c *ClientLogger) Level() kgo.LogLevel {
	switch c.l.GetLevel() {
	case chlog.DebugLevel:
		return kgo.LogLevelDebug
	case chlog.InfoLevel:
		return kgo.LogLevelInfo
	case chlog.WarnLevel:
		return kgo.LogLevelWarn
	case chlog.ErrorLevel:
		return kgo.LogLevelError
	default:
		return kgo.LogLevelNone
	}
}

func (c *ClientLogger) Log(level kgo.LogLevel, msg string, keyvals ...any) {
	switch level {
	case kgo.LogLevelError:
		c.l.Error(msg, keyvals...)
	case kgo.LogLevelWarn:
		c.l.Warn(msg, keyvals...)
	case kgo.LogLevelInfo:
		c.l.Info(msg, keyvals...)
	case kgo.LogLevelDebug:
		c.l.Debug(msg, keyvals...)
	}
}
