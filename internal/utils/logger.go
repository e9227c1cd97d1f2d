package utils

import (
	"os"
	"strings"

	chlog "github.com/charmbracelet/log"
)

// Logger is the application-wide structured logger.
var Logger *chlog.Logger

const (
	debugLevel = "debug"
	infoLevel  = "info"
	warnLevel  = "warn"
	errorLevel = "error"
)

// ClientLogVerbosity is the -v count from which franz-go client logs are enabled.
const ClientLogVerbosity = 3

// InitLogger initializes the global logger with level from KAFKA_SHELL_LOG_LEVEL.
// Valid levels: debug, info, warn, error. The logger writes to stderr so that
// it never interleaves with the shell output.
func InitLogger() {
	if Logger != nil {
		return
	}
	l := chlog.New(os.Stderr)
	l.SetTimeFormat("2006-01-02 15:04:05.000")
	l.SetReportTimestamp(true)
	l.SetPrefix("kafka-shell")
	levelStr := strings.ToLower(strings.TrimSpace(os.Getenv("KAFKA_SHELL_LOG_LEVEL")))
	switch levelStr {
	case debugLevel:
		l.SetLevel(chlog.DebugLevel)
	case infoLevel:
		l.SetLevel(chlog.InfoLevel)
	case errorLevel:
		l.SetLevel(chlog.ErrorLevel)
	default:
		l.SetLevel(chlog.WarnLevel)
	}
	Logger = l
}

// SetLogLevel allows changing level at runtime.
func SetLogLevel(level string) {
	if Logger == nil {
		InitLogger()
	}
	switch strings.ToLower(strings.TrimSpace(level)) {
	case debugLevel:
		Logger.SetLevel(chlog.DebugLevel)
	case infoLevel:
		Logger.SetLevel(chlog.InfoLevel)
	case warnLevel:
		Logger.SetLevel(chlog.WarnLevel)
	case errorLevel:
		Logger.SetLevel(chlog.ErrorLevel)
	}
}

// SetVerbosity maps the number of -v flags to a log level. Zero keeps the
// level chosen by InitLogger.
func SetVerbosity(count int) {
	switch {
	case count <= 0:
		return
	case count == 1:
		SetLogLevel(infoLevel)
	default:
		SetLogLevel(debugLevel)
	}
}
