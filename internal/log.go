package internal

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents different logging verbosity levels
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// ParseLogLevel maps a LOG_LEVEL value to a LogLevel. Unknown values fall
// back to INFO.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LogLevelError
	case "WARN":
		return LogLevelWarn
	case "DEBUG":
		return LogLevelDebug
	case "TRACE":
		return LogLevelTrace
	default:
		return LogLevelInfo
	}
}

// String returns the LOG_LEVEL spelling of l
func (l LogLevel) String() string {
	switch l {
	case LogLevelError:
		return "ERROR"
	case LogLevelWarn:
		return "WARN"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelTrace:
		return "TRACE"
	default:
		return "INFO"
	}
}

// ZapLevel converts to a zap level. zap has nothing below debug, so TRACE
// collapses to DEBUG.
func (l LogLevel) ZapLevel() zapcore.Level {
	switch l {
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelDebug, LogLevelTrace:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewLogger builds a zap logger. APP_ENV "production" gets the JSON encoder,
// everything else the console one.
func NewLogger(env string, level LogLevel) (*zap.Logger, error) {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level.ZapLevel())
	return cfg.Build()
}

// NewDefaultLogger creates a logger from APP_ENV and LOG_LEVEL
func NewDefaultLogger() (*zap.Logger, error) {
	return NewLogger(os.Getenv("APP_ENV"), ParseLogLevel(os.Getenv("LOG_LEVEL")))
}
