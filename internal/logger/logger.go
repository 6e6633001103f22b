package logger

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger. format is json, console or auto; auto
// picks console when stderr is a terminal.
func New(level, format string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = Encoding(format, isatty.IsTerminal(os.Stderr.Fd()))
	cfg.Level = zap.NewAtomicLevelAt(Level(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Encoding == "console" {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg.Build()
}

// Level maps a LOG_LEVEL value to a zap level. Unknown values mean error.
func Level(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	default:
		return zap.ErrorLevel
	}
}

// Encoding resolves a LOG_FORMAT value.
func Encoding(format string, tty bool) string {
	switch format {
	case "json", "console":
		return format
	}
	if tty {
		return "console"
	}
	return "json"
}
