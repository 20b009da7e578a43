package logger

import (
	"os"
	"strings"
)

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warning(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}

func ParseLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// New selects the log backend by format name: "json" and "console" use
// zerolog, "text" uses the tinted slog handler.
func New(level LogLevel, format string) Logger {
	switch format {
	case "json":
		return NewJSONLogger(os.Stderr, level)
	case "text":
		return NewTextLogger(os.Stderr, level)
	default:
		return NewConsoleLogger(level)
	}
}
