package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type StructuredLogger struct {
	logger *slog.Logger
}

func NewTextLogger(writer io.Writer, level LogLevel) *StructuredLogger {
	handler := tint.NewHandler(writer, &tint.Options{
		Level:      slogLevel(level),
		TimeFormat: time.Kitchen,
	})

	return &StructuredLogger{logger: slog.New(handler)}
}

func (l *StructuredLogger) Debug(msg string, fields map[string]interface{}) {
	l.logWithFields(slog.LevelDebug, msg, fields)
}

func (l *StructuredLogger) Info(msg string, fields map[string]interface{}) {
	l.logWithFields(slog.LevelInfo, msg, fields)
}

func (l *StructuredLogger) Warning(msg string, fields map[string]interface{}) {
	l.logWithFields(slog.LevelWarn, msg, fields)
}

func (l *StructuredLogger) Error(msg string, err error, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2+2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.logger.Log(context.Background(), slog.LevelError, msg, args...)
}

func (l *StructuredLogger) logWithFields(level slog.Level, msg string, fields map[string]interface{}) {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	l.logger.Log(context.Background(), level, msg, args...)
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
