package platform

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrInvalidLogLevel = errors.New("invalid log level")
var ErrInvalidLogFormat = errors.New("invalid log format")

type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// NewLogger builds a logger without touching the slog default. Embedded
// registries use it so tests running several instances do not race on
// global state.
func NewLogger(levelValue, formatValue string, out io.Writer) (*slog.Logger, error) {
	level, err := ParseLogLevel(levelValue)
	if err != nil {
		return nil, err
	}

	format, err := ParseLogFormat(formatValue)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch format {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(out, handlerOpts)
	default:
		handler = slog.NewTextHandler(out, handlerOpts)
	}
	return slog.New(handler), nil
}

// ConfigureLogger is NewLogger plus slog.SetDefault, for the CLI process.
func ConfigureLogger(levelValue, formatValue string, out io.Writer) (*slog.Logger, error) {
	logger, err := NewLogger(levelValue, formatValue, out)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Component tags every record with the emitting subsystem.
func Component(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = DiscardLogger()
	}
	return logger.With(slog.String("component", name))
}

func ParseLogLevel(value string) (slog.Level, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w %q", ErrInvalidLogLevel, value)
	}
}

func ParseLogFormat(value string) (LogFormat, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	switch value {
	case "", string(LogFormatText):
		return LogFormatText, nil
	case string(LogFormatJSON):
		return LogFormatJSON, nil
	default:
		return LogFormatText, fmt.Errorf("%w %q", ErrInvalidLogFormat, value)
	}
}
