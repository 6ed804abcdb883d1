package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the structured logger every component writes through.
type Logger interface {
	Info(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Debug(component, message string, fields map[string]interface{})
}

// ZerologAdapter writes Logger calls as zerolog events tagged with the
// calling component.
type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func NewConsoleLogger(level zerolog.Level) *ZerologAdapter {
	return NewZerolog(zerolog.ConsoleWriter{Out: os.Stdout}, level)
}

// NewFromEnv builds the process logger from SPLASHKIT_LOG_LEVEL and
// SPLASHKIT_JSON_LOGS.
func NewFromEnv() *ZerologAdapter {
	level := LevelFromString(os.Getenv("SPLASHKIT_LOG_LEVEL"))
	if os.Getenv("SPLASHKIT_JSON_LOGS") == "true" {
		return NewZerolog(os.Stdout, level)
	}
	return NewConsoleLogger(level)
}

// LevelFromString maps debug, info, warn and error onto zerolog levels.
// Anything else is info.
func LevelFromString(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	emit(z.logger.Info(), component, message, fields)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	emit(z.logger.Error().Err(err), component, "operation failed", fields)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	emit(z.logger.Warn(), component, message, fields)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	emit(z.logger.Debug(), component, message, fields)
}

// emit is a no-op for events below the logger's level, which zerolog
// hands back as nil.
func emit(event *zerolog.Event, component, message string, fields map[string]interface{}) {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(component, message string, fields map[string]interface{})    {}
func (NopLogger) Error(component string, err error, fields map[string]interface{}) {}
func (NopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NopLogger) Debug(component, message string, fields map[string]interface{})   {}
