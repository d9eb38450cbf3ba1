package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// ZerologAdapter satisfies Logger on top of a zerolog console logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewConsole builds the human-readable logger the application runs with.
// The level is decided once, at process start.
func NewConsole(level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	withFields(z.logger.Debug().Str("component", component), fields).Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	withFields(z.logger.Info().Str("component", component), fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	withFields(z.logger.Warn().Str("component", component), fields).Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	withFields(z.logger.Error().Str("component", component).Err(err), fields).Msg("operation failed")
}

func withFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
