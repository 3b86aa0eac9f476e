package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Interface -.
type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message string, args ...interface{})
	Warn(message string, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

// Logger -.
type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

// Option -.
type Option func(*options)

type options struct {
	out io.Writer
}

// Output redirects log lines, stdout by default.
func Output(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// New -.
func New(level string, opts ...Option) *Logger {
	o := &options{out: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	const skipFrameCount = 3

	logger := zerolog.New(o.out).
		Level(parseLevel(level)).
		With().
		Timestamp().
		CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + skipFrameCount).
		Logger()

	return &Logger{logger: &logger}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug -.
func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), message, args...)
}

// Info -.
func (l *Logger) Info(message string, args ...interface{}) {
	l.msg(l.logger.Info(), message, args...)
}

// Warn -.
func (l *Logger) Warn(message string, args ...interface{}) {
	l.msg(l.logger.Warn(), message, args...)
}

// Error -.
func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), message, args...)
}

// Fatal -.
func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.WithLevel(zerolog.FatalLevel), message, args...)

	os.Exit(1)
}

// msg writes an error message as the "error" field and treats a leading string
// argument as the format for the rest of the arguments.
func (l *Logger) msg(event *zerolog.Event, message interface{}, args ...interface{}) {
	switch m := message.(type) {
	case error:
		event = event.Err(m)
		if len(args) == 0 {
			event.Send()
			return
		}
		if format, ok := args[0].(string); ok {
			event.Msgf(format, args[1:]...)
			return
		}
		event.Msg(fmt.Sprint(args...))
	case string:
		if len(args) == 0 {
			event.Msg(m)
			return
		}
		event.Msgf(m, args...)
	default:
		event.Msgf("message %v has unknown type %T", message, message)
	}
}
