// Package corblog wraps zerolog with the level/format switches
// config.LoggingConfig exposes, and a WithStep helper the run command uses
// to attach each annealing temperature step's bookkeeping to the log line
// it writes for that step.
package corblog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is a logging level name, matching config.LoggingConfig.Level.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is a logging output format name, matching
// config.LoggingConfig.Format.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Options configures a new Logger.
type Options struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger is a structured logger over a run's lifetime: configuration
// loading, SA progress, and finalization.
type Logger struct {
	logger zerolog.Logger
}

// New builds a Logger from Options, defaulting to stdout and info level.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	var output io.Writer = opts.Output
	if opts.Format == FormatConsole {
		output = zerolog.ConsoleWriter{Out: opts.Output, TimeFormat: time.RFC3339, NoColor: false}
	}

	zlog := zerolog.New(output).With().Timestamp().Logger().Level(level(opts.Level))

	return &Logger{logger: zlog}
}

func level(l Level) zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.emit(l.logger.Debug(), msg, fields...) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.emit(l.logger.Info(), msg, fields...) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.emit(l.logger.Warn(), msg, fields...) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.emit(l.logger.Error(), msg, fields...) }

// WithStep returns a child logger carrying the annealing step's index,
// phase, and temperature on every subsequent line.
func (l *Logger) WithStep(index int, phase string, temp float64) *Logger {
	return &Logger{logger: l.logger.With().Int("step", index).Str("phase", phase).Float64("temp", temp).Logger()}
}

// WithField returns a child logger carrying one additional field.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

func (l *Logger) emit(event *zerolog.Event, msg string, fields ...interface{}) {
	if len(fields)%2 != 0 {
		event.Str("log_error", "odd number of fields")
		event.Msg(msg)
		return
	}
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event.Str("log_error", fmt.Sprintf("field key at index %d is not a string", i))
			continue
		}
		event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
