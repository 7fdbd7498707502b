// Package logging provides structured diagnostics for the ustring tool.
//
// Logger wraps zerolog. Messages take key/value pairs:
//
//	log.Info("split", "parts", len(parts), "separator", sep)
//
// Output goes to stderr so command results on stdout stay machine readable.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Default log settings.
const (
	DefaultLevel  = "info"
	DefaultFormat = "auto"
)

// Options configures a Logger.
type Options struct {
	// Level is debug, info, warn, error or disabled. Unknown levels mean info.
	Level string
	// Format is json, console, or auto (console when Output is a terminal).
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Logger is a leveled structured logger.
type Logger struct {
	zl zerolog.Logger
}

// New creates a logger from opts.
func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	tty := isTerminal(out)
	if opts.Format == "console" || opts.Format == "text" || (opts.Format != "json" && tty) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: !tty}
	}
	zl := zerolog.New(out).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "warning":
		return zerolog.WarnLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WithField returns a logger that adds key=value to every message.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithComponent returns a logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

// Level returns the minimum level written.
func (l *Logger) Level() zerolog.Level {
	return l.zl.GetLevel()
}

// DebugEnabled reports whether Debug messages are written.
func (l *Logger) DebugEnabled() bool {
	return l.zl.Debug().Enabled()
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, keyValues ...any) {
	if e := l.zl.Debug(); e.Enabled() {
		e.Fields(keyValues).Msg(msg)
	}
}

// Info logs an info message.
func (l *Logger) Info(msg string, keyValues ...any) {
	l.zl.Info().Fields(keyValues).Msg(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string, keyValues ...any) {
	l.zl.Warn().Fields(keyValues).Msg(msg)
}

// Error logs a failure together with err.
func (l *Logger) Error(err error, msg string, keyValues ...any) {
	l.zl.Error().Err(err).Fields(keyValues).Msg(msg)
}
