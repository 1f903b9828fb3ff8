// Package logger configures the operator-facing log of the fsd tool.
// Diagnostics about definitions are not logged; they are rendered by diagfmt.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// EnvLevel names the environment variable consulted when no level flag is given.
const EnvLevel = "FSD_LOG_LEVEL"

// Logger is the global logger instance.
var Logger = newLogger(os.Stderr, log.WarnLevel)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New(w)
	l.SetTimeFormat("")
	l.SetLevel(level)
	return l
}

// Configure sets the level and output of the global logger.
// Precedence: level argument, then FSD_LOG_LEVEL, then "warn".
// An empty file logs to stderr. The returned closer releases the log file.
func Configure(level, file string) (io.Closer, error) {
	if level == "" {
		level = os.Getenv(EnvLevel)
	}

	var output io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, err
		}
		output, closer = f, f
	}

	Logger = newLogger(output, ParseLevel(level))
	return closer, nil
}

// SetOutput redirects the global logger, keeping its level. Used by tests.
func SetOutput(w io.Writer) {
	Logger = newLogger(w, Logger.GetLevel())
}

// ParseLevel converts a level name; unknown names mean "warn".
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.WarnLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg any, keyvals ...any) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg any, keyvals ...any) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg any, keyvals ...any) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg any, keyvals ...any) {
	Logger.Error(msg, keyvals...)
}

// Component returns a logger for one part of the tool ("parser", "driver", ...),
// sharing the global output and level.
func Component(prefix string) *log.Logger {
	styles := log.DefaultStyles()
	styles.Keys["file"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	l := Logger.WithPrefix(prefix)
	l.SetStyles(styles)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
