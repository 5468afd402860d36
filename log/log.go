package log

import (
	"io"
	"log/slog"
	"os"
)

// DebugEnv enables debug logging when set to a non-empty value
const DebugEnv = "MINIGREP_DEBUG"

// Logger is the global logger instance
var Logger *slog.Logger

// InitLogger initializes the global logger on stderr.
// It sets the log level to Debug if MINIGREP_DEBUG is set
func InitLogger() {
	SetOutput(os.Stderr)
}

// SetOutput replaces the global logger with one writing to w.
// Matches are printed on stdout, so w should never be stdout.
func SetOutput(w io.Writer) {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     slog.LevelInfo,
	}

	if os.Getenv(DebugEnv) != "" {
		opts.Level = slog.LevelDebug
	}

	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
}

// init initializes the logger when the package is imported
func init() {
	InitLogger()
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
