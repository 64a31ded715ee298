// Package logger provides structured logging configuration with support for development and production environments.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	// Format types for logging.
	formatJSON   = "json"
	formatPretty = "pretty"
	formatLogfmt = "logfmt"
)

// Logger wraps slog.Logger with additional functionality.
type Logger struct {
	*slog.Logger
}

// Config holds logger configuration.
type Config struct {
	Writer      io.Writer
	Format      string
	Environment string
	Level       slog.Level
	AddSource   bool
}

// New creates a new logger with the given configuration.
func New(cfg Config) *Logger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	// Auto-detect format based on environment and terminal if not specified.
	if cfg.Format == "" {
		cfg.Format = detectFormat(cfg.Environment, cfg.Writer)
	}

	var handler slog.Handler
	switch cfg.Format {
	case formatJSON:
		handler = slog.NewJSONHandler(cfg.Writer, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				// Shorten source file paths.
				if a.Key == slog.SourceKey {
					if source, ok := a.Value.Any().(*slog.Source); ok {
						source.File = filepath.Base(source.File)
					}
				}
				return a
			},
		})
	case formatLogfmt:
		handler = newCharmHandler(cfg, charmlog.LogfmtFormatter)
	default:
		handler = newCharmHandler(cfg, charmlog.TextFormatter)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// newCharmHandler builds a charmbracelet/log handler. Its levels share
// slog's numeric values so the configured level carries over directly.
func newCharmHandler(cfg Config, formatter charmlog.Formatter) slog.Handler {
	return charmlog.NewWithOptions(cfg.Writer, charmlog.Options{
		Level:           charmlog.Level(cfg.Level),
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		ReportCaller:    cfg.AddSource,
		Formatter:       formatter,
	})
}

// detectFormat picks JSON for production, colored text for terminals and
// logfmt for everything else (pipes, files, service managers).
func detectFormat(environment string, w io.Writer) string {
	if environment == "production" {
		return formatJSON
	}
	if isTerminal(w) {
		return formatPretty
	}
	return formatLogfmt
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel converts a string to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Helper methods for common logging patterns.

// WithError adds an error attribute to the logger.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.With(slog.String("error", err.Error())),
	}
}

// WithField adds a single field to the logger.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{
		Logger: l.With(slog.Any(key, value)),
	}
}

// WithFields adds multiple fields to the logger.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return &Logger{
		Logger: l.With(args...),
	}
}
