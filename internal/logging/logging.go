// Package logging builds the zerolog loggers used across the CLI and TUI
// layers. The estimation engine itself stays log-free; only the surfaces
// around it emit events.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output format names accepted by Config.Format.
const (
	// FormatConsole renders human-readable coloured output.
	FormatConsole = "console"

	// FormatJSON renders one JSON event per line.
	FormatJSON = "json"
)

// logFilePerm restricts log files to the owning user.
const logFilePerm = 0600

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name: trace, debug, info, warn, error.
	Level string

	// Format selects FormatConsole or FormatJSON.
	Format string

	// File is an optional log file path. Empty means stderr.
	File string

	// NoColor disables ANSI colour in console output.
	NoColor bool
}

// LogPathResult carries the constructed logger together with where its
// output actually went, so callers can tell the user when a file was
// requested but stderr had to be used instead.
type LogPathResult struct {
	// Logger is the configured root logger.
	Logger zerolog.Logger

	// UsingFile is true when output goes to FilePath.
	UsingFile bool

	// FilePath is the open log file path when UsingFile is set.
	FilePath string

	// FallbackUsed is true when a requested file could not be opened.
	FallbackUsed bool

	// FallbackReason explains the fallback.
	FallbackReason string

	file *os.File
}

// Close releases the log file handle, if any.
func (r *LogPathResult) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger writing to stderr (or cfg.File when set, falling back
// silently to stderr on open failure). Prefer NewLoggerWithPath when the
// caller needs to report that fallback.
func New(cfg Config) zerolog.Logger {
	return NewLoggerWithPath(cfg).Logger
}

// NewLoggerWithPath builds a logger per cfg and reports where output went.
//
// Unknown level names fall back to info rather than failing: logging
// misconfiguration should never stop an estimate.
func NewLoggerWithPath(cfg Config) LogPathResult {
	result := LogPathResult{}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFilePerm)
		if err != nil {
			result.FallbackUsed = true
			result.FallbackReason = err.Error()
		} else {
			out = file
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = file
		}
	}

	if strings.EqualFold(cfg.Format, FormatConsole) || cfg.Format == "" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor || result.UsingFile,
		}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	result.Logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	return result
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// PrintLogPathMessage tells the user where log output is going.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}

// PrintFallbackWarning tells the user a log file could not be used.
func PrintFallbackWarning(w io.Writer, reason string) {
	_, _ = fmt.Fprintf(w, "Warning: could not open log file (%s), logging to stderr\n", reason)
}
