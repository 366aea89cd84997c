// Package obslog wires up the engine's structured logger: zerolog, in
// pretty console form on a terminal and newline-delimited JSON otherwise,
// at a configurable level.
//
// Grounded on the zerolog call idiom found across the example pack
// (logger.With()...Logger(), then Debug()/Trace()/Warn()...Msg(...)
// chains); this package only owns construction, not the call sites —
// discover.Builder and the rest take a zerolog.Logger and log through it
// directly.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds a logger at level (parsed by zerolog.ParseLevel; invalid or
// empty falls back to InfoLevel) writing to w in format ("console" for a
// human-readable writer, anything else for JSON lines).
func New(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = w
	if format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Default builds a logger writing to stderr: console format when stderr is
// a terminal, JSON lines otherwise — the same auto-detection convention
// cobra/viper-based CLIs in the pack apply to their own output streams.
func Default(level string) zerolog.Logger {
	format := "json"
	if isTerminal(os.Stderr) {
		format = "console"
	}

	return New(level, format, os.Stderr)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}

	return (fi.Mode() & os.ModeCharDevice) != 0
}
