// Package diag configures process diagnostics. Standard output carries the MCP
// stream, so everything here goes to standard error.
package diag

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level or an unknown level is configured.
const DefaultLevel = zerolog.InfoLevel

// New returns a zerolog logger writing JSON lines to w (stderr when nil).
func New(level string, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("component", "beatport-mcp").
		Logger()
}

// ParseLevel maps a textual level to zerolog, falling back to DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		return DefaultLevel
	}
	if level == "warning" {
		level = "warn"
	}
	ret, err := zerolog.ParseLevel(level)
	if err != nil || ret == zerolog.NoLevel {
		return DefaultLevel
	}
	return ret
}
