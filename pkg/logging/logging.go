// Package logging builds the structured logger shared by chrono components.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when the configured level is empty or unknown.
const DefaultLevel = log.WarnLevel

// New returns a logger writing to w at the named level. Unknown levels fall
// back to DefaultLevel rather than failing startup.
func New(w io.Writer, level string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "chrono",
		Level:  ParseLevel(level),
	})
}

// ParseLevel maps a config string to a log level.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return DefaultLevel
	}
	return lvl
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
