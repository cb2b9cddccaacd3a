// Package logger provides the shared application logger.
//
// Call sites pass a message plus alternating key/value pairs.
package logger

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

var log = hclog.New(&hclog.LoggerOptions{
	Name:   "organizer",
	Level:  hclog.Info,
	Output: os.Stderr,
})

// SetLevel changes the global log level. Unknown level strings are ignored.
func SetLevel(level string) {
	if parsed := hclog.LevelFromString(level); parsed != hclog.NoLevel {
		log.SetLevel(parsed)
	}
}

// Info logs informational messages
func Info(msg string, args ...interface{}) {
	log.Info(msg, args...)
}

// Warn logs warning messages
func Warn(msg string, args ...interface{}) {
	log.Warn(msg, args...)
}

// Error logs error messages
func Error(msg string, args ...interface{}) {
	log.Error(msg, args...)
}

// Debug logs debug messages
func Debug(msg string, args ...interface{}) {
	log.Debug(msg, args...)
}
