// Package logger provides verbose logging for the orgopen CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to show which catalog lookups a resolution made.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/apex/log"
)

var (
	mu      sync.RWMutex
	verbose bool
	out     = &handler{writer: os.Stderr}
	base    = &log.Logger{Handler: out, Level: log.DebugLevel}
	fields  = log.Fields{}
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	out.setOutput(w)
}

// SetField attaches key=value to every following message.
// An empty value removes the field.
func SetField(key string, value any) {
	mu.Lock()
	defer mu.Unlock()
	next := make(log.Fields, len(fields)+1)
	for k, v := range fields {
		next[k] = v
	}
	if value == nil || value == "" {
		delete(next, key)
	} else {
		next[key] = value
	}
	fields = next
}

func entry() *log.Entry {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return nil
	}
	return base.WithFields(fields)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	if e := entry(); e != nil {
		e.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		out.mu.Lock()
		defer out.mu.Unlock()
		fmt.Fprintf(out.writer, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	if e := entry(); e != nil {
		e.Infof(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	if e := entry(); e != nil {
		e.Warnf(format, args...)
	}
}
