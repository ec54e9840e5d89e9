package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Logger appends timestamped lines to a file. The TUI owns stdout, so
// diagnostics never go to the terminal. A nil *Logger discards everything.
type Logger struct {
	file  *os.File
	inner *log.Logger
	debug bool
}

// New opens (or creates) the log file at path. An empty path yields a nil
// Logger, which is safe to use.
func New(path string, debug bool) (*Logger, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	inner := log.New(os.Stderr, "", 0)
	f, err := tea.LogToFileWith(path, "", inner)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	inner.SetFlags(0)
	return &Logger{file: f, inner: inner, debug: debug}, nil
}

// Close releases the file handle.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Printf writes a single timestamped line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.inner == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	line = strings.TrimRight(line, "\n")
	l.inner.Printf("[%s] %s", time.Now().Format(time.RFC3339), line)
}

// Debugf is Printf gated on the debug flag.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil || !l.debug {
		return
	}
	l.Printf("debug: "+format, args...)
}
