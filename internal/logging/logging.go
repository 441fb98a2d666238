// Package logging writes run logs to a timestamped file and the console.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes "<timestamp> - <level> - <message>" lines to every
// configured destination. Safe for use from a single goroutine; the mutex
// only guards against interleaving if that ever changes.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	file *os.File
	path string
	now  func() time.Time
}

// Setup creates the log directory if needed and opens a log file named
// ticket_update_<YYYYMMDD>_<HHMMSS>.log inside it. Every line goes to both
// the file and the console.
func Setup(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	name := fmt.Sprintf("ticket_update_%s.log", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	l := &Logger{
		out:  io.MultiWriter(f, os.Stdout),
		file: f,
		path: abs,
		now:  time.Now,
	}
	l.Infof("log file location: %s", abs)
	return l, nil
}

// New returns a logger writing to w only. Used by tests and callers that
// manage their own destinations.
func New(w io.Writer) *Logger {
	return &Logger{out: w, now: time.Now}
}

// Path returns the absolute path of the log file, or "" for writer-only
// loggers.
func (l *Logger) Path() string { return l.path }

// Infof logs an INFO line.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write("INFO", format, args...)
}

// Errorf logs an ERROR line.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write("ERROR", format, args...)
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s - %s - %s\n",
		l.now().Format("2006-01-02 15:04:05"), level, fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
