// Package logging writes diagnostic logs for artifactmaker components.
// User-facing messages are printed by the commands themselves; this log is
// for details that help when something went wrong after the fact.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	sessionID     string
	sessionIDOnce sync.Once
)

// SessionID returns the id shared by every logger in this process.
func SessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// Logger writes leveled lines tagged with a component name.
// A nil *Logger is valid and discards everything.
type Logger struct {
	component string
	logger    *log.Logger
	file      *os.File
	logPath   string
	mu        sync.Mutex
	closeOnce sync.Once
}

// New creates a logger for component writing to
// <dir>/<session-id>-artifactmaker.log. Loggers in the same process share
// the file. When the directory or file cannot be opened the returned logger
// writes to stderr and the error is returned alongside it.
func New(dir, component string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		err = fmt.Errorf("failed to create log directory: %w", err)
		return newFallback(component, err), err
	}

	logPath := filepath.Join(dir, SessionID()+"-artifactmaker.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		err = fmt.Errorf("failed to open log file: %w", err)
		return newFallback(component, err), err
	}

	return &Logger{
		component: component,
		logger:    log.New(file, "", 0),
		file:      file,
		logPath:   logPath,
	}, nil
}

// NewWriter creates a logger writing to w.
func NewWriter(w io.Writer, component string) *Logger {
	return &Logger{
		component: component,
		logger:    log.New(w, "", 0),
	}
}

// Nop returns a logger that discards all output.
func Nop() *Logger {
	return NewWriter(io.Discard, "")
}

func newFallback(component string, cause error) *Logger {
	l := NewWriter(os.Stderr, component)
	l.Warnf("file logging unavailable, using stderr: %v", cause)
	return l
}

// With returns a logger for another component sharing the same output.
func (l *Logger) With(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		component: component,
		logger:    l.logger,
		logPath:   l.logPath,
	}
}

func (l *Logger) write(level, format string, v ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", ts, l.component, level, fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message
func (l *Logger) Debugf(format string, v ...any) { l.write("DEBUG", format, v...) }

// Infof logs an info-level message
func (l *Logger) Infof(format string, v ...any) { l.write("INFO", format, v...) }

// Warnf logs a warning-level message
func (l *Logger) Warnf(format string, v ...any) { l.write("WARN", format, v...) }

// Errorf logs an error-level message
func (l *Logger) Errorf(format string, v ...any) { l.write("ERROR", format, v...) }

// LogPath returns the log file path, or "" when not logging to a file.
func (l *Logger) LogPath() string {
	if l == nil {
		return ""
	}
	return l.logPath
}

// Close closes the log file. Safe to call multiple times.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	var err error
	l.closeOnce.Do(func() {
		if l.file != nil {
			err = l.file.Close()
		}
	})
	return err
}
