// Package logger provides the logging abstraction used by the bulkget
// CLI. Backends exist for console/file output, for discarding output in
// quiet mode, and for recording calls in tests; MultiLogger fans a
// message out to several backends at once.
package logger

import (
	"fmt"
	"io"
	"log"
	"sync"
)

// Logger is the interface every bulkget component logs through.
type Logger interface {
	// Info logs an informational message (e.g. "batch finished").
	Info(format string, args ...interface{})

	// Warning logs a warning message (e.g. "retry attempt 2/3").
	Warning(format string, args ...interface{})

	// Error logs an error message (e.g. "download failed: 404").
	Error(format string, args ...interface{})

	// Close releases resources held by the logger (e.g. a log file).
	// Safe to call multiple times; returns nil for resource-free
	// backends.
	Close() error
}

// StandardLogger writes leveled lines through a stdlib *log.Logger.
// Used for console output and, via NewFileLogger, for log files.
type StandardLogger struct {
	logger *log.Logger
	closer io.Closer
	once   sync.Once
}

// New creates a StandardLogger writing to w.
func New(w io.Writer) *StandardLogger {
	return &StandardLogger{
		logger: log.New(w, "", log.LstdFlags),
	}
}

// NewFileLogger creates a StandardLogger that owns wc and closes it
// when the logger is closed.
func NewFileLogger(wc io.WriteCloser) *StandardLogger {
	l := New(wc)
	l.closer = wc
	return l
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close closes the underlying writer when the logger owns one.
func (s *StandardLogger) Close() (err error) {
	s.once.Do(func() {
		if s.closer != nil {
			err = s.closer.Close()
		}
	})
	return
}

// NopLogger discards all messages. Used in quiet mode and in tests
// that don't assert on logging.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger { return &NopLogger{} }

func (n *NopLogger) Info(format string, args ...interface{})    {}
func (n *NopLogger) Warning(format string, args ...interface{}) {}
func (n *NopLogger) Error(format string, args ...interface{})   {}
func (n *NopLogger) Close() error                               { return nil }

// Recorder implements Logger for tests, recording every formatted call.
type Recorder struct {
	mu           sync.Mutex
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Info(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.InfoCalls = append(r.InfoCalls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Warning(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.WarningCalls = append(r.WarningCalls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Error(format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ErrorCalls = append(r.ErrorCalls, fmt.Sprintf(format, args...))
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.CloseCalled = true
	return nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
	_ Logger = (*Recorder)(nil)
)
