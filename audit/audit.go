package audit

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

const lineTimeLayout = "2006-01-02 15:04:05"

// Logger is the audit capability handed to each upstream source. Alerts are
// best-effort: a sink failure is logged and swallowed so it can never fail a
// compliance check.
type Logger interface {
	Alert(message string)
}

// FileLogger appends audit entries to a single file, one `[timestamp] message`
// line per alert. The file is opened per write and the append is held under a
// mutex so concurrent alerts never interleave partial lines.
type FileLogger struct {
	mu   sync.Mutex
	path string
}

// NewFileLogger returns a file-backed audit logger writing to path
func NewFileLogger(path string) *FileLogger {
	return &FileLogger{path: path}
}

// Alert appends one audit line to the file
func (l *FileLogger) Alert(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		zap.S().Errorw("failed to open audit log", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", time.Now().Format(lineTimeLayout), message); err != nil {
		zap.S().Errorw("failed to append audit entry", "path", l.path, "error", err)
	}
}

// Rotate moves the current file aside under a date suffix so a fresh file
// starts on the next alert. Called by the scheduler once a day.
func (l *FileLogger) Rotate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := os.Stat(l.path); os.IsNotExist(err) {
		return nil
	}
	rotated := fmt.Sprintf("%s.%s", l.path, time.Now().UTC().Format("2006-01-02"))
	return os.Rename(l.path, rotated)
}

// Multi fans an alert out to every configured sink
type Multi []Logger

// Alert sends the message to each sink in order
func (m Multi) Alert(message string) {
	for _, l := range m {
		l.Alert(message)
	}
}

// Nop discards all alerts, used in tests
type Nop struct{}

// Alert does nothing
func (Nop) Alert(string) {}
