package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes log entries to stderr.
type ConsoleOutput struct {
	mu sync.Mutex
}

// Write writes the formatted entry to stderr.
func (o *ConsoleOutput) Write(entry *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := os.Stderr.Write(formatted)
	return err
}

// WriterOutput writes log entries to an arbitrary io.Writer. Used by tests
// to capture log output.
type WriterOutput struct {
	W  io.Writer
	mu sync.Mutex
}

// Write writes the formatted entry to the underlying writer.
func (o *WriterOutput) Write(entry *Entry, formatted []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, err := o.W.Write(formatted)
	return err
}
