package testutil

import (
	"fmt"
	"sync"
)

// RecordingLogger captures formatted log lines for assertions.
type RecordingLogger struct {
	mu       sync.Mutex
	messages []string
}

// Logf matches the func(format string, args ...any) logger signature.
func (l *RecordingLogger) Logf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// Lines returns a copy of the captured lines.
func (l *RecordingLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.messages...)
}
