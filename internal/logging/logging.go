package logging

import (
	"io"
	"sync"

	clog "github.com/charmbracelet/log"
)

// Sink accepts informational text messages. Fire-and-forget: callers never
// inspect a result, and the sink's durability is its own concern.
type Sink interface {
	Info(msg string)
}

// logSink wraps a charmbracelet logger as a Sink.
type logSink struct {
	logger *clog.Logger
}

// New returns a Sink writing styled log lines to w.
func New(w io.Writer) Sink {
	return &logSink{
		logger: clog.NewWithOptions(w, clog.Options{
			ReportTimestamp: true,
		}),
	}
}

func (s *logSink) Info(msg string) {
	s.logger.Info(msg)
}

// Memory captures messages in order. Used by tests and by CLI commands that
// replay captured monitoring output after rendering.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

func (m *Memory) Info(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, msg)
}

// Lines returns a copy of all captured messages.
func (m *Memory) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}
