package cli

import (
	"strings"

	"github.com/aaron-wade/gemlive/pkg/jsontime"
	"github.com/aaron-wade/gemlive/pkg/logstore"
)

// LogWriter implements io.Writer and captures log output into a session
// log store, notifying a channel for live display.
type LogWriter struct {
	store *logstore.Store
	ch    chan string
}

// NewLogWriter creates a new log writer backed by the given store.
func NewLogWriter(store *logstore.Store) *LogWriter {
	return &LogWriter{
		store: store,
		ch:    make(chan string, 100),
	}
}

// Write implements io.Writer.
// Handles multi-line input by splitting on newlines.
func (w *LogWriter) Write(p []byte) (n int, err error) {
	text := strings.TrimRight(string(p), "\n")
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		w.store.Append(logstore.Entry{
			Date:    jsontime.NowEpochMilli(),
			Type:    "app.log",
			Message: line,
		})

		// Non-blocking send to channel
		select {
		case w.ch <- line:
		default:
		}
	}
	return len(p), nil
}

// Channel returns the notification channel for new lines.
func (w *LogWriter) Channel() <-chan string {
	return w.ch
}
