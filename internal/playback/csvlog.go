// internal/playback/csvlog.go

package playback

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// CSVLog is a Sink that writes one CSV record per event.
type CSVLog struct {
	mu     sync.Mutex
	closer io.Closer
	w      *csv.Writer
	err    error
}

var csvHeader = []string{"timestamp", "session", "event", "algorithm", "cursor", "length", "occupant", "ready"}

// NewCSVLog writes the header and returns a log over w.
func NewCSVLog(w io.Writer) *CSVLog {
	l := &CSVLog{w: csv.NewWriter(w)}
	l.write(csvHeader)
	return l
}

// OpenCSVLog creates the file at path for CSV logging of events.
func OpenCSVLog(path string) (*CSVLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	l := NewCSVLog(f)
	l.closer = f
	return l, nil
}

// Emit implements Sink.
func (l *CSVLog) Emit(ev Event) {
	ready := make([]string, 0, len(ev.Ready))
	for _, q := range ev.Ready {
		ready = append(ready, fmt.Sprintf("%s:%d", q.Name, q.Remaining))
	}

	occupant := ""
	if ev.Kind == EventProgress {
		occupant = ev.Occupant.String()
	}

	l.write([]string{
		ev.Time.Format(time.RFC3339Nano),
		ev.Session,
		ev.Kind.String(),
		ev.Algorithm.String(),
		strconv.Itoa(ev.Cursor),
		strconv.Itoa(ev.Length),
		occupant,
		strings.Join(ready, " "),
	})
}

func (l *CSVLog) write(rec []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return
	}
	if err := l.w.Write(rec); err != nil {
		l.err = err
		return
	}
	l.w.Flush()
	l.err = l.w.Error()
}

// Err returns the first write error, if any.
func (l *CSVLog) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close flushes the log and closes the underlying file when it owns one.
func (l *CSVLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Flush()
	if l.closer != nil {
		if err := l.closer.Close(); err != nil && l.err == nil {
			l.err = err
		}
	}
	return l.err
}
