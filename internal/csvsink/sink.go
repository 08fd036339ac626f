// Package csvsink implements the flat CSV output side of the
// pipeline: a header written once per output file and one
// file-lock-serialized append per accepted board.
package csvsink

import (
	"fmt"
	"os"
	"sync"
)

// Sink serializes appends to a single CSV file behind one mutex, the
// file lock of §5: held only across the write of one row, so it never
// blocks a worker for longer than one append.
type Sink struct {
	path string
	mu   sync.Mutex
}

// New returns a Sink bound to path. It does not touch the file until
// WriteHeader or WriteRow is called.
func New(path string) *Sink {
	return &Sink{path: path}
}

// WriteHeader writes "difficulty,seed,score,<engineHeader>\n" unless
// append is true and the file already exists, in which case it does
// nothing — the existing header is trusted as-is.
func (s *Sink) WriteHeader(engineHeader string, appendMode bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if appendMode {
		if _, err := os.Stat(s.path); err == nil {
			return nil
		}
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("csvsink: open header for %s: %w", s.path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "difficulty,seed,score,%s\n", engineHeader)
	if err != nil {
		return fmt.Errorf("csvsink: write header to %s: %w", s.path, err)
	}
	return nil
}

// WriteRow appends one accepted board's row. score is formatted with
// exactly one digit after the decimal point; payload may be empty.
func (s *Sink) WriteRow(difficulty string, seed uint32, score float64, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("csvsink: open for append %s: %w", s.path, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s,%d,%.1f,%s\n", difficulty, seed, score, payload)
	if err != nil {
		return fmt.Errorf("csvsink: write row to %s: %w", s.path, err)
	}
	return nil
}
