package driver

import (
	"sync"
	"time"
)

// Status is a difficulty's lifecycle stage.
type Status int

const (
	Pending Status = iota
	Running
	Done
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// StatsView is an immutable snapshot of a Stats record, safe to hand
// to a reader (dashboard, log line) without any lock.
type StatsView struct {
	Engine, Difficulty string
	Target             int
	Generated          int
	Attempts           int
	Failures           int
	Start, End         time.Time
	Status             Status
}

// Stats is the per-difficulty statistics record of §3: every field is
// mutated only while mu is held, so a reader taking the lock to copy
// out a StatsView always sees a consistent cross-section.
type Stats struct {
	mu sync.Mutex

	engine, difficulty string
	target             int
	generated          int
	attempts           int
	failures           int
	start, end         time.Time
	status             Status
	stop               bool
}

func newStats(engine, difficulty string, target int) *Stats {
	return &Stats{engine: engine, difficulty: difficulty, target: target, status: Pending}
}

func (s *Stats) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Running
	s.start = time.Now()
}

func (s *Stats) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = Done
	s.end = time.Now()
}

// shouldStop is the poll every worker makes at least once per attempt
// (§5): generated reaching target, the per-difficulty stop flag, or
// the caller-observed global interrupt all end the worker loop.
func (s *Stats) shouldStop(interrupted bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generated >= s.target || s.stop || interrupted
}

func (s *Stats) setStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop = true
}

func (s *Stats) recordAttempt(success bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if success {
		s.generated++
	} else {
		s.failures++
	}
}

func (s *Stats) snapshot() StatsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StatsView{
		Engine:     s.engine,
		Difficulty: s.difficulty,
		Target:     s.target,
		Generated:  s.generated,
		Attempts:   s.attempts,
		Failures:   s.failures,
		Start:      s.start,
		End:        s.end,
		Status:     s.status,
	}
}
