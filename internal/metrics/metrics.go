package metrics

import (
	"sync"
	"time"
)

type runStats struct {
	assignments     int
	noOps           int
	unplaceable     int
	sequences       int
	pruned          int
	lastSearchTime  time.Duration
	lastLeagueScore float64
}

// Recorder captures lightweight, in-memory metrics about assignment runs.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats runStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{otel: otel}
}

// RecordAssignment tracks one player placement: the search cost, the branches
// explored/pruned, and whether the player landed, stayed put, or failed.
func (r *Recorder) RecordAssignment(outcome string, duration time.Duration, evaluated, pruned int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	switch outcome {
	case OutcomeNoOp:
		r.stats.noOps++
	case OutcomeUnplaceable:
		r.stats.unplaceable++
	default:
		r.stats.assignments++
	}
	r.stats.sequences += evaluated
	r.stats.pruned += pruned
	r.stats.lastSearchTime = duration
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAssignment(outcome, duration, evaluated, pruned)
	}
}

// RecordLeagueScore stores the latest composite score.
func (r *Recorder) RecordLeagueScore(score float64) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.stats.lastLeagueScore = score
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLeagueScore(score)
	}
}

// Snapshot is a copy of the current run counters.
type Snapshot struct {
	Assignments     int
	NoOps           int
	Unplaceable     int
	Sequences       int
	Pruned          int
	LastSearchTime  time.Duration
	LastLeagueScore float64
}

// Snapshot returns a copy of the current stats.
func (r *Recorder) Snapshot() Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		Assignments:     r.stats.assignments,
		NoOps:           r.stats.noOps,
		Unplaceable:     r.stats.unplaceable,
		Sequences:       r.stats.sequences,
		Pruned:          r.stats.pruned,
		LastSearchTime:  r.stats.lastSearchTime,
		LastLeagueScore: r.stats.lastLeagueScore,
	}
}

// Assignments returns the number of committed placements recorded.
func (r *Recorder) Assignments() int {
	return r.Snapshot().Assignments
}

// SequencesEvaluated returns the total move sequences scored.
func (r *Recorder) SequencesEvaluated() int {
	return r.Snapshot().Sequences
}

// BranchesPruned returns the total infeasible branches discarded.
func (r *Recorder) BranchesPruned() int {
	return r.Snapshot().Pruned
}
