package metrics

import (
	"testing"
	"time"
)

func TestRecorderTracksAssignments(t *testing.T) {
	rec := NewRecorder()
	rec.RecordAssignment(OutcomePlaced, 10*time.Millisecond, 12, 3)
	rec.RecordAssignment(OutcomePlaced, 15*time.Millisecond, 8, 1)
	rec.RecordAssignment(OutcomeNoOp, time.Millisecond, 0, 0)
	rec.RecordAssignment(OutcomeUnplaceable, 2*time.Millisecond, 0, 6)

	if got := rec.Assignments(); got != 2 {
		t.Fatalf("expected 2 placements, got %d", got)
	}
	if got := rec.SequencesEvaluated(); got != 20 {
		t.Fatalf("expected 20 sequences, got %d", got)
	}
	if got := rec.BranchesPruned(); got != 10 {
		t.Fatalf("expected 10 pruned branches, got %d", got)
	}

	snap := rec.Snapshot()
	if snap.NoOps != 1 || snap.Unplaceable != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastSearchTime != 2*time.Millisecond {
		t.Fatalf("expected last search time 2ms, got %s", snap.LastSearchTime)
	}
}

func TestRecorderTracksLeagueScore(t *testing.T) {
	rec := NewRecorder()
	rec.RecordLeagueScore(0.82)

	if got := rec.Snapshot().LastLeagueScore; got != 0.82 {
		t.Fatalf("expected league score 0.82, got %v", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordAssignment(OutcomePlaced, time.Millisecond, 1, 0)
	rec.RecordLeagueScore(1)
	if snap := rec.Snapshot(); snap.Assignments != 0 {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", snap)
	}
}
