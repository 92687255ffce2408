package assign

import (
	"context"
	"errors"
	"testing"

	"league-former/internal/domain"
	"league-former/internal/metrics"
	"league-former/internal/schedule"
	"league-former/internal/search"
	"league-former/internal/snapshots"
	"league-former/internal/store"
)

func team(t *testing.T, name, day, loc string) *domain.Team {
	t.Helper()
	tm, err := domain.NewTeam(name, day, loc)
	if err != nil {
		t.Fatalf("expected team to build, got %v", err)
	}
	return tm
}

func player(id, skill int) *domain.Player {
	return &domain.Player{
		ID:          id,
		FirstName:   "P",
		LastName:    "L",
		Grade:       3,
		Skill:       skill,
		GoalieSkill: 6,
	}
}

func record(p *domain.Player, teamName string) snapshots.PlayerRecord {
	return snapshots.PlayerRecord{Player: p, TeamName: teamName}
}

func TestBuildLeagueSeedsAndScores(t *testing.T) {
	teams := []*domain.Team{
		team(t, "Red", "M", "Danehy"),
		team(t, "Blue", "T", "Ahern"),
	}
	records := []snapshots.PlayerRecord{
		record(player(1, 4), "Red"),
		record(player(2, 5), ""),
	}

	league, err := BuildLeague(teams, records, map[string]float64{"size": 1})
	if err != nil {
		t.Fatalf("expected league to build, got %v", err)
	}
	if league.AvailableCount() != 1 {
		t.Fatalf("expected 1 available player, got %d", league.AvailableCount())
	}
	if got := league.Score(); got <= 0 {
		t.Fatalf("expected positive score, got %v", got)
	}
}

func TestBuildLeagueRejectsUnknownTeam(t *testing.T) {
	teams := []*domain.Team{team(t, "Red", "M", "Danehy")}
	records := []snapshots.PlayerRecord{record(player(1, 4), "Green")}

	if _, err := BuildLeague(teams, records, map[string]float64{"size": 1}); err == nil {
		t.Fatalf("expected error for unknown team")
	}
}

func TestRunDrainsPool(t *testing.T) {
	teams := []*domain.Team{
		team(t, "Red", "M", "Danehy"),
		team(t, "Blue", "T", "Ahern"),
	}
	records := []snapshots.PlayerRecord{
		record(player(1, 2), ""),
		record(player(2, 3), ""),
		record(player(3, 5), ""),
		record(player(4, 8), ""),
	}
	league, err := BuildLeague(teams, records, map[string]float64{"size": 1})
	if err != nil {
		t.Fatalf("expected league to build, got %v", err)
	}

	recorder := metrics.NewRecorder()
	progress := store.NewProgressStore()
	svc := NewService(league, 1, nil, recorder, progress)

	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	if league.AvailableCount() != 0 {
		t.Fatalf("expected drained pool, got %d left", league.AvailableCount())
	}
	for _, tm := range league.Teams() {
		if tm.Size() != 2 {
			t.Fatalf("expected balanced teams, got %s=%d", tm.Name, tm.Size())
		}
	}

	snap := recorder.Snapshot()
	if snap.Assignments != 4 {
		t.Fatalf("expected 4 placements, got %d", snap.Assignments)
	}
	if snap.LastLeagueScore != 1 {
		t.Fatalf("expected final score 1, got %v", snap.LastLeagueScore)
	}

	got := progress.Snapshot()
	if !got.Done || got.Remaining != 0 || got.Assigned != 4 {
		t.Fatalf("unexpected final progress %+v", got)
	}
}

func TestRunLockedPlayerIsNoOp(t *testing.T) {
	teams := []*domain.Team{
		team(t, "Red", "M", "Danehy"),
		team(t, "Blue", "T", "Ahern"),
	}
	locked := player(1, 4)
	locked.Lock = true
	records := []snapshots.PlayerRecord{record(locked, "Red")}
	league, err := BuildLeague(teams, records, map[string]float64{"size": 1})
	if err != nil {
		t.Fatalf("expected league to build, got %v", err)
	}

	recorder := metrics.NewRecorder()
	svc := NewService(league, 1, nil, recorder, nil)
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}
	if got := recorder.Snapshot().Assignments; got != 0 {
		t.Fatalf("expected 0 placements for empty pool, got %d", got)
	}
}

func TestRunReportsUnplaceable(t *testing.T) {
	teams := []*domain.Team{team(t, "Red", "M", "Danehy")}
	stuck := player(1, 4)
	stuck.UnavailableDays = schedule.Days("M")
	records := []snapshots.PlayerRecord{record(stuck, "")}
	league, err := BuildLeague(teams, records, map[string]float64{"size": 1})
	if err != nil {
		t.Fatalf("expected league to build, got %v", err)
	}

	recorder := metrics.NewRecorder()
	svc := NewService(league, 1, nil, recorder, nil)
	err = svc.Run(context.Background())
	if err == nil {
		t.Fatalf("expected unplaceable error")
	}
	var unplaceable *search.UnplaceableError
	if !errors.As(err, &unplaceable) {
		t.Fatalf("expected UnplaceableError, got %v", err)
	}
	if got := recorder.Snapshot().Unplaceable; got != 1 {
		t.Fatalf("expected 1 unplaceable, got %d", got)
	}
}

func TestRunHonorsContext(t *testing.T) {
	teams := []*domain.Team{team(t, "Red", "M", "Danehy")}
	records := []snapshots.PlayerRecord{record(player(1, 4), "")}
	league, err := BuildLeague(teams, records, map[string]float64{"size": 1})
	if err != nil {
		t.Fatalf("expected league to build, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewService(league, 1, nil, nil, nil)
	if err := svc.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
