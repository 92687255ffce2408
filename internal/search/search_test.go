package search

import (
	"errors"
	"math"
	"testing"

	"league-former/internal/domain"
	"league-former/internal/scoring"
)

const tolerance = 1e-9

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

func buildLeague(t *testing.T, weights map[string]float64, seeds map[*domain.Player]string, teams ...*domain.Team) *domain.League {
	t.Helper()
	league, err := domain.NewLeague(teams)
	if err != nil {
		t.Fatalf("expected league to build, got %v", err)
	}
	all := make([]*domain.Player, 0, len(seeds))
	for p, name := range seeds {
		if err := league.Place(p, name); err != nil {
			t.Fatalf("expected seed to succeed, got %v", err)
		}
		all = append(all, p)
	}
	composite, err := scoring.NewComposite(all, teams, weights)
	if err != nil {
		t.Fatalf("expected composite to build, got %v", err)
	}
	league.SetScorer(composite)
	return league
}

func assignAll(t *testing.T, league *domain.League, depth int) {
	t.Helper()
	for {
		p, ok := league.NextPlayer()
		if !ok {
			return
		}
		moves, _, err := FindBestMoves(p, league, depth)
		if err != nil {
			t.Fatalf("expected placement for %s, got %v", p.Name(), err)
		}
		league.Apply(moves)
	}
}

func TestSizeParityEndToEnd(t *testing.T) {
	// 6 interchangeable players over 3 teams with only the size criterion:
	// every team ends with exactly 2 players and the score is perfect.
	teams := []*domain.Team{
		team(t, "Red", "M", "Ahern"),
		team(t, "Blue", "T", "Common"),
		team(t, "Green", "W", "Danehy"),
	}
	seeds := make(map[*domain.Player]string)
	for id := 1; id <= 6; id++ {
		seeds[player(id, 5)] = ""
	}
	league := buildLeague(t, map[string]float64{"size": 1}, seeds, teams...)

	assignAll(t, league, 1)

	for _, tm := range teams {
		if tm.Size() != 2 {
			t.Fatalf("expected team %s to end with 2 players, got %d", tm.Name, tm.Size())
		}
	}
	if got := league.Score(); got != 1 {
		t.Fatalf("expected final size score 1, got %v", got)
	}
}

func TestUnavailableDayNeverSelected(t *testing.T) {
	a := team(t, "A", "M", "Ahern")
	b := team(t, "B", "T", "Common")
	x := player(1, 5)
	x.UnavailableDays = "M"
	league := buildLeague(t, scoring.DefaultWeights(), map[*domain.Player]string{x: ""}, a, b)

	moves, _, err := FindBestMoves(x, league, 2)
	if err != nil {
		t.Fatalf("expected placement, got %v", err)
	}
	league.Apply(moves)

	if league.TeamOf(x) != b {
		t.Fatalf("expected X on team B, got %v", league.TeamOf(x))
	}
}

func TestLockedPlayerOnValidTeamStaysPut(t *testing.T) {
	a := team(t, "A", "M", "Ahern")
	b := team(t, "B", "T", "Common")
	y := player(1, 5)
	y.Lock = true
	league := buildLeague(t, scoring.DefaultWeights(), map[*domain.Player]string{y: "A"}, a, b)

	moves, stats, err := FindBestMoves(y, league, 2)
	if err != nil {
		t.Fatalf("expected no-op result, got %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("expected empty move list for locked player, got %v", moves)
	}
	if stats.Evaluated != 0 {
		t.Fatalf("expected no evaluation for locked player, got %d", stats.Evaluated)
	}
	if league.TeamOf(y) != a {
		t.Fatalf("expected Y to remain on team A")
	}
}

func TestLockedPlayerOnViolatingTeamMayMove(t *testing.T) {
	a := team(t, "A", "M", "Ahern")
	b := team(t, "B", "T", "Common")
	y := player(1, 5)
	y.Lock = true
	y.UnavailableDays = "M" // current team A now violates
	league := buildLeague(t, scoring.DefaultWeights(), map[*domain.Player]string{y: "A"}, a, b)

	moves, _, err := FindBestMoves(y, league, 1)
	if err != nil {
		t.Fatalf("expected reassignment, got %v", err)
	}
	league.Apply(moves)
	if league.TeamOf(y) != b {
		t.Fatalf("expected locked player to escape violating team to B")
	}
}

func TestUnplaceablePlayerIsFatal(t *testing.T) {
	a := team(t, "A", "M", "Ahern")
	b := team(t, "B", "M", "Common")
	x := player(1, 5)
	x.UnavailableDays = "M"
	league := buildLeague(t, scoring.DefaultWeights(), map[*domain.Player]string{x: ""}, a, b)

	_, _, err := FindBestMoves(x, league, 2)
	var unplaceable *UnplaceableError
	if !errors.As(err, &unplaceable) {
		t.Fatalf("expected UnplaceableError, got %v", err)
	}
	if unplaceable.Player != x {
		t.Fatalf("expected error to carry the player")
	}
}

func TestSearchLeavesLeagueUntouched(t *testing.T) {
	a := team(t, "A", "M", "Ahern")
	b := team(t, "B", "T", "Common")
	fixed := player(2, 8)
	x := player(1, 3)
	league := buildLeague(t, scoring.DefaultWeights(), map[*domain.Player]string{x: "", fixed: "A"}, a, b)

	before := league.Score()
	if _, _, err := FindBestMoves(x, league, 2); err != nil {
		t.Fatalf("expected search to succeed, got %v", err)
	}

	if got := league.Score(); math.Abs(got-before) > tolerance {
		t.Fatalf("expected league score unchanged (%v), got %v", before, got)
	}
	if league.TeamOf(x) != nil || league.AvailableCount() != 1 {
		t.Fatalf("expected x still pooled after search")
	}
	if !a.Has(2) || a.Size() != 1 || b.Size() != 0 {
		t.Fatalf("expected rosters unchanged after search")
	}
}

func TestDeeperSearchNeverScoresWorse(t *testing.T) {
	teams := []*domain.Team{
		team(t, "Red", "M", "Ahern"),
		team(t, "Blue", "T", "Common"),
	}
	seeds := map[*domain.Player]string{
		player(1, 1):  "Red",
		player(2, 9):  "Red",
		player(3, 5):  "Blue",
		player(4, 10): "",
	}
	var mover *domain.Player
	for p := range seeds {
		if p.ID == 4 {
			mover = p
		}
	}
	league := buildLeague(t, scoring.DefaultWeights(), seeds, teams...)

	_, shallow, err := FindBestMoves(mover, league, 1)
	if err != nil {
		t.Fatalf("expected depth-1 search to succeed, got %v", err)
	}
	_, deep, err := FindBestMoves(mover, league, 2)
	if err != nil {
		t.Fatalf("expected depth-2 search to succeed, got %v", err)
	}

	if deep.BestScore+tolerance < shallow.BestScore {
		t.Fatalf("expected depth-2 best %v >= depth-1 best %v", deep.BestScore, shallow.BestScore)
	}
	if deep.Evaluated < shallow.Evaluated {
		t.Fatalf("expected deeper search to evaluate at least as many sequences")
	}
}

func TestDepthBelowOneRejected(t *testing.T) {
	a := team(t, "A", "M", "Ahern")
	x := player(1, 5)
	league := buildLeague(t, scoring.DefaultWeights(), map[*domain.Player]string{x: ""}, a)

	if _, _, err := FindBestMoves(x, league, 0); err == nil {
		t.Fatalf("expected depth validation error")
	}
}
