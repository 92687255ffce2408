package constraint

import (
	"testing"

	"league-former/internal/domain"
)

func team(t *testing.T, name, day, loc string) *domain.Team {
	t.Helper()
	tm, err := domain.NewTeam(name, day, loc)
	if err != nil {
		t.Fatalf("expected team to build, got %v", err)
	}
	return tm
}

func TestBreaks(t *testing.T) {
	mondayTeam := team(t, "Red", "M", "Ahern")
	tuesdayTeam := team(t, "Blue", "T", "Danehy")

	free := &domain.Player{ID: 1, FirstName: "A", LastName: "A", Grade: 3, Skill: 5, GoalieSkill: 5}
	busyMonday := &domain.Player{ID: 2, FirstName: "B", LastName: "B", Grade: 3, Skill: 5, GoalieSkill: 5, UnavailableDays: "M"}
	noDanehy := &domain.Player{ID: 3, FirstName: "C", LastName: "C", Grade: 3, Skill: 5, GoalieSkill: 5, DisallowedLocations: []string{"Danehy"}}
	locked := &domain.Player{ID: 4, FirstName: "D", LastName: "D", Grade: 3, Skill: 5, GoalieSkill: 5, Lock: true}
	lockedBusy := &domain.Player{ID: 5, FirstName: "E", LastName: "E", Grade: 3, Skill: 5, GoalieSkill: 5, Lock: true, UnavailableDays: "M"}

	cases := []struct {
		name string
		move domain.Move
		want bool
	}{
		{"nil destination", domain.Move{Player: free, From: mondayTeam, To: nil}, true},
		{"unavailable day", domain.Move{Player: busyMonday, From: nil, To: mondayTeam}, true},
		{"available day", domain.Move{Player: busyMonday, From: nil, To: tuesdayTeam}, false},
		{"disallowed location", domain.Move{Player: noDanehy, From: nil, To: tuesdayTeam}, true},
		{"allowed location", domain.Move{Player: noDanehy, From: nil, To: mondayTeam}, false},
		{"locked on valid team", domain.Move{Player: locked, From: mondayTeam, To: tuesdayTeam}, true},
		{"locked in pool may be placed", domain.Move{Player: locked, From: nil, To: tuesdayTeam}, false},
		{"locked on violating team may move", domain.Move{Player: lockedBusy, From: mondayTeam, To: tuesdayTeam}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Breaks([]domain.Move{tc.move}); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestBreaksSequenceFailsOnAnyMove(t *testing.T) {
	mondayTeam := team(t, "Red", "M", "Ahern")
	tuesdayTeam := team(t, "Blue", "T", "Danehy")
	free := &domain.Player{ID: 1, FirstName: "A", LastName: "A", Grade: 3, Skill: 5, GoalieSkill: 5}
	busyTuesday := &domain.Player{ID: 2, FirstName: "B", LastName: "B", Grade: 3, Skill: 5, GoalieSkill: 5, UnavailableDays: "T"}

	seq := []domain.Move{
		{Player: free, From: nil, To: mondayTeam},
		{Player: busyTuesday, From: mondayTeam, To: tuesdayTeam},
	}
	if !Breaks(seq) {
		t.Fatalf("expected sequence with one bad move to break constraints")
	}
}

func TestPlacementValid(t *testing.T) {
	mondayTeam := team(t, "Red", "M", "Ahern")
	busyMonday := &domain.Player{ID: 1, FirstName: "A", LastName: "A", Grade: 3, Skill: 5, GoalieSkill: 5, UnavailableDays: "M"}
	fine := &domain.Player{ID: 2, FirstName: "B", LastName: "B", Grade: 3, Skill: 5, GoalieSkill: 5}

	if PlacementValid(busyMonday, mondayTeam) {
		t.Fatalf("expected unavailable day to invalidate placement")
	}
	if !PlacementValid(fine, mondayTeam) {
		t.Fatalf("expected placement to be valid")
	}
}
