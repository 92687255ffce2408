package domain

import (
	"fmt"
	"sort"

	"league-former/internal/schedule"
)

// Team is a mutable roster container. Membership changes only flow through the
// owning League so scorer caches stay consistent; derived statistics are
// recomputed on demand and never cached here.
type Team struct {
	Name        string
	PracticeDay string
	Location    string

	players map[int]*Player
}

// NewTeam validates the team's schedule fields and returns an empty roster.
func NewTeam(name, practiceDay, location string) (*Team, error) {
	if name == "" {
		return nil, fmt.Errorf("team name must be non-empty")
	}
	if !schedule.IsValidDay(practiceDay) {
		return nil, fmt.Errorf("team %s: invalid practice day %q", name, practiceDay)
	}
	if !schedule.IsValidLocation(location) {
		return nil, fmt.Errorf("team %s: unknown location %q", name, location)
	}
	return &Team{
		Name:        name,
		PracticeDay: practiceDay,
		Location:    location,
		players:     make(map[int]*Player),
	}, nil
}

// Size returns the current roster size.
func (t *Team) Size() int {
	return len(t.players)
}

// Has reports whether the player ID is on this team.
func (t *Team) Has(id int) bool {
	_, ok := t.players[id]
	return ok
}

// Players returns the roster ordered by player ID.
func (t *Team) Players() []*Player {
	roster := make([]*Player, 0, len(t.players))
	for _, p := range t.players {
		roster = append(roster, p)
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].ID < roster[j].ID })
	return roster
}

// MeanSkill recomputes the average skill by scanning the roster.
func (t *Team) MeanSkill() float64 {
	if len(t.players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range t.players {
		sum += p.Skill
	}
	return float64(sum) / float64(len(t.players))
}

// MeanGrade recomputes the average grade by scanning the roster.
func (t *Team) MeanGrade() float64 {
	if len(t.players) == 0 {
		return 0
	}
	sum := 0
	for _, p := range t.players {
		sum += p.Grade
	}
	return float64(sum) / float64(len(t.players))
}

func (t *Team) add(p *Player) {
	t.players[p.ID] = p
}

func (t *Team) remove(p *Player) {
	delete(t.players, p.ID)
}

func (t *Team) String() string {
	return fmt.Sprintf("Team %s (%s @ %s size=%d skill=%.2f grade=%.2f)",
		t.Name, t.PracticeDay, t.Location, t.Size(), t.MeanSkill(), t.MeanGrade())
}
