package domain

import (
	"fmt"
	"slices"
	"strings"

	"league-former/internal/schedule"
)

// Skill bounds for player ratings. Lower is better; 1 is the elite rating.
const (
	MinSkill = 1
	MaxSkill = 10
)

// Grade bounds. Negative grades encode pre-K placements.
const (
	MinGrade = -2
	MaxGrade = 12
)

// Player is an immutable registration record. Reassignment between teams is
// expressed as Move events; Player fields are never mutated after validation.
type Player struct {
	ID          int
	FirstName   string
	LastName    string
	Grade       int
	Skill       int
	GoalieSkill int

	UnavailableDays schedule.Days
	PreferredDays   schedule.Days

	DisallowedLocations []string
	PreferredLocations  []string
	BackupLocations     []string

	TeammateRequests []string

	// Lock pins the player to their current team unless that placement itself
	// violates a hard constraint.
	Lock bool
	// EmailedParents records that the placement was already communicated;
	// it implies Lock.
	EmailedParents bool
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return p.FirstName + " " + p.LastName
}

// Validate checks every field invariant. It never coerces: a malformed record
// fails outright so it can be fixed in the input.
func (p *Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" || strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player %d: first and last name must be non-empty", p.ID)
	}
	if p.Skill < MinSkill || p.Skill > MaxSkill {
		return fmt.Errorf("player %s: skill %d out of range [%d, %d]", p.Name(), p.Skill, MinSkill, MaxSkill)
	}
	if p.GoalieSkill < MinSkill || p.GoalieSkill > MaxSkill {
		return fmt.Errorf("player %s: goalie skill %d out of range [%d, %d]", p.Name(), p.GoalieSkill, MinSkill, MaxSkill)
	}
	if p.Grade < MinGrade || p.Grade > MaxGrade {
		return fmt.Errorf("player %s: grade %d out of range [%d, %d]", p.Name(), p.Grade, MinGrade, MaxGrade)
	}
	if p.UnavailableDays.Intersects(p.PreferredDays) {
		return fmt.Errorf("player %s: days marked both unavailable (%s) and preferred (%s)",
			p.Name(), p.UnavailableDays, p.PreferredDays)
	}
	for _, loc := range p.DisallowedLocations {
		if slices.Contains(p.PreferredLocations, loc) {
			return fmt.Errorf("player %s: location %s marked both disallowed and preferred", p.Name(), loc)
		}
	}
	for _, loc := range p.locationFields() {
		if !schedule.IsValidLocation(loc) {
			return fmt.Errorf("player %s: unknown location %q", p.Name(), loc)
		}
	}
	if p.EmailedParents && !p.Lock {
		return fmt.Errorf("player %s: emailed_parents set without lock", p.Name())
	}
	return nil
}

func (p *Player) locationFields() []string {
	fields := make([]string, 0, len(p.DisallowedLocations)+len(p.PreferredLocations)+len(p.BackupLocations))
	fields = append(fields, p.DisallowedLocations...)
	fields = append(fields, p.PreferredLocations...)
	fields = append(fields, p.BackupLocations...)
	return fields
}

// PrefersLocation reports whether the site is one of the player's preferred fields.
func (p *Player) PrefersLocation(loc string) bool {
	return slices.Contains(p.PreferredLocations, loc)
}

// AcceptsBackupLocation reports whether the site is one of the player's backup fields.
func (p *Player) AcceptsBackupLocation(loc string) bool {
	return slices.Contains(p.BackupLocations, loc)
}

// DisallowsLocation reports whether the site is hard-banned for the player.
func (p *Player) DisallowsLocation(loc string) bool {
	return slices.Contains(p.DisallowedLocations, loc)
}

func (p *Player) String() string {
	return fmt.Sprintf("<%s s=%d g=%d unavailable=%s>", p.Name(), p.Skill, p.Grade, p.UnavailableDays)
}
