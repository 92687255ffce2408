// Package snapshots reads and writes the flat tabular league snapshots: one
// CSV of players (with an optional team-assignment column) and one CSV of
// teams. Typed validation happens here so the core only ever sees
// well-formed records.
package snapshots

import (
	"fmt"
	"strconv"
	"strings"

	"league-former/internal/domain"
	"league-former/internal/schedule"
)

// PlayerRecord pairs a validated player with their seeded team assignment.
// An empty TeamName places the player in the available pool.
type PlayerRecord struct {
	Player   *domain.Player
	TeamName string
}

// Player CSV columns, in canonical output order.
var playerColumns = []string{
	"id",
	"first_name",
	"last_name",
	"grade",
	"skill",
	"goalie_skill",
	"unavailable_days",
	"preferred_days",
	"disallowed_locations",
	"preferred_locations",
	"backup_locations",
	"teammate_requests",
	"lock",
	"emailed_parents",
	"team",
}

// Team CSV columns.
var teamColumns = []string{"name", "practice_day", "location"}

// row provides header-indexed access to one CSV record.
type row struct {
	header map[string]int
	cells  []string
	line   int
}

func newHeader(cells []string) map[string]int {
	header := make(map[string]int, len(cells))
	for i, name := range cells {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return header
}

func (r row) get(col string) string {
	idx, ok := r.header[col]
	if !ok || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

func (r row) getInt(col string) (int, error) {
	raw := r.get(col)
	if raw == "" {
		return 0, fmt.Errorf("line %d: column %q is empty", r.line, col)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("line %d: column %q: expected a number, got %q", r.line, col, raw)
	}
	return v, nil
}

func (r row) getBool(col string) (bool, error) {
	raw := r.get(col)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false, fmt.Errorf("line %d: column %q: expected true/false, got %q", r.line, col, raw)
	}
	return v, nil
}

func playerFromRow(r row) (PlayerRecord, error) {
	id, err := r.getInt("id")
	if err != nil {
		return PlayerRecord{}, err
	}
	grade, err := r.getInt("grade")
	if err != nil {
		return PlayerRecord{}, err
	}
	skill, err := r.getInt("skill")
	if err != nil {
		return PlayerRecord{}, err
	}
	goalie, err := r.getInt("goalie_skill")
	if err != nil {
		return PlayerRecord{}, err
	}
	unavailable, err := schedule.ParseDays(r.get("unavailable_days"))
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("line %d: unavailable_days: %w", r.line, err)
	}
	preferred, err := schedule.ParseDays(r.get("preferred_days"))
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("line %d: preferred_days: %w", r.line, err)
	}
	disallowedLocs, err := schedule.ParseLocations(r.get("disallowed_locations"))
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("line %d: disallowed_locations: %w", r.line, err)
	}
	preferredLocs, err := schedule.ParseLocations(r.get("preferred_locations"))
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("line %d: preferred_locations: %w", r.line, err)
	}
	backupLocs, err := schedule.ParseLocations(r.get("backup_locations"))
	if err != nil {
		return PlayerRecord{}, fmt.Errorf("line %d: backup_locations: %w", r.line, err)
	}
	lock, err := r.getBool("lock")
	if err != nil {
		return PlayerRecord{}, err
	}
	emailed, err := r.getBool("emailed_parents")
	if err != nil {
		return PlayerRecord{}, err
	}

	p := &domain.Player{
		ID:                  id,
		FirstName:           r.get("first_name"),
		LastName:            r.get("last_name"),
		Grade:               grade,
		Skill:               skill,
		GoalieSkill:         goalie,
		UnavailableDays:     unavailable,
		PreferredDays:       preferred,
		DisallowedLocations: disallowedLocs,
		PreferredLocations:  preferredLocs,
		BackupLocations:     backupLocs,
		TeammateRequests:    splitNames(r.get("teammate_requests")),
		Lock:                lock,
		EmailedParents:      emailed,
	}
	if err := p.Validate(); err != nil {
		return PlayerRecord{}, fmt.Errorf("line %d: %w", r.line, err)
	}
	return PlayerRecord{Player: p, TeamName: r.get("team")}, nil
}

func teamFromRow(r row) (*domain.Team, error) {
	team, err := domain.NewTeam(r.get("name"), r.get("practice_day"), r.get("location"))
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", r.line, err)
	}
	return team, nil
}

func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
