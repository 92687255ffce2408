package snapshots

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"league-former/internal/domain"
)

// FSStore loads and saves league snapshots on the filesystem using the
// conventional stem layout: {stem}-players.csv and {stem}-teams.csv.
type FSStore struct{}

// NewFSStore constructs a filesystem-backed snapshot store.
func NewFSStore() *FSStore {
	return &FSStore{}
}

// PlayersPath returns the players CSV path for a stem.
func (s *FSStore) PlayersPath(stem string) string {
	return stem + "-players.csv"
}

// TeamsPath returns the teams CSV path for a stem.
func (s *FSStore) TeamsPath(stem string) string {
	return stem + "-teams.csv"
}

// LoadTeams reads and validates the teams CSV for a stem.
func (s *FSStore) LoadTeams(stem string) ([]*domain.Team, error) {
	rows, err := readCSV(s.TeamsPath(stem))
	if err != nil {
		return nil, err
	}
	teams := make([]*domain.Team, 0, len(rows))
	for _, r := range rows {
		team, err := teamFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.TeamsPath(stem), err)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// LoadPlayers reads and validates the players CSV for a stem.
func (s *FSStore) LoadPlayers(stem string) ([]PlayerRecord, error) {
	rows, err := readCSV(s.PlayersPath(stem))
	if err != nil {
		return nil, err
	}
	records := make([]PlayerRecord, 0, len(rows))
	for _, r := range rows {
		rec, err := playerFromRow(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.PlayersPath(stem), err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// SavePlayers writes every player with their final team assignment.
func (s *FSStore) SavePlayers(stem string, league *domain.League) error {
	records := [][]string{playerColumns}
	for _, p := range league.Players() {
		teamName := ""
		if t := league.TeamOf(p); t != nil {
			teamName = t.Name
		}
		records = append(records, []string{
			strconv.Itoa(p.ID),
			p.FirstName,
			p.LastName,
			strconv.Itoa(p.Grade),
			strconv.Itoa(p.Skill),
			strconv.Itoa(p.GoalieSkill),
			string(p.UnavailableDays),
			string(p.PreferredDays),
			joinList(p.DisallowedLocations),
			joinList(p.PreferredLocations),
			joinList(p.BackupLocations),
			joinList(p.TeammateRequests),
			strconv.FormatBool(p.Lock),
			strconv.FormatBool(p.EmailedParents),
			teamName,
		})
	}
	return writeCSV(s.PlayersPath(stem), records)
}

// SaveTeams writes each team with its derived roster statistics.
func (s *FSStore) SaveTeams(stem string, league *domain.League) error {
	header := append(append([]string{}, teamColumns...), "size", "mean_skill", "mean_grade")
	records := [][]string{header}
	for _, t := range league.Teams() {
		records = append(records, []string{
			t.Name,
			t.PracticeDay,
			t.Location,
			strconv.Itoa(t.Size()),
			strconv.FormatFloat(t.MeanSkill(), 'f', 2, 64),
			strconv.FormatFloat(t.MeanGrade(), 'f', 2, 64),
		})
	}
	return writeCSV(s.TeamsPath(stem), records)
}

func readCSV(path string) ([]row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, errors.New(path + ": missing header row")
	}

	header := newHeader(records[0])
	rows := make([]row, 0, len(records)-1)
	for i, cells := range records[1:] {
		rows = append(rows, row{header: header, cells: cells, line: i + 2})
	}
	return rows, nil
}

func writeCSV(path string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func joinList(items []string) string {
	return strings.Join(items, ", ")
}
