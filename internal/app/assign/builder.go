package assign

import (
	"fmt"

	"league-former/internal/domain"
	"league-former/internal/scoring"
	"league-former/internal/snapshots"
)

// BuildLeague seeds a league from loaded snapshots and attaches the
// composite scorer. Seeding happens before the scorer so existing
// placements count as initial state rather than scored moves.
func BuildLeague(teams []*domain.Team, records []snapshots.PlayerRecord, weights map[string]float64) (*domain.League, error) {
	league, err := domain.NewLeague(teams)
	if err != nil {
		return nil, err
	}

	players := make([]*domain.Player, 0, len(records))
	for _, rec := range records {
		if err := league.Place(rec.Player, rec.TeamName); err != nil {
			return nil, fmt.Errorf("seeding %s: %w", rec.Player.Name(), err)
		}
		players = append(players, rec.Player)
	}

	composite, err := scoring.NewComposite(players, teams, weights)
	if err != nil {
		return nil, err
	}
	league.SetScorer(composite)
	return league, nil
}
