// Package constraint implements the hard-feasibility rules for proposed moves.
// The checker is a pure go/no-go predicate; callers never need to know which
// rule failed.
package constraint

import "league-former/internal/domain"

// Breaks reports whether any move in the sequence violates a hard rule:
// unassigning during search, an unavailable practice day, a banned location,
// or moving a locked player whose current placement is itself valid.
func Breaks(moves []domain.Move) bool {
	for _, m := range moves {
		if breaksMove(m) {
			return true
		}
	}
	return false
}

func breaksMove(m domain.Move) bool {
	if m.To == nil {
		// Unassignment is bookkeeping, never a search proposal.
		return true
	}
	if m.Player.UnavailableDays.Contains(m.To.PracticeDay) {
		return true
	}
	if m.Player.DisallowsLocation(m.To.Location) {
		return true
	}
	if m.Player.Lock && m.From != nil && PlacementValid(m.Player, m.From) {
		// Locked players are stuck only while their placement holds up.
		return true
	}
	return false
}

// PlacementValid reports whether a team satisfies the player's hard
// scheduling rules.
func PlacementValid(p *domain.Player, t *domain.Team) bool {
	if p.UnavailableDays.Contains(t.PracticeDay) {
		return false
	}
	if p.DisallowsLocation(t.Location) {
		return false
	}
	return true
}
