// Package search implements the bounded-depth lookahead that places one
// player at a time. It explores move sequences depth-first with an
// apply/score/undo cycle per node, so evaluating a node costs O(1) instead of
// copying the league.
package search

import (
	"fmt"
	"math"

	"league-former/internal/constraint"
	"league-former/internal/domain"
)

// UnplaceableError reports that every placement for a player breaks a hard
// constraint. This is fatal for the run: an unplaceable player needs human
// intervention, not a retry.
type UnplaceableError struct {
	Player *domain.Player
}

func (e *UnplaceableError) Error() string {
	return fmt.Sprintf("no feasible placement for player %s (id %d)", e.Player.Name(), e.Player.ID)
}

// Stats summarizes one search invocation.
type Stats struct {
	Evaluated int
	Pruned    int
	BestScore float64
}

// FindBestMoves returns the best-scoring legal move sequence that places the
// player, exploring chains of at most depth moves. The league is returned in
// exactly its pre-call state.
//
// A locked player whose current placement is valid yields an empty sequence:
// they stay put and the search is skipped.
func FindBestMoves(p *domain.Player, league *domain.League, depth int) ([]domain.Move, Stats, error) {
	if depth < 1 {
		return nil, Stats{}, fmt.Errorf("search depth must be >= 1, got %d", depth)
	}

	current := league.TeamOf(p)
	if p.Lock && current != nil && constraint.PlacementValid(p, current) {
		return nil, Stats{}, nil
	}

	teams := league.Teams()
	stack := make([][]domain.Move, 0, len(teams))
	for _, t := range teams {
		stack = append(stack, []domain.Move{{Player: p, From: current, To: t}})
	}

	var (
		best      []domain.Move
		bestScore = math.Inf(-1)
		stats     Stats
	)

	for len(stack) > 0 {
		seq := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if constraint.Breaks(seq) {
			// Infeasible prefixes are pruned whole; children are never pushed.
			stats.Pruned++
			continue
		}

		league.Apply(seq)
		score := league.Score()
		league.Undo(seq)
		stats.Evaluated++

		if score > bestScore {
			bestScore = score
			best = seq
		}

		if len(seq) < depth {
			stack = append(stack, expand(seq, teams)...)
		}
	}

	if best == nil {
		return nil, stats, &UnplaceableError{Player: p}
	}
	stats.BestScore = bestScore
	return best, stats, nil
}

// expand generates follow-up sequences: for every non-locked player currently
// on the last destination team and every other team, append one more move.
// Players already moved in the sequence are skipped, as are no-op moves.
func expand(seq []domain.Move, teams []*domain.Team) [][]domain.Move {
	dest := seq[len(seq)-1].To
	moved := make(map[int]bool, len(seq))
	for _, m := range seq {
		moved[m.Player.ID] = true
	}

	var children [][]domain.Move
	for _, q := range dest.Players() {
		if q.Lock || moved[q.ID] {
			continue
		}
		for _, t := range teams {
			if t == dest {
				continue
			}
			child := make([]domain.Move, len(seq), len(seq)+1)
			copy(child, seq)
			child = append(child, domain.Move{Player: q, From: dest, To: t})
			children = append(children, child)
		}
	}
	return children
}
