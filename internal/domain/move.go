package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyMove signals a move with neither a source nor a destination.
var ErrEmptyMove = errors.New("move requires a source or destination team")

// Move records one membership change: nil From means the player comes from
// the available pool, nil To means they return to it. A Move is a value and
// is never mutated after construction.
type Move struct {
	Player *Player
	From   *Team
	To     *Team
}

// NewMove builds a move, rejecting the meaningless pool-to-pool case.
func NewMove(p *Player, from, to *Team) (Move, error) {
	if from == nil && to == nil {
		return Move{}, ErrEmptyMove
	}
	return Move{Player: p, From: from, To: to}, nil
}

func (m Move) String() string {
	from, to := "pool", "pool"
	if m.From != nil {
		from = m.From.Name
	}
	if m.To != nil {
		to = m.To.Name
	}
	return fmt.Sprintf("%s: %s -> %s", m.Player.Name(), from, to)
}
