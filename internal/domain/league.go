package domain

import (
	"fmt"
	"sort"
)

// LeagueScorer receives membership hooks strictly before team rosters mutate
// and reports the current composite score. The scoring package provides the
// production implementation.
type LeagueScorer interface {
	OnAdd(p *Player, t *Team)
	OnRemove(p *Player, t *Team)
	Score() float64
}

// League is the aggregate root: a fixed team list, the pool of not-yet-assigned
// players, and the incremental scorer kept consistent by Apply/Undo. Direct
// roster mutation bypassing the League would silently stale the scorer, so the
// Team mutators are unexported.
type League struct {
	teams      []*Team
	byName     map[string]*Team
	available  map[int]*Player
	assignment map[int]*Team
	scorer     LeagueScorer
}

// NewLeague builds a league over a fixed set of teams with unique names.
func NewLeague(teams []*Team) (*League, error) {
	byName := make(map[string]*Team, len(teams))
	for _, t := range teams {
		if _, dup := byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate team name %q", t.Name)
		}
		byName[t.Name] = t
	}
	return &League{
		teams:      teams,
		byName:     byName,
		available:  make(map[int]*Player),
		assignment: make(map[int]*Team),
	}, nil
}

// Place seeds a player into the initial snapshot: onto the named team, or into
// the available pool when teamName is empty. It is only valid before a scorer
// is attached; the scorer's construction scan covers seeded placements.
func (l *League) Place(p *Player, teamName string) error {
	if l.scorer != nil {
		return fmt.Errorf("league already scoring; use Apply for %s", p.Name())
	}
	if _, dup := l.available[p.ID]; dup {
		return fmt.Errorf("duplicate player id %d", p.ID)
	}
	if _, dup := l.assignment[p.ID]; dup {
		return fmt.Errorf("duplicate player id %d", p.ID)
	}
	if teamName == "" {
		l.available[p.ID] = p
		return nil
	}
	team, ok := l.byName[teamName]
	if !ok {
		return fmt.Errorf("player %s assigned to unknown team %q", p.Name(), teamName)
	}
	team.add(p)
	l.assignment[p.ID] = team
	return nil
}

// SetScorer attaches the composite scorer. The scorer must have been built
// from the league's current snapshot so its running totals start correct.
func (l *League) SetScorer(s LeagueScorer) {
	l.scorer = s
}

// Teams returns the fixed team list.
func (l *League) Teams() []*Team {
	return l.teams
}

// Team looks up a team by name.
func (l *League) Team(name string) (*Team, bool) {
	t, ok := l.byName[name]
	return t, ok
}

// TeamOf returns the player's current team, or nil when pooled.
func (l *League) TeamOf(p *Player) *Team {
	return l.assignment[p.ID]
}

// Available returns the pool ordered by player ID.
func (l *League) Available() []*Player {
	pool := make([]*Player, 0, len(l.available))
	for _, p := range l.available {
		pool = append(pool, p)
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	return pool
}

// AvailableCount returns the number of players still in the pool.
func (l *League) AvailableCount() int {
	return len(l.available)
}

// Size returns the total player population, pooled and assigned.
func (l *League) Size() int {
	return len(l.available) + len(l.assignment)
}

// Players returns the full population ordered by player ID.
func (l *League) Players() []*Player {
	all := make([]*Player, 0, l.Size())
	for _, p := range l.available {
		all = append(all, p)
	}
	for id, t := range l.assignment {
		if p, ok := t.players[id]; ok {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// NextPlayer picks the next pooled player to assign: strongest skill first
// (lower rating is better), ties broken by lowest ID for determinism.
func (l *League) NextPlayer() (*Player, bool) {
	var next *Player
	for _, p := range l.available {
		if next == nil || p.Skill < next.Skill || (p.Skill == next.Skill && p.ID < next.ID) {
			next = p
		}
	}
	return next, next != nil
}

// Scorer returns the attached scorer, or nil before SetScorer.
func (l *League) Scorer() LeagueScorer {
	return l.scorer
}

// Score returns the current composite score.
func (l *League) Score() float64 {
	if l.scorer == nil {
		return 0
	}
	return l.scorer.Score()
}

// Apply commits moves in order. For each move the scorer hook fires before the
// roster mutates, because incremental updates read the pre-change team size.
func (l *League) Apply(moves []Move) {
	for _, m := range moves {
		l.removePlayer(m.Player, m.From)
		l.addPlayer(m.Player, m.To)
	}
}

// Undo exactly inverts Apply: the same per-move order with To as the removal
// side and From as the addition side, restoring scorer state bit-for-bit.
func (l *League) Undo(moves []Move) {
	for _, m := range moves {
		l.removePlayer(m.Player, m.To)
		l.addPlayer(m.Player, m.From)
	}
}

func (l *League) addPlayer(p *Player, t *Team) {
	if t == nil {
		l.available[p.ID] = p
		return
	}
	if l.scorer != nil {
		l.scorer.OnAdd(p, t)
	}
	t.add(p)
	l.assignment[p.ID] = t
}

func (l *League) removePlayer(p *Player, t *Team) {
	if t == nil {
		delete(l.available, p.ID)
		return
	}
	if l.scorer != nil {
		l.scorer.OnRemove(p, t)
	}
	t.remove(p)
	delete(l.assignment, p.ID)
}
