package scoring

import (
	"strings"

	"league-former/internal/domain"
)

// teammateScorer counts players whose teammate request is currently satisfied.
// Requests are matched through a normalized-name index built once at
// construction; each player contributes at most one satisfied request per
// direction regardless of how many of their requests are on the roster, so
// duplicate or repeated requests cannot inflate the score. The raw satisfied
// count is divided by twice the league size to bound the score.
type teammateScorer struct {
	leagueSize int
	// requests indexes each player's normalized requested names.
	requests map[int]map[string]bool
	// satisfied tracks, per requesting player, how many of their requested
	// names are currently on their team. The score only counts the 0 -> 1
	// transition.
	satisfied map[int]int
	matched   int
}

func newTeammateScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	s := &teammateScorer{
		leagueSize: len(players),
		requests:   make(map[int]map[string]bool, len(players)),
		satisfied:  make(map[int]int, len(players)),
	}
	for _, p := range players {
		if len(p.TeammateRequests) == 0 {
			continue
		}
		names := make(map[string]bool, len(p.TeammateRequests))
		for _, req := range p.TeammateRequests {
			if norm := normalizeName(req); norm != "" {
				names[norm] = true
			}
		}
		if len(names) > 0 {
			s.requests[p.ID] = names
		}
	}
	for _, t := range teams {
		roster := t.Players()
		for _, p := range roster {
			for _, q := range roster {
				if p.ID != q.ID && s.requestMatches(p, q) {
					s.bump(p.ID, 1)
				}
			}
		}
	}
	return s
}

func (s *teammateScorer) OnAdd(p *domain.Player, t *domain.Team) {
	for _, q := range t.Players() {
		if q.ID == p.ID {
			continue
		}
		if s.requestMatches(p, q) {
			s.bump(p.ID, 1)
		}
		if s.requestMatches(q, p) {
			s.bump(q.ID, 1)
		}
	}
}

func (s *teammateScorer) OnRemove(p *domain.Player, t *domain.Team) {
	// The hook fires before the roster mutates, so p is still listed and is
	// skipped explicitly.
	for _, q := range t.Players() {
		if q.ID == p.ID {
			continue
		}
		if s.requestMatches(p, q) {
			s.bump(p.ID, -1)
		}
		if s.requestMatches(q, p) {
			s.bump(q.ID, -1)
		}
	}
}

func (s *teammateScorer) Score() float64 {
	if s.leagueSize == 0 {
		return 1
	}
	return float64(s.matched) / float64(s.leagueSize) / 2
}

// requestMatches reports whether requester has asked for target by name.
func (s *teammateScorer) requestMatches(requester, target *domain.Player) bool {
	names, ok := s.requests[requester.ID]
	if !ok {
		return false
	}
	return names[normalizeName(target.Name())]
}

func (s *teammateScorer) bump(id, delta int) {
	before := s.satisfied[id]
	after := before + delta
	s.satisfied[id] = after
	if before == 0 && after > 0 {
		s.matched++
	}
	if before > 0 && after == 0 {
		s.matched--
	}
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
