package scoring

import "league-former/internal/domain"

// countScorer rewards raw preference matches anywhere in the league: the
// weighted match count divided by the league size. Matches carry a weight so
// partial satisfaction (e.g. a backup location) can count for less than a
// full match.
type countScorer struct {
	leagueSize int
	count      float64
	weight     func(p *domain.Player, t *domain.Team) float64
}

func newCountScorer(players []*domain.Player, teams []*domain.Team, weight func(*domain.Player, *domain.Team) float64) *countScorer {
	s := &countScorer{leagueSize: len(players), weight: weight}
	for _, t := range teams {
		for _, p := range t.Players() {
			s.count += weight(p, t)
		}
	}
	return s
}

func (s *countScorer) OnAdd(p *domain.Player, t *domain.Team) {
	s.count += s.weight(p, t)
}

func (s *countScorer) OnRemove(p *domain.Player, t *domain.Team) {
	s.count -= s.weight(p, t)
}

func (s *countScorer) Score() float64 {
	if s.leagueSize == 0 {
		return 1
	}
	return s.count / float64(s.leagueSize)
}
