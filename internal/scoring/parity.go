package scoring

import "league-former/internal/domain"

// countParityScorer rewards an even spread of a player class across teams:
// the score decays with the RMSE between each team's count of matching
// players and the ideal share (league total / team count).
type countParityScorer struct {
	counts map[string]int
	total  int
	match  func(p *domain.Player) bool
}

func newCountParityScorer(players []*domain.Player, teams []*domain.Team, match func(*domain.Player) bool) *countParityScorer {
	s := &countParityScorer{counts: make(map[string]int, len(teams)), match: match}
	for _, t := range teams {
		s.counts[t.Name] = 0
		for _, p := range t.Players() {
			if match(p) {
				s.counts[t.Name]++
				s.total++
			}
		}
	}
	return s
}

func (s *countParityScorer) OnAdd(p *domain.Player, t *domain.Team) {
	if s.match(p) {
		s.counts[t.Name]++
		s.total++
	}
}

func (s *countParityScorer) OnRemove(p *domain.Player, t *domain.Team) {
	if s.match(p) {
		s.counts[t.Name]--
		s.total--
	}
}

func (s *countParityScorer) Score() float64 {
	if len(s.counts) == 0 {
		return 1
	}
	ideal := float64(s.total) / float64(len(s.counts))
	values := make([]float64, 0, len(s.counts))
	for _, c := range s.counts {
		values = append(values, float64(c))
	}
	return normalize(rmse(values, ideal))
}

// meanParityScorer rewards teams whose mean of a numeric attribute tracks the
// league-wide mean. Team means update via the rolling-mean fold; the hook
// fires before the roster mutates, so t.Size() is the pre-change size.
type meanParityScorer struct {
	means        map[string]float64
	totalValue   float64
	totalPlayers int
	value        func(p *domain.Player) float64
}

func newMeanParityScorer(players []*domain.Player, teams []*domain.Team, value func(*domain.Player) float64) *meanParityScorer {
	// The league mean covers assigned players only; pooled players join the
	// totals through OnAdd as they are placed.
	s := &meanParityScorer{means: make(map[string]float64, len(teams)), value: value}
	for _, t := range teams {
		s.means[t.Name] = 0
		var sum float64
		for _, p := range t.Players() {
			sum += value(p)
			s.totalPlayers++
		}
		s.totalValue += sum
		if n := t.Size(); n > 0 {
			s.means[t.Name] = sum / float64(n)
		}
	}
	return s
}

func (s *meanParityScorer) OnAdd(p *domain.Player, t *domain.Team) {
	s.totalValue += s.value(p)
	s.totalPlayers++
	s.means[t.Name] = rollingMean(s.means[t.Name], t.Size(), s.value(p), true)
}

func (s *meanParityScorer) OnRemove(p *domain.Player, t *domain.Team) {
	s.totalValue -= s.value(p)
	s.totalPlayers--
	s.means[t.Name] = rollingMean(s.means[t.Name], t.Size(), s.value(p), false)
}

func (s *meanParityScorer) Score() float64 {
	if s.totalPlayers == 0 || len(s.means) == 0 {
		return 1
	}
	ideal := s.totalValue / float64(s.totalPlayers)
	values := make([]float64, 0, len(s.means))
	for _, m := range s.means {
		values = append(values, m)
	}
	return normalize(rmse(values, ideal))
}
