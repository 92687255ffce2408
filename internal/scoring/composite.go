package scoring

import (
	"fmt"

	"league-former/internal/domain"
)

type compositeEntry struct {
	tag    string
	scorer Scorer
	weight float64
}

// Composite blends the configured criterion scorers into one weighted league
// score. The (tag, scorer, weight) list is fixed at construction; hooks
// broadcast to every entry. Weights need not sum to 1 since the score divides
// by the total weight in use.
type Composite struct {
	entries     []compositeEntry
	totalWeight float64
}

// NewComposite builds the configured scorers from the current league snapshot.
// Unknown weight keys and negative weights are caller errors; so is a table
// with no positive weight at all.
func NewComposite(players []*domain.Player, teams []*domain.Team, weights map[string]float64) (*Composite, error) {
	c := &Composite{}
	for _, tag := range Tags() {
		weight, ok := weights[tag]
		if !ok {
			continue
		}
		if weight < 0 {
			return nil, fmt.Errorf("weight for %q must be non-negative, got %v", tag, weight)
		}
		c.entries = append(c.entries, compositeEntry{
			tag:    tag,
			scorer: registry[tag](players, teams),
			weight: weight,
		})
		c.totalWeight += weight
	}
	for tag := range weights {
		if !Known(tag) {
			return nil, fmt.Errorf("unknown scorer %q (known: %v)", tag, Tags())
		}
	}
	if c.totalWeight <= 0 {
		return nil, fmt.Errorf("weight table has no positive weight")
	}
	return c, nil
}

// OnAdd broadcasts the addition hook to every configured scorer.
func (c *Composite) OnAdd(p *domain.Player, t *domain.Team) {
	for _, e := range c.entries {
		e.scorer.OnAdd(p, t)
	}
}

// OnRemove broadcasts the removal hook to every configured scorer.
func (c *Composite) OnRemove(p *domain.Player, t *domain.Team) {
	for _, e := range c.entries {
		e.scorer.OnRemove(p, t)
	}
}

// Score returns the weighted average of the configured criterion scores.
func (c *Composite) Score() float64 {
	var score float64
	for _, e := range c.entries {
		score += e.weight * e.scorer.Score()
	}
	return score / c.totalWeight
}

// SubScores returns the current per-criterion scores keyed by tag.
func (c *Composite) SubScores() map[string]float64 {
	scores := make(map[string]float64, len(c.entries))
	for _, e := range c.entries {
		scores[e.tag] = e.scorer.Score()
	}
	return scores
}
