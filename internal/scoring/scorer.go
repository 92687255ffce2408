// Package scoring contains the incremental league scorers. Every scorer keeps
// running statistics that update in O(1) per membership hook; a hook always
// fires before the team roster mutates, so implementations may read the
// pre-change team size.
package scoring

import (
	"sort"

	"league-former/internal/domain"
)

// Scorer scores one criterion of a league arrangement on [0, 1]; higher is
// better. OnAdd/OnRemove must be exact inverses so speculative move sequences
// can be applied and undone without drift.
type Scorer interface {
	OnAdd(p *domain.Player, t *domain.Team)
	OnRemove(p *domain.Player, t *domain.Team)
	Score() float64
}

// Constructor builds a scorer whose running totals reflect the given snapshot.
type Constructor func(players []*domain.Player, teams []*domain.Team) Scorer

// registry maps criterion tags to scorer constructors. The composite resolves
// weight keys against it at league-construction time.
var registry = map[string]Constructor{
	"skill":        newSkillScorer,
	"grade":        newGradeScorer,
	"size":         newSizeScorer,
	"first_round":  newFirstRoundScorer,
	"top":          newTopTierScorer,
	"mid":          newMidTierScorer,
	"bottom":       newBottomTierScorer,
	"goalie":       newGoalieScorer,
	"practice_day": newPracticeDayScorer,
	"location":     newLocationScorer,
	"teammate":     newTeammateScorer,
}

// Known reports whether the tag names a registered criterion.
func Known(tag string) bool {
	_, ok := registry[tag]
	return ok
}

// Tags returns the registered criterion tags in sorted order.
func Tags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
