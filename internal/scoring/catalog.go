package scoring

import "league-former/internal/domain"

// Skill tier bands. Ratings run 1 (elite) to 10.
const (
	firstRoundSkill = 1
	topTierMax      = 3
	midTierMax      = 6
	goalieThreshold = 3
)

// Location match weights: a preferred field is a full match, a backup field a
// half match.
const (
	preferredLocationWeight = 1.0
	backupLocationWeight    = 0.5
)

func newSkillScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newMeanParityScorer(players, teams, func(p *domain.Player) float64 {
		return float64(p.Skill)
	})
}

func newGradeScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newMeanParityScorer(players, teams, func(p *domain.Player) float64 {
		return float64(p.Grade)
	})
}

func newSizeScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountParityScorer(players, teams, func(*domain.Player) bool {
		return true
	})
}

func newFirstRoundScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountParityScorer(players, teams, func(p *domain.Player) bool {
		return p.Skill == firstRoundSkill
	})
}

func newTopTierScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountParityScorer(players, teams, func(p *domain.Player) bool {
		return p.Skill <= topTierMax
	})
}

func newMidTierScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountParityScorer(players, teams, func(p *domain.Player) bool {
		return p.Skill > topTierMax && p.Skill <= midTierMax
	})
}

func newBottomTierScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountParityScorer(players, teams, func(p *domain.Player) bool {
		return p.Skill > midTierMax
	})
}

func newGoalieScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountParityScorer(players, teams, func(p *domain.Player) bool {
		return p.GoalieSkill <= goalieThreshold
	})
}

func newPracticeDayScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountScorer(players, teams, func(p *domain.Player, t *domain.Team) float64 {
		if p.PreferredDays.Contains(t.PracticeDay) {
			return 1
		}
		return 0
	})
}

func newLocationScorer(players []*domain.Player, teams []*domain.Team) Scorer {
	return newCountScorer(players, teams, func(p *domain.Player, t *domain.Team) float64 {
		switch {
		case p.PrefersLocation(t.Location):
			return preferredLocationWeight
		case p.AcceptsBackupLocation(t.Location):
			return backupLocationWeight
		default:
			return 0
		}
	})
}
