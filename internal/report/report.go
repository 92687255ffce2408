// Package report renders the end-of-run league summary: one line per team
// plus the weighted per-criterion scores.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"league-former/internal/domain"
	"league-former/internal/logging"
)

// SubScorer is the slice of the composite scorer the report needs.
type SubScorer interface {
	Score() float64
	SubScores() map[string]float64
}

// TeamSummary is one team's line in the report.
type TeamSummary struct {
	Name        string
	PracticeDay string
	Location    string
	Size        int
	MeanSkill   float64
	MeanGrade   float64
}

// Summarize collects per-team lines in team order.
func Summarize(league *domain.League) []TeamSummary {
	teams := league.Teams()
	summaries := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		summaries = append(summaries, TeamSummary{
			Name:        t.Name,
			PracticeDay: t.PracticeDay,
			Location:    t.Location,
			Size:        t.Size(),
			MeanSkill:   t.MeanSkill(),
			MeanGrade:   t.MeanGrade(),
		})
	}
	return summaries
}

// Write renders the full report to w.
func Write(w io.Writer, league *domain.League, scorer SubScorer) error {
	for _, s := range Summarize(league) {
		_, err := fmt.Fprintf(w, "%s (%s, %s): %d players, mean skill %.2f, mean grade %.2f\n",
			s.Name, s.PracticeDay, s.Location, s.Size, s.MeanSkill, s.MeanGrade)
		if err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "composite score: %.4f\n", scorer.Score()); err != nil {
		return err
	}
	for _, tag := range sortedTags(scorer.SubScores()) {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", tag, scorer.SubScores()[tag]); err != nil {
			return err
		}
	}
	return nil
}

// Log emits the same summary through the structured logger.
func Log(logger *slog.Logger, league *domain.League, scorer SubScorer) {
	for _, s := range Summarize(league) {
		logging.Info(logger, "team summary",
			slog.String(logging.FieldTeam, s.Name),
			slog.Int(logging.FieldCount, s.Size),
			slog.Float64("mean_skill", s.MeanSkill),
			slog.Float64("mean_grade", s.MeanGrade),
		)
	}
	subs := scorer.SubScores()
	attrs := make([]any, 0, 2*len(subs)+2)
	attrs = append(attrs, slog.Float64(logging.FieldScore, scorer.Score()))
	for _, tag := range sortedTags(subs) {
		attrs = append(attrs, slog.Float64(tag, subs[tag]))
	}
	logging.Info(logger, "league scores", attrs...)
}

func sortedTags(subs map[string]float64) []string {
	tags := make([]string, 0, len(subs))
	for tag := range subs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
