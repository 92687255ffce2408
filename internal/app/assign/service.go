package assign

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"league-former/internal/domain"
	"league-former/internal/logging"
	"league-former/internal/metrics"
	"league-former/internal/search"
	"league-former/internal/store"
)

// Service drains the available pool one player at a time, committing the
// best move sequence the search finds for each.
type Service struct {
	league   *domain.League
	depth    int
	logger   *slog.Logger
	metrics  *metrics.Recorder
	progress *store.ProgressStore
}

// NewService constructs a Service. recorder and progress may be nil.
func NewService(league *domain.League, depth int, logger *slog.Logger, recorder *metrics.Recorder, progress *store.ProgressStore) *Service {
	return &Service{
		league:   league,
		depth:    depth,
		logger:   logger,
		metrics:  recorder,
		progress: progress,
	}
}

// Run assigns every available player in skill order. Strong players go
// first so the lookahead has room to rebalance around them. Returns an
// error wrapping search.UnplaceableError when a player has no feasible
// placement.
func (s *Service) Run(ctx context.Context) error {
	total := s.league.Size()
	logging.Info(s.logger, "assignment run starting",
		slog.Int(logging.FieldCount, s.league.AvailableCount()),
		slog.Int(logging.FieldDepth, s.depth),
	)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, ok := s.league.NextPlayer()
		if !ok {
			break
		}

		start := time.Now()
		moves, stats, err := search.FindBestMoves(p, s.league, s.depth)
		elapsed := time.Since(start)
		if err != nil {
			s.metrics.RecordAssignment(metrics.OutcomeUnplaceable, elapsed, stats.Evaluated, stats.Pruned)
			logging.Error(s.logger, "no feasible placement", err,
				slog.String(logging.FieldPlayer, p.Name()),
				slog.Int(logging.FieldPlayerID, p.ID),
			)
			return fmt.Errorf("assigning %s: %w", p.Name(), err)
		}

		outcome := metrics.OutcomeNoOp
		if len(moves) > 0 {
			s.league.Apply(moves)
			outcome = metrics.OutcomePlaced
		}
		s.metrics.RecordAssignment(outcome, elapsed, stats.Evaluated, stats.Pruned)
		s.publishProgress(total, p, false)

		logging.Info(s.logger, "player assigned",
			slog.String(logging.FieldPlayer, p.Name()),
			slog.String(logging.FieldTeam, teamName(s.league.TeamOf(p))),
			slog.Float64(logging.FieldScore, stats.BestScore),
			slog.Int(logging.FieldRemaining, s.league.AvailableCount()),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	}

	score := s.league.Score()
	s.metrics.RecordLeagueScore(score)
	s.publishProgress(total, nil, true)
	logging.Info(s.logger, "assignment run complete",
		slog.Float64(logging.FieldScore, score),
	)
	return nil
}

func (s *Service) publishProgress(total int, last *domain.Player, done bool) {
	if s.progress == nil {
		return
	}
	remaining := s.league.AvailableCount()
	p := store.Progress{
		Total:     total,
		Assigned:  total - remaining,
		Remaining: remaining,
		Score:     s.league.Score(),
		TeamSizes: teamSizes(s.league),
		Done:      done,
	}
	if last != nil {
		p.LastPlayer = last.Name()
	}
	s.progress.Set(p)
}

func teamSizes(l *domain.League) map[string]int {
	sizes := make(map[string]int, len(l.Teams()))
	for _, t := range l.Teams() {
		sizes[t.Name] = t.Size()
	}
	return sizes
}

func teamName(t *domain.Team) string {
	if t == nil {
		return ""
	}
	return t.Name
}
