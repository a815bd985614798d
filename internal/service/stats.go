package service

import (
	"context"
	"fmt"
	"time"

	"github.com/curtishsu/travelog/internal/domain"
	"github.com/curtishsu/travelog/internal/repo"
	"github.com/curtishsu/travelog/internal/stats"
)

// StatsService orchestrates the statistics computation: it fetches the flat
// record sets and hands them to the pure stats engine together with an
// explicit reference date. The clock is injected so tests (and any future
// "as-of" endpoint) can pin "today" instead of reading the wall clock.
type StatsService struct {
	data repo.StatsRepo
	now  func() time.Time
}

// NewStatsService constructs a StatsService backed by the provided repo.
// Pass nil for now to use time.Now.
func NewStatsService(data repo.StatsRepo, now func() time.Time) *StatsService {
	if now == nil {
		now = time.Now
	}
	return &StatsService{data: data, now: now}
}

// Summary computes the full statistics summary for the journal.
// A fetch error aborts before the engine runs — the engine never sees a
// partial input set.
func (s *StatsService) Summary(ctx context.Context) (domain.StatsSummary, error) {
	in, err := s.data.LoadInput(ctx)
	if err != nil {
		return domain.StatsSummary{}, fmt.Errorf("service.StatsService.Summary: %w", err)
	}
	return stats.Compute(in, s.now().UTC()), nil
}
