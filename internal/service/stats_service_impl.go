package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mfriesen/daybook/internal/auth"
	"github.com/mfriesen/daybook/internal/repository"
)

type statsService struct {
	aggregates repository.AggregateRepo
	users      auth.Provider
	now        func() time.Time
}

// NewStatsService creates a StatsService over the daily-results store.
func NewStatsService(aggregates repository.AggregateRepo, users auth.Provider) StatsService {
	return &statsService{aggregates: aggregates, users: users, now: time.Now}
}

// NewStatsServiceWithClock is NewStatsService with an injected clock.
func NewStatsServiceWithClock(aggregates repository.AggregateRepo, users auth.Provider, now func() time.Time) StatsService {
	return &statsService{aggregates: aggregates, users: users, now: now}
}

func (s *statsService) Range(ctx context.Context, days int) (*RangeSummary, error) {
	identity, ok := s.users.Current()
	if !ok {
		return nil, fmt.Errorf("computing stats: %w", ErrUnauthenticated)
	}
	if days < 1 {
		return nil, fmt.Errorf("computing stats: window must be at least one day")
	}

	to := s.now()
	from := to.AddDate(0, 0, -(days - 1))

	rows, err := s.aggregates.ListRange(ctx, identity.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	summary := &RangeSummary{From: from, To: to, Days: rows}
	for _, row := range rows {
		summary.TotalWorkSeconds += row.TotalWorkSeconds
		summary.TotalBreakSeconds += row.TotalBreakSeconds
		if summary.BestDay == nil || row.TotalWorkSeconds > summary.BestDay.TotalWorkSeconds {
			summary.BestDay = row
		}
	}
	if len(rows) > 0 {
		summary.AvgWorkSeconds = summary.TotalWorkSeconds / len(rows)
	}
	return summary, nil
}
