package repository

import (
	"context"
	"time"

	"github.com/mfriesen/daybook/internal/domain"
)

// AggregateRepo is the client surface of the per-user, per-date daily
// results store. Upsert replaces the whole row on conflict; there is no
// optimistic-concurrency check, so the last writer wins.
type AggregateRepo interface {
	Upsert(ctx context.Context, a *domain.DailyAggregate) error
	GetByUserDate(ctx context.Context, userID string, date time.Time) (*domain.DailyAggregate, error)
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyAggregate, error)
}
