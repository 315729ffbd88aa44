package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/mfriesen/daybook/internal/domain"
)

// ErrRemoteDown is the failure surfaced by FailingAggregateRepo.
var ErrRemoteDown = errors.New("simulated remote failure")

// FailingAggregateRepo fails every call. Used to exercise the
// remote-unavailable paths without a broken database.
type FailingAggregateRepo struct{}

func (FailingAggregateRepo) Upsert(context.Context, *domain.DailyAggregate) error {
	return ErrRemoteDown
}

func (FailingAggregateRepo) GetByUserDate(context.Context, string, time.Time) (*domain.DailyAggregate, error) {
	return nil, ErrRemoteDown
}

func (FailingAggregateRepo) ListRange(context.Context, string, time.Time, time.Time) ([]*domain.DailyAggregate, error) {
	return nil, ErrRemoteDown
}
