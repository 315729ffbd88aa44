package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mfriesen/daybook/internal/auth"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/mfriesen/daybook/internal/repository"
)

type syncService struct {
	aggregates repository.AggregateRepo
	users      auth.Provider
	observer   Observer
	now        func() time.Time
}

// NewSyncService creates a SyncService over the daily-results store and the
// auth collaborator.
func NewSyncService(aggregates repository.AggregateRepo, users auth.Provider, observer Observer) SyncService {
	return &syncService{aggregates: aggregates, users: users, observer: observer, now: time.Now}
}

// NewSyncServiceWithClock is NewSyncService with an injected clock.
func NewSyncServiceWithClock(aggregates repository.AggregateRepo, users auth.Provider, observer Observer, now func() time.Time) SyncService {
	return &syncService{aggregates: aggregates, users: users, observer: observer, now: now}
}

func (s *syncService) SaveDay(ctx context.Context, day time.Time, workSeconds, breakSeconds int) (*SaveResult, error) {
	identity, ok := s.users.Current()
	if !ok {
		return nil, fmt.Errorf("saving day: %w", ErrUnauthenticated)
	}
	if domain.AfterDay(day, s.now()) {
		return nil, fmt.Errorf("saving day %s: %w", day.Format(domain.DateLayout), ErrInvalidDate)
	}
	if workSeconds == 0 {
		return nil, fmt.Errorf("saving day %s: %w", day.Format(domain.DateLayout), ErrNoData)
	}

	started := time.Now()
	err := s.aggregates.Upsert(ctx, &domain.DailyAggregate{
		UserID:            identity.UserID,
		Date:              day,
		TotalWorkSeconds:  workSeconds,
		TotalBreakSeconds: breakSeconds,
	})
	s.observe("save", identity.UserID, day, started, err)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	return &SaveResult{
		UserID:       identity.UserID,
		Date:         day,
		WorkSeconds:  workSeconds,
		BreakSeconds: breakSeconds,
	}, nil
}

func (s *syncService) FetchDay(ctx context.Context, day time.Time) (*FetchResult, error) {
	identity, ok := s.users.Current()
	if !ok {
		return nil, fmt.Errorf("fetching day: %w", ErrUnauthenticated)
	}
	// Today's figures come from the live session list, never the remote
	// store, which may lag an in-progress day.
	if !domain.BeforeDay(day, s.now()) {
		return nil, fmt.Errorf("fetching day %s: %w", day.Format(domain.DateLayout), ErrInvalidDate)
	}

	started := time.Now()
	aggregate, err := s.aggregates.GetByUserDate(ctx, identity.UserID, day)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.observe("fetch", identity.UserID, day, started, nil)
			return &FetchResult{Found: false}, nil
		}
		s.observe("fetch", identity.UserID, day, started, err)
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}
	s.observe("fetch", identity.UserID, day, started, nil)

	return &FetchResult{Aggregate: aggregate, Found: true}, nil
}

func (s *syncService) observe(op, userID string, day time.Time, started time.Time, err error) {
	event := SyncEvent{
		Op:        op,
		UserID:    userID,
		Date:      day.Format(domain.DateLayout),
		LatencyMs: time.Since(started).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = "remote_unavailable"
	}
	s.observer.OnSyncComplete(event)
}
