package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mfriesen/daybook/internal/domain"
	"github.com/mfriesen/daybook/internal/store"
)

type sessionService struct {
	sessions *store.SessionStore
	now      func() time.Time
}

// NewSessionService creates a SessionService over the local session store.
func NewSessionService(sessions *store.SessionStore) SessionService {
	return &sessionService{sessions: sessions, now: time.Now}
}

// NewSessionServiceWithClock is NewSessionService with an injected clock,
// for deterministic tests around day boundaries.
func NewSessionServiceWithClock(sessions *store.SessionStore, now func() time.Time) SessionService {
	return &sessionService{sessions: sessions, now: now}
}

func (s *sessionService) Record(ctx context.Context, workSeconds, breakSeconds int, viewedDay time.Time) (*domain.WorkSession, error) {
	endedAt := s.now()

	if !domain.SameDay(viewedDay, endedAt) {
		return nil, fmt.Errorf("recording session: %w", ErrWrongDay)
	}
	if workSeconds == 0 && breakSeconds == 0 {
		return nil, fmt.Errorf("recording session: %w", ErrNoData)
	}

	// The start is derived from the counters, not recorded independently:
	// no wall-clock time passes outside the engine's accrual, so the
	// subtraction is exact under normal operation.
	startedAt := endedAt.Add(-time.Duration(workSeconds+breakSeconds) * time.Second)

	// A session spilling over the previous midnight is clamped to the
	// start of the end instant's day. The true start boundary is lost;
	// the whole duration stays attributed to the day it ended on.
	if !domain.SameDay(startedAt, endedAt) {
		startedAt = domain.StartOfDay(endedAt)
	}

	session := domain.WorkSession{
		ID:           uuid.New().String(),
		Date:         endedAt,
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		WorkSeconds:  workSeconds,
		BreakSeconds: breakSeconds,
		Status:       domain.SessionCompleted,
	}
	if err := s.sessions.Append(session); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}
	return &session, nil
}

func (s *sessionService) ListByDate(ctx context.Context, day time.Time) []domain.WorkSession {
	return s.sessions.FilterByDate(day)
}

func (s *sessionService) MergeDay(ctx context.Context, day time.Time) (*domain.WorkSession, error) {
	sessions := s.sessions.FilterByDate(day)
	if len(sessions) <= 1 {
		return nil, nil
	}

	merged := domain.MergeSessions(sessions)
	if err := s.sessions.ReplaceForDate(day, []domain.WorkSession{merged}); err != nil {
		return nil, fmt.Errorf("replacing merged sessions: %w", err)
	}
	return &merged, nil
}

func (s *sessionService) DayTotals(ctx context.Context, day time.Time) (int, int) {
	sessions := s.sessions.FilterByDate(day)
	return domain.SumWorkSeconds(sessions), domain.SumBreakSeconds(sessions)
}
