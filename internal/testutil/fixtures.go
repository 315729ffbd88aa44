package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfriesen/daybook/internal/domain"
)

// Session options
type SessionOption func(*domain.WorkSession)

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.StartedAt = t
	}
}

func WithEndedAt(t time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.EndedAt = t
	}
}

func WithSessionStatus(status domain.SessionStatus) SessionOption {
	return func(s *domain.WorkSession) {
		s.Status = status
	}
}

// NewTestSession creates a completed session on the given calendar day.
// Unless overridden, it starts at 09:00 and its end follows from the
// tracked duration.
func NewTestSession(day time.Time, workSeconds, breakSeconds int, opts ...SessionOption) domain.WorkSession {
	start := domain.StartOfDay(day).Add(9 * time.Hour)
	s := domain.WorkSession{
		ID:           uuid.New().String(),
		Date:         day,
		StartedAt:    start,
		EndedAt:      start.Add(time.Duration(workSeconds+breakSeconds) * time.Second),
		WorkSeconds:  workSeconds,
		BreakSeconds: breakSeconds,
		Status:       domain.SessionCompleted,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Aggregate options
type AggregateOption func(*domain.DailyAggregate)

func WithBreakSeconds(v int) AggregateOption {
	return func(a *domain.DailyAggregate) {
		a.TotalBreakSeconds = v
	}
}

// NewTestAggregate creates a daily result row for a user and day.
func NewTestAggregate(userID string, day time.Time, workSeconds int, opts ...AggregateOption) *domain.DailyAggregate {
	a := &domain.DailyAggregate{
		UserID:           userID,
		Date:             day,
		TotalWorkSeconds: workSeconds,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
