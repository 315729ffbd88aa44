package service

import (
	"context"
	"time"

	"github.com/mfriesen/daybook/internal/domain"
)

// SessionService owns the local session lifecycle: materializing a session
// when the timer ends, listing a day's sessions and collapsing them.
type SessionService interface {
	// Record materializes a completed session from the timer's final
	// counters. viewedDay guards against attributing time to the wrong
	// date: recording is rejected unless it falls on today.
	Record(ctx context.Context, workSeconds, breakSeconds int, viewedDay time.Time) (*domain.WorkSession, error)
	ListByDate(ctx context.Context, day time.Time) []domain.WorkSession
	// MergeDay collapses all of the day's sessions into one. With one or
	// zero sessions it is a no-op returning nil.
	MergeDay(ctx context.Context, day time.Time) (*domain.WorkSession, error)
	DayTotals(ctx context.Context, day time.Time) (workSeconds, breakSeconds int)
}

// SaveResult is the structured outcome of a successful day save; the UI
// layer decides how to present it.
type SaveResult struct {
	UserID       string
	Date         time.Time
	WorkSeconds  int
	BreakSeconds int
}

// FetchResult is the outcome of a historical-day fetch. Found is false when
// no row exists, which displays as "no data" rather than an error.
type FetchResult struct {
	Aggregate *domain.DailyAggregate
	Found     bool
}

// SyncService reconciles local totals with the remote per-user, per-date
// daily results store.
type SyncService interface {
	SaveDay(ctx context.Context, day time.Time, workSeconds, breakSeconds int) (*SaveResult, error)
	FetchDay(ctx context.Context, day time.Time) (*FetchResult, error)
}

// RangeSummary aggregates a trailing window of daily results.
type RangeSummary struct {
	From, To          time.Time
	Days              []*domain.DailyAggregate
	TotalWorkSeconds  int
	TotalBreakSeconds int
	// AvgWorkSeconds is the mean over days that have a row, not over the
	// whole window.
	AvgWorkSeconds int
	BestDay        *domain.DailyAggregate
}

// StatsService reports over stored daily results.
type StatsService interface {
	Range(ctx context.Context, days int) (*RangeSummary, error)
}
