package service

import (
	"context"
	"testing"
	"time"

	"github.com/mfriesen/daybook/internal/repository"
	"github.com/mfriesen/daybook/internal/store"
	"github.com/mfriesen/daybook/internal/testutil"
	"github.com/mfriesen/daybook/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full day lifecycle: track two sessions with the engine, merge them,
// save the day, then read it back as history the next day.
func TestDayLifecycle_TrackMergeSaveFetch(t *testing.T) {
	ctx := context.Background()

	now := time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)
	clock := func() time.Time { return now }

	sessions, err := store.OpenSessionStore(&store.MemBlob{})
	require.NoError(t, err)
	repo := repository.NewSQLiteAggregateRepo(testutil.NewTestDB(t))

	sessionSvc := NewSessionServiceWithClock(sessions, clock)
	syncSvc := NewSyncServiceWithClock(repo, signedIn("user-1"), NoopObserver{}, clock)

	// Morning: 25 min work, 5 min break.
	engine := timer.NewEngine()
	engine.Start()
	for i := 0; i < 1500; i++ {
		engine.Tick()
	}
	engine.Pause()
	for i := 0; i < 300; i++ {
		engine.Tick()
	}
	work, brk := engine.End()
	_, err = sessionSvc.Record(ctx, work, brk, now)
	require.NoError(t, err)

	// Afternoon: another 10 minutes of work.
	now = time.Date(2026, 3, 2, 15, 0, 0, 0, time.Local)
	engine.Start()
	for i := 0; i < 600; i++ {
		engine.Tick()
	}
	work, brk = engine.End()
	_, err = sessionSvc.Record(ctx, work, brk, now)
	require.NoError(t, err)

	// Merge the day down to one session.
	merged, err := sessionSvc.MergeDay(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, merged)
	assert.Equal(t, 2100, merged.WorkSeconds)
	assert.Equal(t, 300, merged.BreakSeconds)

	// Save the cumulative totals.
	dayWork, dayBreak := sessionSvc.DayTotals(ctx, now)
	_, err = syncSvc.SaveDay(ctx, now, dayWork, dayBreak)
	require.NoError(t, err)

	// Next day the totals are history, served from the remote store.
	tracked := now
	now = now.AddDate(0, 0, 1)
	result, err := syncSvc.FetchDay(ctx, tracked)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 2100, result.Aggregate.TotalWorkSeconds)
	assert.Equal(t, 300, result.Aggregate.TotalBreakSeconds)
}
