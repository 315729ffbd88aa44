package service

import (
	"context"
	"testing"
	"time"

	"github.com/mfriesen/daybook/internal/auth"
	"github.com/mfriesen/daybook/internal/repository"
	"github.com/mfriesen/daybook/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statsNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)

func newStatsFixture(t *testing.T) (StatsService, repository.AggregateRepo) {
	t.Helper()
	repo := repository.NewSQLiteAggregateRepo(testutil.NewTestDB(t))
	svc := NewStatsServiceWithClock(repo, signedIn("user-1"), func() time.Time { return statsNow })
	return svc, repo
}

func TestRange_SummarizesWindow(t *testing.T) {
	svc, repo := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestAggregate("user-1", statsNow.AddDate(0, 0, -1), 3600, testutil.WithBreakSeconds(600))))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestAggregate("user-1", statsNow.AddDate(0, 0, -3), 1800)))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestAggregate("user-1", statsNow.AddDate(0, 0, -20), 9999)), "outside the window")

	summary, err := svc.Range(ctx, 7)
	require.NoError(t, err)

	require.Len(t, summary.Days, 2)
	assert.Equal(t, 5400, summary.TotalWorkSeconds)
	assert.Equal(t, 600, summary.TotalBreakSeconds)
	assert.Equal(t, 2700, summary.AvgWorkSeconds, "average over days with data, not window length")
	require.NotNil(t, summary.BestDay)
	assert.Equal(t, 3600, summary.BestDay.TotalWorkSeconds)

	// Rows come back ordered by date ascending.
	assert.True(t, summary.Days[0].Date.Before(summary.Days[1].Date))
}

func TestRange_EmptyWindow(t *testing.T) {
	svc, _ := newStatsFixture(t)

	summary, err := svc.Range(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, summary.Days)
	assert.Equal(t, 0, summary.TotalWorkSeconds)
	assert.Equal(t, 0, summary.AvgWorkSeconds)
	assert.Nil(t, summary.BestDay)
}

func TestRange_RequiresUser(t *testing.T) {
	repo := repository.NewSQLiteAggregateRepo(testutil.NewTestDB(t))
	svc := NewStatsServiceWithClock(repo, &auth.StaticProvider{}, func() time.Time { return statsNow })

	_, err := svc.Range(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestRange_RejectsNonPositiveWindow(t *testing.T) {
	svc, _ := newStatsFixture(t)

	_, err := svc.Range(context.Background(), 0)
	assert.Error(t, err)
}

func TestRange_RemoteFailureSurfacesAsUnavailable(t *testing.T) {
	svc := NewStatsServiceWithClock(testutil.FailingAggregateRepo{}, signedIn("user-1"), func() time.Time { return statsNow })

	_, err := svc.Range(context.Background(), 7)
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}
