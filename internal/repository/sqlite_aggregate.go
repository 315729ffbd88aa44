package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mfriesen/daybook/internal/db"
	"github.com/mfriesen/daybook/internal/domain"
)

// SQLiteAggregateRepo implements AggregateRepo using a SQLite database.
type SQLiteAggregateRepo struct {
	db db.DBTX
}

// NewSQLiteAggregateRepo creates a new SQLiteAggregateRepo.
func NewSQLiteAggregateRepo(conn db.DBTX) *SQLiteAggregateRepo {
	return &SQLiteAggregateRepo{db: conn}
}

func (r *SQLiteAggregateRepo) Upsert(ctx context.Context, a *domain.DailyAggregate) error {
	query := `INSERT INTO daily_results (user_id, date, total_work_time, total_break_time, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE
		SET total_work_time = excluded.total_work_time,
		    total_break_time = excluded.total_break_time,
		    updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		a.UserID,
		a.Date.Format(domain.DateLayout),
		a.TotalWorkSeconds,
		a.TotalBreakSeconds,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting daily result: %w", err)
	}
	return nil
}

func (r *SQLiteAggregateRepo) GetByUserDate(ctx context.Context, userID string, date time.Time) (*domain.DailyAggregate, error) {
	query := `SELECT user_id, date, total_work_time, total_break_time
		FROM daily_results WHERE user_id = ? AND date = ?`
	row := r.db.QueryRowContext(ctx, query, userID, date.Format(domain.DateLayout))
	return r.scanAggregate(row)
}

func (r *SQLiteAggregateRepo) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyAggregate, error) {
	query := `SELECT user_id, date, total_work_time, total_break_time
		FROM daily_results
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query,
		userID,
		from.Format(domain.DateLayout),
		to.Format(domain.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("listing daily results: %w", err)
	}
	defer rows.Close()

	var aggregates []*domain.DailyAggregate
	for rows.Next() {
		var a domain.DailyAggregate
		var dateStr string
		if err := rows.Scan(&a.UserID, &dateStr, &a.TotalWorkSeconds, &a.TotalBreakSeconds); err != nil {
			return nil, fmt.Errorf("scanning daily result row: %w", err)
		}
		parsed, parseErr := time.ParseInLocation(domain.DateLayout, dateStr, time.Local)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing date: %w", parseErr)
		}
		a.Date = parsed
		aggregates = append(aggregates, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily results: %w", err)
	}
	return aggregates, nil
}

// scanAggregate scans a single aggregate from a *sql.Row.
func (r *SQLiteAggregateRepo) scanAggregate(row *sql.Row) (*domain.DailyAggregate, error) {
	var a domain.DailyAggregate
	var dateStr string

	err := row.Scan(&a.UserID, &dateStr, &a.TotalWorkSeconds, &a.TotalBreakSeconds)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily result: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily result: %w", err)
	}

	parsed, parseErr := time.ParseInLocation(domain.DateLayout, dateStr, time.Local)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing date: %w", parseErr)
	}
	a.Date = parsed
	return &a, nil
}
