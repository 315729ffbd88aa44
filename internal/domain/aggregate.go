package domain

import "time"

// DailyAggregate is the single persisted summary row per user per calendar
// date. Writes are idempotent replacements keyed (UserID, Date), never
// increments.
type DailyAggregate struct {
	UserID            string
	Date              time.Time
	TotalWorkSeconds  int
	TotalBreakSeconds int
}
