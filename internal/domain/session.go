package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkSession is one continuous start-to-end tracking interval with its
// accumulated work and break seconds. Sessions are immutable once created;
// merging produces a replacement session rather than mutating inputs.
type WorkSession struct {
	ID           string
	Date         time.Time // calendar day the session belongs to
	StartedAt    time.Time
	EndedAt      time.Time // zero while the session is still open
	WorkSeconds  int
	BreakSeconds int
	Status       SessionStatus
}

// Completed reports whether the session has been closed out.
func (s *WorkSession) Completed() bool {
	return s.Status == SessionCompleted
}

// Duration returns the total tracked span in seconds.
func (s *WorkSession) Duration() int {
	return s.WorkSeconds + s.BreakSeconds
}

// MergeSessions collapses sessions from a single calendar day into one
// completed session. The caller guarantees all inputs share the same day;
// membership is not re-validated here. A single-element input is returned
// unchanged. Order matters: the merged session keeps the first input's Date
// and StartedAt and the last input's EndedAt, so callers pass sessions in
// their original insertion order.
func MergeSessions(sessions []WorkSession) WorkSession {
	if len(sessions) == 1 {
		return sessions[0]
	}

	merged := WorkSession{
		ID:        uuid.New().String(),
		Date:      sessions[0].Date,
		StartedAt: sessions[0].StartedAt,
		EndedAt:   sessions[len(sessions)-1].EndedAt,
		Status:    SessionCompleted,
	}
	for _, s := range sessions {
		merged.WorkSeconds += s.WorkSeconds
		merged.BreakSeconds += s.BreakSeconds
	}
	return merged
}

// SumWorkSeconds totals the work seconds across sessions.
func SumWorkSeconds(sessions []WorkSession) int {
	total := 0
	for _, s := range sessions {
		total += s.WorkSeconds
	}
	return total
}

// SumBreakSeconds totals the break seconds across sessions.
func SumBreakSeconds(sessions []WorkSession) int {
	total := 0
	for _, s := range sessions {
		total += s.BreakSeconds
	}
	return total
}
