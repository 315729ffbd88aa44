package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mfriesen/daybook/internal/domain"
)

// BlobName is the fixed key the session list is persisted under.
const BlobName = "work-sessions.json"

// SessionStore holds the device-local ordered list of work sessions.
// Insertion order is preserved; the only uniqueness constraint is the id.
// Mutations are flushed to the blob collaborator after they apply, so the
// in-memory list is the source of truth while the process runs.
type SessionStore struct {
	mu       sync.Mutex
	sessions []domain.WorkSession
	blob     Blob
}

// OpenSessionStore loads the persisted session list from the blob.
// A missing blob starts an empty store.
func OpenSessionStore(blob Blob) (*SessionStore, error) {
	s := &SessionStore{blob: blob}

	data, ok, err := blob.Load()
	if err != nil {
		return nil, err
	}
	if ok {
		var records []sessionRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decoding session blob: %w", err)
		}
		s.sessions = make([]domain.WorkSession, 0, len(records))
		for _, rec := range records {
			sess, err := rec.toDomain()
			if err != nil {
				return nil, err
			}
			s.sessions = append(s.sessions, sess)
		}
	}
	return s, nil
}

// Append adds a session to the end of the list.
func (s *SessionStore) Append(session domain.WorkSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions = append(s.sessions, session)
	return s.flushLocked()
}

// FilterByDate returns, in original order, the sessions whose Date falls on
// the given calendar day.
func (s *SessionStore) FilterByDate(day time.Time) []domain.WorkSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []domain.WorkSession
	for _, sess := range s.sessions {
		if domain.SameDay(sess.Date, day) {
			matched = append(matched, sess)
		}
	}
	return matched
}

// ReplaceForDate atomically removes every session on the given day and
// appends the replacements. Used by merge.
func (s *SessionStore) ReplaceForDate(day time.Time, replacements []domain.WorkSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0]
	for _, sess := range s.sessions {
		if !domain.SameDay(sess.Date, day) {
			kept = append(kept, sess)
		}
	}
	s.sessions = append(kept, replacements...)
	return s.flushLocked()
}

// All returns a copy of the full session list in insertion order.
func (s *SessionStore) All() []domain.WorkSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.WorkSession(nil), s.sessions...)
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) flushLocked() error {
	records := make([]sessionRecord, 0, len(s.sessions))
	for _, sess := range s.sessions {
		records = append(records, toRecord(sess))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session blob: %w", err)
	}
	return s.blob.Save(data)
}

// sessionRecord is the wire form of a session inside the blob. Timestamps
// are RFC3339 strings, the date is its calendar-day form.
type sessionRecord struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	StartedAt    string `json:"startTime"`
	EndedAt      string `json:"endTime,omitempty"`
	WorkSeconds  int    `json:"totalWorkTime"`
	BreakSeconds int    `json:"totalBreakTime"`
	Status       string `json:"status"`
}

func toRecord(s domain.WorkSession) sessionRecord {
	rec := sessionRecord{
		ID:           s.ID,
		Date:         s.Date.Format(domain.DateLayout),
		StartedAt:    s.StartedAt.Format(time.RFC3339),
		WorkSeconds:  s.WorkSeconds,
		BreakSeconds: s.BreakSeconds,
		Status:       string(s.Status),
	}
	if !s.EndedAt.IsZero() {
		rec.EndedAt = s.EndedAt.Format(time.RFC3339)
	}
	return rec
}

func (rec sessionRecord) toDomain() (domain.WorkSession, error) {
	date, err := time.ParseInLocation(domain.DateLayout, rec.Date, time.Local)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("parsing session date: %w", err)
	}
	started, err := time.Parse(time.RFC3339, rec.StartedAt)
	if err != nil {
		return domain.WorkSession{}, fmt.Errorf("parsing session start: %w", err)
	}
	s := domain.WorkSession{
		ID:           rec.ID,
		Date:         date,
		StartedAt:    started.Local(),
		WorkSeconds:  rec.WorkSeconds,
		BreakSeconds: rec.BreakSeconds,
		Status:       domain.SessionStatus(rec.Status),
	}
	if rec.EndedAt != "" {
		ended, err := time.Parse(time.RFC3339, rec.EndedAt)
		if err != nil {
			return domain.WorkSession{}, fmt.Errorf("parsing session end: %w", err)
		}
		s.EndedAt = ended.Local()
	}
	return s, nil
}
