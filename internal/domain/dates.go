package domain

import "time"

// DateLayout is the storage form for calendar dates.
const DateLayout = "2006-01-02"

// SameDay reports whether two instants fall on the same calendar day,
// compared by local year/month/day components rather than 24-hour buckets,
// so DST transitions never shift membership.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AfterDay reports whether a falls on a calendar day strictly after b's.
func AfterDay(a, b time.Time) bool {
	return StartOfDay(a).After(StartOfDay(b))
}

// BeforeDay reports whether a falls on a calendar day strictly before b's.
func BeforeDay(a, b time.Time) bool {
	return StartOfDay(a).Before(StartOfDay(b))
}
