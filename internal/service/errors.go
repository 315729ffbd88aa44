package service

import "errors"

var (
	// ErrUnauthenticated indicates no user is present for an operation
	// that requires one.
	ErrUnauthenticated = errors.New("no user signed in")

	// ErrInvalidDate indicates the requested date is outside the
	// operation's allowed window (a future-dated save, or a fetch for
	// today, whose figures come from the live session list).
	ErrInvalidDate = errors.New("invalid date for operation")

	// ErrNoData indicates there is nothing to save for the day.
	ErrNoData = errors.New("no tracked time to save")

	// ErrRemoteUnavailable indicates the daily-results store could not be
	// reached or failed. Never retried automatically and never fatal: the
	// timer and the local session list stay usable.
	ErrRemoteUnavailable = errors.New("daily results store unavailable")

	// ErrWrongDay indicates an attempt to end a session while viewing a
	// day other than today, which would attribute time to the wrong date.
	ErrWrongDay = errors.New("selected day is not today")
)
