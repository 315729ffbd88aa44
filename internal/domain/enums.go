package domain

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
)

// ValidSessionStatuses is the canonical set of accepted session status strings.
var ValidSessionStatuses = map[string]bool{
	"active": true, "paused": true, "completed": true,
}
