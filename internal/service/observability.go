package service

import (
	"fmt"
	"io"
	"time"
)

// SyncEvent records metadata about a single save or fetch against the
// daily-results store.
type SyncEvent struct {
	Op        string // "save" or "fetch"
	UserID    string
	Date      string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about remote-store calls for logging.
type Observer interface {
	OnSyncComplete(event SyncEvent)
}

// LogObserver writes sync events to an io.Writer, one line per call.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnSyncComplete(event SyncEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] sync op=%s user=%s date=%s latency_ms=%d status=%s\n",
		ts, event.Op, event.UserID, event.Date, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnSyncComplete(SyncEvent) {}
