package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "00:00:59", FormatClock(59))
	assert.Equal(t, "00:25:00", FormatClock(1500))
	assert.Equal(t, "01:00:05", FormatClock(3605))
	assert.Equal(t, "00:00:00", FormatClock(-1))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0s", FormatDuration(0))
	assert.Equal(t, "45s", FormatDuration(45))
	assert.Equal(t, "25m", FormatDuration(1500))
	assert.Equal(t, "5m 30s", FormatDuration(330))
	assert.Equal(t, "2h", FormatDuration(7200))
	assert.Equal(t, "2h 15m", FormatDuration(8100))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
	assert.Equal(t, "Mar 2, 2021", HumanDate(time.Date(2021, 3, 2, 10, 0, 0, 0, time.Local)))
}

func TestClockTime(t *testing.T) {
	assert.Equal(t, "—", ClockTime(time.Time{}))
	assert.Equal(t, "09:30:00", ClockTime(time.Date(2026, 3, 2, 9, 30, 0, 0, time.Local)))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"DATE", "WORK"},
		[][]string{
			{"2026-03-02", "25m"},
			{"2026-03-03", "1h 10m"},
		},
	)
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "2026-03-03")
	assert.Contains(t, out, "─")
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}
