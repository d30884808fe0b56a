package tournament

import (
	"fmt"
	"time"
)

const (
	TimerOK       = "ok"
	TimerWarning  = "warning"
	TimerCritical = "critical"
	TimerExpired  = "expired"
)

// TimerReading is a snapshot of a table's turn timer.
type TimerReading struct {
	Running          bool   `json:"running"`
	RemainingSeconds int    `json:"remainingSeconds"`
	Clock            string `json:"clock"`
	Level            string `json:"level"`
}

// Remaining returns whole seconds left in a turn of the given duration. A stopped
// timer reports the full duration.
func Remaining(startedAt *int64, duration time.Duration, now time.Time) int {
	total := int(duration / time.Second)
	if startedAt == nil {
		return total
	}
	elapsed := int(now.Sub(time.UnixMilli(*startedAt)) / time.Second)
	switch left := total - elapsed; {
	case left <= 0:
		return 0
	case left > total:
		return total
	default:
		return left
	}
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func TimerLevel(remaining int) string {
	switch {
	case remaining <= 0:
		return TimerExpired
	case remaining < 15:
		return TimerCritical
	case remaining < 30:
		return TimerWarning
	default:
		return TimerOK
	}
}

// ReadTimer reads the table's timer at now.
func ReadTimer(table Table, duration time.Duration, now time.Time) TimerReading {
	remaining := Remaining(table.TimerStartedAt, duration, now)
	return TimerReading{
		Running:          table.TimerStartedAt != nil,
		RemainingSeconds: remaining,
		Clock:            FormatClock(remaining),
		Level:            TimerLevel(remaining),
	}
}
