package shared

import (
	"fmt"
	"time"
)

// Clock provides the current time. Use RealClock in production and a fixed
// clock in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FormatTimestamp renders t as a boot log timestamp: 15:04:05.00.
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%s.%02d", t.Format("15:04:05"), t.Nanosecond()/int(10*time.Millisecond))
}

// FormatElapsed renders d as seconds with one decimal, e.g. "3.2s". Negative
// durations render as zero.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
