package session

import (
	"fmt"
	"time"
)

// FormatClock renders a non-negative duration as MM:SS, truncating
// toward zero (01:59.9 displays as 01:59). Negative input clamps to
// "00:00"; the timer invariant means it should never occur.
// Minutes are not wrapped at the hour, so an hour renders as "60:00".
func FormatClock(d time.Duration) string {
	if d < 0 {
		return "00:00"
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
