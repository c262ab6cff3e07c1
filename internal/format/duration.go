package format

import (
	"fmt"
	"time"
)

// FormatDuration renders d as "30M", "01H 35M" or "02D 01H 35M". Sub-minute
// remainders are dropped.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d / time.Minute)
	days, mins := mins/(24*60), mins%(24*60)
	hours, mins := mins/60, mins%60

	switch {
	case days > 0:
		return fmt.Sprintf("%02dD %02dH %02dM", days, hours, mins)
	case hours > 0:
		return fmt.Sprintf("%02dH %02dM", hours, mins)
	default:
		return fmt.Sprintf("%02dM", mins)
	}
}
