package puppet

import (
	"fmt"
	"time"
)

// Humanize renders d as "D days, H hours, M minutes and S seconds ago",
// leaving out leading zero components. Seconds are always present.
func Humanize(d time.Duration) string {
	secs := int64(d / time.Second)
	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60

	msg := fmt.Sprintf("%d seconds ago", secs%60)
	if minutes != 0 {
		msg = fmt.Sprintf("%d minutes and %s", minutes, msg)
	}
	if hours != 0 {
		msg = fmt.Sprintf("%d hours, %s", hours, msg)
	}
	if days != 0 {
		msg = fmt.Sprintf("%d days, %s", days, msg)
	}
	return msg
}
