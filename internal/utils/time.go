package utils

import (
	"fmt"
	"time"
)

// FormatClock renders a duration as MM:SS, the way the session timer shows it.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatLocal returns the provided time formatted in the local time zone.
func FormatLocal(t time.Time) string {
	return t.In(time.Local).Format(time.RFC1123)
}
