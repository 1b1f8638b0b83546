package teachpy

import "time"

// TimestampLayout is the canonical storage format for session creation
// times. It is zero-padded and fixed-width, so lexicographic comparison of
// formatted values is order-equivalent to chronological comparison.
const TimestampLayout = "2006-01-02 15:04"

// FormatTimestamp renders t in the canonical storage format.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// DisplayLabel converts a creation time into a human-relative label:
// "Today", "Yesterday", or the weekday name. Comparison is by calendar
// date, not elapsed hours, so a session created at 23:59 reads "Yesterday"
// two minutes later.
func DisplayLabel(created, now time.Time) string {
	cy, cm, cd := created.Date()
	ny, nm, nd := now.Date()
	if cy == ny && cm == nm && cd == nd {
		return "Today"
	}
	yy, ym, yd := now.AddDate(0, 0, -1).Date()
	if cy == yy && cm == ym && cd == yd {
		return "Yesterday"
	}
	return created.Weekday().String()
}
