package timeutil

import "time"

const (
	entryTimeLayout  = "3:04 PM"
	dayHeadingLayout = "Monday, January 02, 2006"
	shortDateLayout  = "Jan 02, 2006"
)

// FormatEntryTime renders a capture time as "9:05 AM".
func FormatEntryTime(t time.Time) string {
	return t.Format(entryTimeLayout)
}

// FormatDayHeading renders a bucket date as "Monday, January 15, 2024".
func FormatDayHeading(t time.Time) string {
	return t.Format(dayHeadingLayout)
}

// FormatShortDate renders a date as "Jan 15, 2024".
func FormatShortDate(t time.Time) string {
	return t.Format(shortDateLayout)
}
