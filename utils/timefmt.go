package utils

import "time"

// FormatDay renders a date heading like "Monday, January 02".
func FormatDay(t time.Time) string {
	return t.Format("Monday, January 02")
}

// FormatClock renders a time of day like "03:04 PM".
func FormatClock(t time.Time) string {
	return t.Format("03:04 PM")
}

// FormatFriendly renders a full user-facing timestamp like
// "Monday, January 02 at 03:04 PM".
func FormatFriendly(t time.Time) string {
	return t.Format("Monday, January 02 at 03:04 PM")
}
