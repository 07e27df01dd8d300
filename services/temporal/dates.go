package temporal

import (
	"regexp"
	"strings"
	"time"

	naturaldate "github.com/tj/go-naturaldate"
)

// relativeDay maps a relative phrase to a day offset from the anchor.
// Longer phrases come first so "day after tomorrow" wins over "tomorrow".
var relativeDays = []struct {
	phrase string
	offset int
}{
	{"day after tomorrow", 2},
	{"tomorrow", 1},
	{"today", 0},
	{"next week", 7},
	{"this week", 0},
	{"next month", 30},
	{"this month", 0},
}

// Weekday names in Monday=0 convention, longer aliases first.
var weekdayRe = regexp.MustCompile(`\b(monday|tuesday|tues|wednesday|thursday|thurs|thur|friday|saturday|sunday|mon|tue|wed|thu|fri|sat|sun)\b`)

var weekdayNums = map[string]int{
	"monday": 0, "mon": 0,
	"tuesday": 1, "tue": 1, "tues": 1,
	"wednesday": 2, "wed": 2,
	"thursday": 3, "thu": 3, "thur": 3, "thurs": 3,
	"friday": 4, "fri": 4,
	"saturday": 5, "sat": 5,
	"sunday": 6, "sun": 6,
}

// datePart resolves the date component of the text. The second return value
// reports whether an explicit date cue (relative word or weekday name)
// matched; without one the result comes from a fuzzy parse anchored at now,
// defaulting to now itself.
func datePart(text string, now time.Time, loc *time.Location) (time.Time, bool) {
	for _, rd := range relativeDays {
		if strings.Contains(text, rd.phrase) {
			d := now.AddDate(0, 0, rd.offset)
			return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), true
		}
	}

	if m := weekdayRe.FindStringSubmatch(text); m != nil {
		target := weekdayNums[m[1]]
		current := mondayIndexed(now.Weekday())

		daysAhead := target - current
		// The bare name of today's weekday always means next week's
		// occurrence, never today.
		if daysAhead <= 0 {
			daysAhead += 7
		}
		if strings.Contains(text, "next") {
			daysAhead += 7
		}

		d := now.AddDate(0, 0, daysAhead)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc), true
	}

	if t, ok := fuzzyParse(text, now); ok {
		return t, false
	}
	return now, false
}

// dateSpan resolves the date bounds a clock range applies to. Named spans
// ("this week", "next week") yield Monday through Sunday; anything else
// collapses to the single day datePart resolves.
func dateSpan(text string, now time.Time, loc *time.Location) (time.Time, time.Time) {
	weekday := mondayIndexed(now.Weekday())

	if strings.Contains(text, "this week") {
		start := now.AddDate(0, 0, -weekday)
		return midnight(start, loc), midnight(start.AddDate(0, 0, 6), loc)
	}
	if strings.Contains(text, "next week") {
		start := now.AddDate(0, 0, 7-weekday)
		return midnight(start, loc), midnight(start.AddDate(0, 0, 6), loc)
	}

	day, _ := datePart(text, now, loc)
	return day, day
}

// fuzzyParse attempts a general natural-language parse of the whole text,
// anchored at now and biased to the future.
func fuzzyParse(text string, now time.Time) (time.Time, bool) {
	t, err := naturaldate.Parse(text, now, naturaldate.WithDirection(naturaldate.Future))
	if err != nil || t.Equal(now) {
		return time.Time{}, false
	}
	return t, true
}

func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func midnight(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
