package temporal

import (
	"regexp"
	"strings"
	"time"

	"meetwise/models"
)

// DefaultDurationMinutes is assumed when the text carries no duration.
const DefaultDurationMinutes = 30

// timePeriod maps a named time-of-day to its hour bounds. Exact instants
// (midnight, noon) resolve to a single point rather than a bounded range.
type timePeriod struct {
	name      string
	startHour int
	endHour   int
	exact     bool
}

// Ordered so that "afternoon" wins over the "noon" it contains.
var timePeriods = []timePeriod{
	{"morning", 5, 12, false},
	{"afternoon", 12, 18, false},
	{"evening", 18, 21, false},
	{"night", 21, 24, false},
	{"midnight", 0, 0, true},
	{"midday", 12, 12, true},
	{"noon", 12, 12, true},
	{"dawn", 5, 6, false},
	{"dusk", 18, 19, false},
	{"twilight", 19, 20, false},
}

var (
	rangePatterns = []*regexp.Regexp{
		regexp.MustCompile(`between\s+(\d{1,2}(?::\d{2})?)\s*(am|pm)?\s*and\s*(\d{1,2}(?::\d{2})?)\s*(am|pm)?`),
		regexp.MustCompile(`from\s+(\d{1,2}(?::\d{2})?)\s*(am|pm)?\s*to\s*(\d{1,2}(?::\d{2})?)\s*(am|pm)?`),
		regexp.MustCompile(`(\d{1,2}(?::\d{2})?)\s*[-–]\s*(\d{1,2}(?::\d{2})?)\s*(am|pm)`),
	}

	clockRe        = regexp.MustCompile(`\d{1,2}:\d{2}|\d{1,2}\s*(am|pm)`)
	availabilityRe = regexp.MustCompile(`\b(availability|available|free|openings?|slots?)\b`)

	clockPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)`),
		regexp.MustCompile(`(\d{1,2})\s*(am|pm)`),
		regexp.MustCompile(`(\d{1,2}):(\d{2})`),
	}
)

// Resolve turns a free-text expression into a TemporalSpec anchored at now in
// the given location. It returns nil when no time can be inferred; it never
// fails. Callers treat nil as "ask for clarification" or "reuse sticky
// context".
func Resolve(text string, now time.Time, loc *time.Location) *models.TemporalSpec {
	source := text
	text = strings.ToLower(strings.TrimSpace(text))
	now = now.In(loc)

	duration := ExtractDuration(text)
	if duration == 0 {
		duration = DefaultDurationMinutes
	}

	if spec, matched := resolveClockRange(text, now, loc, duration); matched {
		if spec != nil {
			spec.SourceText = source
		}
		return spec
	}
	if spec := resolveSingle(text, now, loc, duration); spec != nil {
		spec.SourceText = source
		return spec
	}
	return nil
}

// resolveClockRange handles "between X and Y", "from X to Y" and "X-Y pm".
// The date portion resolves independently and may span multiple days. The
// second return value reports whether a range pattern matched at all; a
// matched range with inverted bounds stays unresolvable rather than falling
// back to a point interpretation.
func resolveClockRange(text string, now time.Time, loc *time.Location, duration int) (*models.TemporalSpec, bool) {
	for i, re := range rangePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var startStr, startPeriod, endStr, endPeriod string
		if i < 2 {
			startStr, startPeriod, endStr, endPeriod = m[1], m[2], m[3], m[4]
		} else {
			startStr, endStr, endPeriod = m[1], m[2], m[3]
		}

		// A lone AM/PM marker binds both ends of the range.
		if startPeriod == "" {
			startPeriod = endPeriod
		}
		if endPeriod == "" {
			endPeriod = startPeriod
		}

		startHour, startMin, ok := parseTimeString(startStr, startPeriod)
		if !ok {
			continue
		}
		endHour, endMin, ok := parseTimeString(endStr, endPeriod)
		if !ok {
			continue
		}

		startDay, endDay := dateSpan(text, now, loc)
		start := time.Date(startDay.Year(), startDay.Month(), startDay.Day(), startHour, startMin, 0, 0, loc)
		end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), endHour, endMin, 0, 0, loc)
		if end.Before(start) {
			return nil, true
		}

		return &models.TemporalSpec{
			Start:           start,
			End:             end,
			IsRange:         true,
			DurationMinutes: duration,
		}, true
	}
	return nil, false
}

// resolveSingle handles full-day availability cues, named periods, explicit
// clock times and, last, a general fuzzy parse of the whole text.
func resolveSingle(text string, now time.Time, loc *time.Location, duration int) *models.TemporalSpec {
	hasClock := clockRe.MatchString(text)
	period, hasPeriod := matchPeriod(text)

	day, dateCue := datePart(text, now, loc)

	if !hasClock && !hasPeriod {
		if availabilityRe.MatchString(text) {
			start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
			end := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999999000, loc)
			return &models.TemporalSpec{
				Start:           start,
				End:             end,
				IsRange:         true,
				IsFullDay:       true,
				DurationMinutes: duration,
			}
		}
	}

	if hasPeriod {
		if period.exact {
			start := time.Date(day.Year(), day.Month(), day.Day(), period.startHour, 0, 0, 0, loc)
			return &models.TemporalSpec{
				Start:           start,
				End:             start.Add(time.Duration(duration) * time.Minute),
				DurationMinutes: duration,
			}
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), period.startHour, 0, 0, 0, loc)
		end := time.Date(day.Year(), day.Month(), day.Day(), period.endHour, 0, 0, 0, loc)
		return &models.TemporalSpec{
			Start:           start,
			End:             end,
			IsRange:         true,
			DurationMinutes: duration,
		}
	}

	if hasClock {
		if hour, min, ok := parseClockTime(text); ok {
			start := time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, loc)
			return &models.TemporalSpec{
				Start:           start,
				End:             start.Add(time.Duration(duration) * time.Minute),
				DurationMinutes: duration,
			}
		}
	}

	// A bare date cue without any clock or period is ambiguous about the
	// time; surface it as unresolvable so the caller asks for one.
	if dateCue {
		return nil
	}

	if t, ok := fuzzyParse(text, now); ok {
		start := t
		return &models.TemporalSpec{
			Start:           start,
			End:             start.Add(time.Duration(duration) * time.Minute),
			DurationMinutes: duration,
		}
	}
	return nil
}

func matchPeriod(text string) (timePeriod, bool) {
	for _, p := range timePeriods {
		if strings.Contains(text, p.name) {
			return p, true
		}
	}
	return timePeriod{}, false
}

// parseClockTime extracts the first explicit clock time in the text.
func parseClockTime(text string) (hour, min int, ok bool) {
	for i, re := range clockPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		switch i {
		case 0:
			hour, min = atoi(m[1]), atoi(m[2])
			hour = applyMeridiem(hour, m[3])
		case 1:
			hour = applyMeridiem(atoi(m[1]), m[2])
		case 2:
			hour, min = atoi(m[1]), atoi(m[2])
		}
		if hour > 23 || min > 59 {
			return 0, 0, false
		}
		return hour, min, true
	}
	return 0, 0, false
}

// parseTimeString parses "3", "3:30" plus an optional am/pm marker.
func parseTimeString(s, period string) (hour, min int, ok bool) {
	if h, m, found := strings.Cut(s, ":"); found {
		hour, min = atoi(h), atoi(m)
	} else {
		hour = atoi(s)
	}
	hour = applyMeridiem(hour, period)
	if hour > 23 || min > 59 {
		return 0, 0, false
	}
	return hour, min, true
}

func applyMeridiem(hour int, period string) int {
	switch strings.ToLower(period) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
