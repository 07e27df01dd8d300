package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Anchor: Wednesday, June 11 2025, 10:00 UTC.
var anchor = time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)

func TestResolve_TomorrowAtClockTime(t *testing.T) {
	spec := Resolve("book a meeting tomorrow at 2 pm", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.Equal(t, time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 14, 30, 0, 0, time.UTC), spec.End)
	assert.False(t, spec.IsRange)
	assert.False(t, spec.IsFullDay)
	assert.Equal(t, DefaultDurationMinutes, spec.DurationMinutes)
	assert.Equal(t, "book a meeting tomorrow at 2 pm", spec.SourceText)
}

func TestResolve_ExplicitDurationOverridesDefault(t *testing.T) {
	spec := Resolve("book a 1 hour meeting tomorrow at 2pm", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.Equal(t, 60, spec.DurationMinutes)
	assert.Equal(t, time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC), spec.End)
}

func TestResolve_BetweenRangeInheritsMeridiem(t *testing.T) {
	spec := Resolve("are you free friday between 3 and 5 pm", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.True(t, spec.IsRange)
	assert.Equal(t, time.Date(2025, 6, 13, 15, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 13, 17, 0, 0, 0, time.UTC), spec.End)
}

func TestResolve_DashRange(t *testing.T) {
	spec := Resolve("tomorrow 3-5pm", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.True(t, spec.IsRange)
	assert.Equal(t, time.Date(2025, 6, 12, 15, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 17, 0, 0, 0, time.UTC), spec.End)
}

func TestResolve_RangeAcrossThisWeek(t *testing.T) {
	spec := Resolve("when are you free between 2 and 4 pm this week", anchor, time.UTC)
	require.NotNil(t, spec)

	// Monday of the anchor week is June 9, Sunday is June 15.
	assert.Equal(t, time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 15, 16, 0, 0, 0, time.UTC), spec.End)
	assert.True(t, spec.IsRange)
	assert.True(t, spec.MultiDay())
}

func TestResolve_InvertedRangeIsRejected(t *testing.T) {
	assert.Nil(t, Resolve("between 5 and 3 pm tomorrow", anchor, time.UTC))
}

func TestResolve_SameWeekdayMeansNextOccurrence(t *testing.T) {
	// The anchor is a Wednesday; a bare "wednesday" must land a full week out.
	spec := Resolve("wednesday at 9am", anchor, time.UTC)
	require.NotNil(t, spec)
	assert.Equal(t, time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC), spec.Start)
}

func TestResolve_NextWeekdayAddsAnotherWeek(t *testing.T) {
	spec := Resolve("next monday at 9:30", anchor, time.UTC)
	require.NotNil(t, spec)
	assert.Equal(t, time.Date(2025, 6, 23, 9, 30, 0, 0, time.UTC), spec.Start)
}

func TestResolve_AvailabilityCueYieldsFullDay(t *testing.T) {
	spec := Resolve("do I have any free time tomorrow", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.True(t, spec.IsFullDay)
	assert.True(t, spec.IsRange)
	assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 23, 59, 59, 999999000, time.UTC), spec.End)
}

func TestResolve_NamedPeriod(t *testing.T) {
	spec := Resolve("tomorrow morning", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.True(t, spec.IsRange)
	assert.Equal(t, time.Date(2025, 6, 12, 5, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC), spec.End)
}

func TestResolve_ExactPeriodIsAPoint(t *testing.T) {
	spec := Resolve("tomorrow at noon", anchor, time.UTC)
	require.NotNil(t, spec)

	assert.False(t, spec.IsRange)
	assert.Equal(t, time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC), spec.Start)
	assert.Equal(t, time.Date(2025, 6, 12, 12, 30, 0, 0, time.UTC), spec.End)
}

func TestResolve_BareDateCueIsAmbiguous(t *testing.T) {
	// A date without any clock, period, or availability wording cannot be
	// turned into a bookable time.
	assert.Nil(t, Resolve("sometime next week", anchor, time.UTC))
}

func TestResolve_NoTemporalContent(t *testing.T) {
	assert.Nil(t, Resolve("hello there", anchor, time.UTC))
	assert.Nil(t, Resolve("", anchor, time.UTC))
}

func TestExtractDuration(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"an hour long sync", 60},
		{"a one hour call", 60},
		{"2 hours", 120},
		{"2hr block", 120},
		{"45 minutes", 45},
		{"45min", 45},
		{"90m workout", 90},
		{"no duration here", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractDuration(tc.text), "text: %q", tc.text)
	}
}

func TestDatePart_RelativePhrases(t *testing.T) {
	cases := []struct {
		text string
		want time.Time
	}{
		{"today please", time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)},
		{"day after tomorrow", time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)},
		{"next week", time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, cue := datePart(tc.text, anchor, time.UTC)
		assert.True(t, cue, "text: %q", tc.text)
		assert.Equal(t, tc.want, got, "text: %q", tc.text)
	}
}

func TestDatePart_NoCueDefaultsToNow(t *testing.T) {
	got, cue := datePart("at some point", anchor, time.UTC)
	assert.False(t, cue)
	assert.Equal(t, anchor, got)
}
