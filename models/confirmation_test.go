package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmationPayload_LocalStartRoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// A 2 PM local proposal stored as UTC must render back as 2 PM local.
	local := time.Date(2025, 6, 12, 14, 0, 0, 0, loc)
	p := &ConfirmationPayload{
		StartUTC:     local.UTC(),
		EndUTC:       local.Add(30 * time.Minute).UTC(),
		UserTimezone: "America/New_York",
	}

	got := p.LocalStart()
	assert.True(t, got.Equal(local))
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, "America/New_York", got.Location().String())
}

func TestConfirmationPayload_LocalStartFallsBackToUTC(t *testing.T) {
	start := time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC)
	p := &ConfirmationPayload{StartUTC: start, UserTimezone: "Not/AZone"}

	assert.True(t, p.LocalStart().Equal(start))
	assert.Equal(t, time.UTC, p.LocalStart().Location())
}
