package availability

import (
	"testing"
	"time"

	"meetwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 12, hour, min, 0, 0, time.UTC)
}

func TestFreeSlots_CarvesAroundBusyIntervals(t *testing.T) {
	window := models.Window{Start: at(9, 0), End: at(17, 0)}
	busy := []models.BusyInterval{
		{Start: at(10, 0), End: at(11, 0)},
		{Start: at(12, 30), End: at(13, 30)},
	}
	now := at(8, 0)

	slots := FreeSlots(busy, window, time.Hour, now)

	want := []models.FreeSlot{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(11, 0), End: at(12, 0)},
		{Start: at(13, 30), End: at(14, 30)},
		{Start: at(14, 30), End: at(15, 30)},
		{Start: at(15, 30), End: at(16, 30)},
	}
	assert.Equal(t, want, slots)
}

func TestFreeSlots_NeverOverlapBusyAndStayOrdered(t *testing.T) {
	window := models.Window{Start: at(8, 0), End: at(18, 0)}
	busy := []models.BusyInterval{
		{Start: at(9, 15), End: at(10, 45)},
		{Start: at(13, 0), End: at(13, 30)},
		{Start: at(16, 50), End: at(17, 10)},
	}

	slots := FreeSlots(busy, window, 30*time.Minute, at(7, 0))
	require.NotEmpty(t, slots)

	for i, s := range slots {
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
		assert.False(t, Overlaps(s.Start, s.End, busy), "slot %v overlaps busy time", s)
		assert.False(t, s.Start.Before(window.Start) || s.End.After(window.End))
		if i > 0 {
			assert.True(t, s.Start.After(slots[i-1].Start))
		}
	}
}

func TestFreeSlots_MergesContainedAndOverlappingBusy(t *testing.T) {
	window := models.Window{Start: at(9, 0), End: at(13, 0)}
	messy := []models.BusyInterval{
		{Start: at(10, 0), End: at(12, 0)},
		{Start: at(10, 30), End: at(11, 0)},
		{Start: at(11, 30), End: at(12, 0)},
	}
	clean := []models.BusyInterval{
		{Start: at(10, 0), End: at(12, 0)},
	}

	assert.Equal(t,
		FreeSlots(clean, window, time.Hour, at(8, 0)),
		FreeSlots(messy, window, time.Hour, at(8, 0)))
}

func TestFreeSlots_DropsSlotsNotAfterNow(t *testing.T) {
	window := models.Window{Start: at(9, 0), End: at(17, 0)}

	slots := FreeSlots(nil, window, time.Hour, at(13, 0))
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.True(t, s.Start.After(at(13, 0)))
	}
	// The 13:00 slot itself starts exactly at now and must be excluded.
	assert.Equal(t, at(14, 0), slots[0].Start)
}

func TestFreeSlots_DegenerateInputs(t *testing.T) {
	window := models.Window{Start: at(9, 0), End: at(17, 0)}

	assert.Nil(t, FreeSlots(nil, window, 0, at(8, 0)))
	assert.Nil(t, FreeSlots(nil, models.Window{Start: at(17, 0), End: at(9, 0)}, time.Hour, at(8, 0)))

	// Fully busy window yields nothing.
	busy := []models.BusyInterval{{Start: at(0, 0), End: at(23, 59)}}
	assert.Empty(t, FreeSlots(busy, window, time.Hour, at(8, 0)))
}

func TestFreeSlots_BusyOutsideWindowIsIgnored(t *testing.T) {
	window := models.Window{Start: at(9, 0), End: at(11, 0)}
	busy := []models.BusyInterval{
		{Start: at(7, 0), End: at(9, 0)},   // ends exactly at window start
		{Start: at(11, 0), End: at(12, 0)}, // starts exactly at window end
	}

	slots := FreeSlots(busy, window, time.Hour, at(8, 0))
	want := []models.FreeSlot{
		{Start: at(9, 0), End: at(10, 0)},
		{Start: at(10, 0), End: at(11, 0)},
	}
	assert.Equal(t, want, slots)
}

func TestFreeSlotsPerDay_AppliesClockWindowToEachDay(t *testing.T) {
	spec := models.TemporalSpec{
		Start:   time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC),
		End:     time.Date(2025, 6, 11, 16, 0, 0, 0, time.UTC),
		IsRange: true,
	}
	now := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	slots := FreeSlotsPerDay(nil, spec, time.Hour, now)

	require.Len(t, slots, 6)
	for _, s := range slots {
		assert.GreaterOrEqual(t, s.Start.Hour(), 14)
		assert.LessOrEqual(t, s.End.Hour(), 16)
	}
	assert.Equal(t, time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC), slots[0].Start)
	assert.Equal(t, time.Date(2025, 6, 11, 15, 0, 0, 0, time.UTC), slots[5].Start)
}

func TestFreeSlotsPerDay_SkipsDaysAlreadyStarted(t *testing.T) {
	spec := models.TemporalSpec{
		Start:   time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC),
		End:     time.Date(2025, 6, 11, 16, 0, 0, 0, time.UTC),
		IsRange: true,
	}
	// Now is mid-window on June 10, so June 9 and June 10 drop out.
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	slots := FreeSlotsPerDay(nil, spec, time.Hour, now)

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, 11, s.Start.Day())
	}
}

func TestOverlaps_HalfOpenSemantics(t *testing.T) {
	busy := []models.BusyInterval{{Start: at(10, 0), End: at(11, 0)}}

	assert.False(t, Overlaps(at(9, 0), at(10, 0), busy), "touching end-to-start is not an overlap")
	assert.False(t, Overlaps(at(11, 0), at(12, 0), busy), "touching start-to-end is not an overlap")
	assert.True(t, Overlaps(at(10, 30), at(10, 45), busy))
	assert.True(t, Overlaps(at(9, 30), at(10, 1), busy))
	assert.False(t, Overlaps(at(9, 0), at(9, 30), nil))
}
