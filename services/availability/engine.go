// Package availability carves bookable slots out of busy calendar time.
// Everything here is a pure function of its inputs; no state is shared
// across calls.
package availability

import (
	"sort"
	"time"

	"meetwise/models"
)

// MaxAlternatives caps how many fallback slots are offered when a requested
// time turns out to be busy.
const MaxAlternatives = 5

// FreeSlots returns every slot of exactly duration length that fits inside
// the window without touching a busy interval. The window's own bounds act as
// zero-length sentinel busy markers; slots are carved back-to-back from the
// start of each free gap. Slots starting at or before now are dropped, and
// the result is ordered ascending by start.
func FreeSlots(busy []models.BusyInterval, window models.Window, duration time.Duration, now time.Time) []models.FreeSlot {
	if duration <= 0 || !window.End.After(window.Start) {
		return nil
	}

	timeline := make([]models.BusyInterval, 0, len(busy)+2)
	timeline = append(timeline, models.BusyInterval{Start: window.Start, End: window.Start})
	for _, b := range busy {
		clipped, ok := clip(b, window)
		if ok {
			timeline = append(timeline, clipped)
		}
	}
	timeline = append(timeline, models.BusyInterval{Start: window.End, End: window.End})

	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Start.Before(timeline[j].Start)
	})
	timeline = mergeOverlapping(timeline)

	var slots []models.FreeSlot
	for i := 0; i < len(timeline)-1; i++ {
		gapStart := timeline[i].End
		gapEnd := timeline[i+1].Start

		for cur := gapStart; !cur.Add(duration).After(gapEnd); cur = cur.Add(duration) {
			if cur.After(now) {
				slots = append(slots, models.FreeSlot{Start: cur, End: cur.Add(duration)})
			}
		}
	}
	return slots
}

// FreeSlotsPerDay applies the spec's clock window to each calendar day it
// spans and concatenates the per-day results in day order. Days whose
// sub-window has already started are skipped entirely.
func FreeSlotsPerDay(busy []models.BusyInterval, spec models.TemporalSpec, duration time.Duration, now time.Time) []models.FreeSlot {
	loc := spec.Start.Location()
	var slots []models.FreeSlot

	lastDay := midnightOf(spec.End, loc)
	for day := midnightOf(spec.Start, loc); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		subStart := time.Date(day.Year(), day.Month(), day.Day(),
			spec.Start.Hour(), spec.Start.Minute(), 0, 0, loc)
		subEnd := time.Date(day.Year(), day.Month(), day.Day(),
			spec.End.Hour(), spec.End.Minute(), 0, 0, loc)

		if !subStart.After(now) {
			continue
		}
		slots = append(slots, FreeSlots(busy, models.Window{Start: subStart, End: subEnd}, duration, now)...)
	}
	return slots
}

// Overlaps reports whether [start, end) intersects any busy interval, using
// the standard half-open overlap test.
func Overlaps(start, end time.Time, busy []models.BusyInterval) bool {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return true
		}
	}
	return false
}

// clip restricts a busy interval to the window, dropping it when the
// intersection is empty and the interval lies fully outside.
func clip(b models.BusyInterval, w models.Window) (models.BusyInterval, bool) {
	if !b.End.After(w.Start) || !w.End.After(b.Start) {
		return models.BusyInterval{}, false
	}
	if b.Start.Before(w.Start) {
		b.Start = w.Start
	}
	if b.End.After(w.End) {
		b.End = w.End
	}
	return b, true
}

func midnightOf(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// mergeOverlapping collapses a start-sorted timeline so that adjacent entries
// never intersect; the supplied busy set may overlap arbitrarily.
func mergeOverlapping(timeline []models.BusyInterval) []models.BusyInterval {
	merged := timeline[:1]
	for _, b := range timeline[1:] {
		last := &merged[len(merged)-1]
		if !b.Start.After(last.End) {
			if b.End.After(last.End) {
				last.End = b.End
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}
