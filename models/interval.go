package models

import "time"

// BusyInterval is an externally reported occupied range, half-open [Start, End)
// in UTC. The availability engine treats the supplied set as read-only and
// makes no assumptions about ordering or overlap.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FreeSlot is a candidate bookable interval. End - Start always equals the
// requested duration exactly.
type FreeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Window is a half-open search window [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
