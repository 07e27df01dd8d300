package models

import "time"

// TemporalSpec is a resolved, timezone-aware interval derived from free text.
// Start and End always carry an explicit location; Start <= End holds for
// every spec produced by the resolver.
type TemporalSpec struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	IsRange         bool      `json:"isRange"`
	IsFullDay       bool      `json:"isFullDay"`
	DurationMinutes int       `json:"durationMinutes"`
	SourceText      string    `json:"sourceText"`
}

// MultiDay reports whether the spec covers more than one calendar day with a
// per-day clock window (e.g. "3-5 PM this week"). Full-day specs are handled
// as a single continuous window instead.
func (s *TemporalSpec) MultiDay() bool {
	if s == nil || !s.IsRange || s.IsFullDay {
		return false
	}
	sy, sm, sd := s.Start.Date()
	ey, em, ed := s.End.Date()
	return sy != ey || sm != em || sd != ed
}

// Duration returns the requested slot length.
func (s *TemporalSpec) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}
