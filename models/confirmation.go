package models

import "time"

// ConfirmationPayload is the minimal structured data the booking collaborator
// needs to create an event. Built only when exactly one concrete slot is
// proposed, and cleared once the user confirms or cancels.
type ConfirmationPayload struct {
	StartUTC        time.Time `json:"start_utc"`
	EndUTC          time.Time `json:"end_utc"`
	Title           string    `json:"title"`
	DurationMinutes int       `json:"duration_minutes"`
	UserTimezone    string    `json:"user_timezone"`
}

// LocalStart returns the proposed start in the payload's own timezone.
// Falls back to UTC when the zone name does not resolve.
func (p *ConfirmationPayload) LocalStart() time.Time {
	loc, err := time.LoadLocation(p.UserTimezone)
	if err != nil {
		return p.StartUTC
	}
	return p.StartUTC.In(loc)
}
