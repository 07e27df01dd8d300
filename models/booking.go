package models

import "time"

// EventRecord is the calendar provider's view of a created event.
type EventRecord struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	HTMLLink string    `json:"htmlLink,omitempty"`
	Status   string    `json:"status"`
}

// BookingRecord is the persisted trace of a confirmed booking.
type BookingRecord struct {
	ID           string    `json:"id" bson:"id"`
	SessionID    string    `json:"sessionId" bson:"sessionId"`
	EventID      string    `json:"eventId" bson:"eventId"`
	Title        string    `json:"title" bson:"title"`
	StartUTC     time.Time `json:"startUtc" bson:"startUtc"`
	EndUTC       time.Time `json:"endUtc" bson:"endUtc"`
	UserTimezone string    `json:"userTimezone" bson:"userTimezone"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
