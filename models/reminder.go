package models

// ReminderPayload is the task body for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	SessionID string `json:"sessionId"`
	Title     string `json:"title"`
	FireDate  string `json:"fireDate"`
	Body      string `json:"body"`
}
