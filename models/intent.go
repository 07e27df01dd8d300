package models

// Intent classifies a single user turn.
type Intent string

const (
	IntentBookAppointment   Intent = "book_appointment"
	IntentCheckAvailability Intent = "check_availability"
	IntentModifyAppointment Intent = "modify_appointment"
	IntentGeneralQuery      Intent = "general_query"
)
