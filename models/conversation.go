package models

// ChatMessage is one entry of the conversation history.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ConversationContext is the per-session sticky state carried across turns.
// It is created on the first turn of a session, mutated only by the
// orchestrator, and never shared between sessions.
type ConversationContext struct {
	LastDiscussedSpec *TemporalSpec `json:"lastDiscussedSpec,omitempty"`
	Error             string        `json:"error,omitempty"`
	RequestedSlotPast bool          `json:"requestedSlotPast,omitempty"`
	RequestedSlotBusy bool          `json:"requestedSlotBusy,omitempty"`
}

// TurnInput is the contract for one conversation turn.
type TurnInput struct {
	Text         string               `json:"text"`
	SessionID    string               `json:"session_id"`
	UserTimezone string               `json:"user_timezone"` // IANA zone name
	History      []ChatMessage        `json:"conversation_history"`
	Context      *ConversationContext `json:"context,omitempty"`
}

// TurnOutput is what one pipeline execution yields. Always well-formed, even
// when an internal stage failed.
type TurnOutput struct {
	History           []ChatMessage        `json:"conversation_history"`
	NeedsConfirmation bool                 `json:"needs_confirmation"`
	Confirmation      *ConfirmationPayload `json:"confirmation_payload,omitempty"`
	AvailableSlots    []FreeSlot           `json:"available_slots,omitempty"`
	Context           *ConversationContext `json:"context"`
}
