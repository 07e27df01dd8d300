package conversation

import (
	"context"

	"meetwise/models"
)

// ReminderNotifier delivers a fired reminder by appending an assistant line
// to the originating session, so the user sees it on their next turn.
type ReminderNotifier struct {
	Store SessionStore
}

func (n *ReminderNotifier) Deliver(ctx context.Context, payload models.ReminderPayload) error {
	state, err := n.Store.Get(ctx, payload.SessionID)
	if err != nil {
		return err
	}
	state.History = append(state.History, models.ChatMessage{
		Role:    "assistant",
		Content: "Reminder: " + payload.Body,
	})
	return n.Store.Set(ctx, payload.SessionID, state)
}
