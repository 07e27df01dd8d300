package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetwise/models"
	ai "meetwise/services/intelligence"
	"meetwise/utils"
)

// compose turns the accumulated turn state into the user-facing reply. The
// policy is a fixed, ordered table per intent; phrasing may be delegated to
// the generation capability, but the deterministic templates carry the same
// informational content.
func (o *Orchestrator) compose(ctx context.Context, s *turnState) string {
	switch s.intent {
	case models.IntentCheckAvailability:
		return o.availabilityResponse(ctx, s)
	case models.IntentBookAppointment:
		return o.bookingResponse(s)
	case models.IntentModifyAppointment:
		return "I can help you modify your appointments. Could you please specify which appointment you'd like to change and what modifications you need?"
	}
	return o.generalResponse(ctx, s)
}

func (o *Orchestrator) availabilityResponse(ctx context.Context, s *turnState) string {
	if s.sessionCtx.Error != "" {
		return "I encountered an issue: " + s.sessionCtx.Error
	}

	if len(s.slots) == 0 {
		if s.spec != nil {
			return "I couldn't find any available slots for that time. Would you like me to suggest some alternative times?"
		}
		return "It looks like your calendar is quite busy. Let me know if you'd like to check a specific time or date range."
	}

	lines := slotLines(s.slots, s.loc)
	fallback := "Here are your available slots:\n• " + strings.Join(lines, "\n• ") +
		"\n\nWould you like to book any of these slots?"

	prompt := fmt.Sprintf(`You are a helpful calendar assistant. Generate a natural, conversational response for showing available calendar slots.

User asked: %q

Available slots:
%s

Requirements:
- Be conversational and friendly
- Present the information clearly
- Ask if they'd like to book one of these slots
- Keep it concise but helpful
- Don't be robotic

Response:`, s.text, strings.Join(lines, "\n"))

	return ai.GenerateWithFallback(ctx, o.Capability, prompt, fallback)
}

func (o *Orchestrator) bookingResponse(s *turnState) string {
	if s.sessionCtx.Error != "" {
		return "I encountered an issue: " + s.sessionCtx.Error
	}

	if s.spec == nil {
		return "I'd be happy to help you book an appointment! Could you please specify when you'd like to schedule it? For example, 'tomorrow at 2 PM' or 'next Friday afternoon'."
	}

	if s.sessionCtx.RequestedSlotPast {
		return "I notice that time has already passed. Would you like me to suggest some available times for today or upcoming days?"
	}

	if s.sessionCtx.RequestedSlotBusy {
		if len(s.slots) == 0 {
			return "That time slot is not available, and I couldn't find any other openings that day. Would you like to try a different day or time?"
		}
		var b strings.Builder
		b.WriteString("That time slot is not available. Here are some alternative times for that day:\n")
		for _, slot := range s.slots {
			b.WriteString("• " + utils.FormatClock(slot.Start.In(s.loc)) + "\n")
		}
		b.WriteString("\nWould you like to book one of these times?")
		return b.String()
	}

	if len(s.slots) == 0 {
		return "I couldn't find any available slots for that time range. Would you like to try a different day or time?"
	}

	if len(s.slots) > 1 {
		var b strings.Builder
		fmt.Fprintf(&b, "Great! I found %d available %d-minute slots:\n", len(s.slots), s.spec.DurationMinutes)
		grouped := groupByDay(s.slots, s.loc)
		for _, day := range dayOrder(s.slots, s.loc) {
			fmt.Fprintf(&b, "**%s:** %s\n", day, strings.Join(grouped[day], ", "))
		}
		b.WriteString("\nWhich time works best for you?")
		return b.String()
	}

	// Exactly one candidate: propose it and ask for confirmation.
	slot := s.slots[0]
	s.needsConfirm = true
	s.confirmation = &models.ConfirmationPayload{
		StartUTC:        slot.Start.UTC(),
		EndUTC:          slot.End.UTC(),
		Title:           "Meeting",
		DurationMinutes: s.spec.DurationMinutes,
		UserTimezone:    s.tzName,
	}

	return fmt.Sprintf("Perfect! I can book a %d-minute meeting for %s. Would you like me to confirm this booking?",
		s.spec.DurationMinutes, utils.FormatFriendly(slot.Start.In(s.loc)))
}

func (o *Orchestrator) generalResponse(ctx context.Context, s *turnState) string {
	fallback := "I'm here to help you manage your calendar! You can ask me to check your availability, book appointments, or modify existing ones. What would you like to do?"

	prompt := fmt.Sprintf(`You are a helpful calendar assistant. The user said: %q

This doesn't seem to be a specific calendar request. Generate a helpful response that:
- Acknowledges their message
- Explains what you can help with (checking availability, booking appointments, modifying events)
- Asks how you can assist them
- Be friendly and conversational
- Keep it brief

Response:`, s.text)

	return ai.GenerateWithFallback(ctx, o.Capability, prompt, fallback)
}

// slotLines renders one line per day in the user's zone: the first three
// times plus a "more" count when a day holds over five slots.
func slotLines(slots []models.FreeSlot, loc *time.Location) []string {
	grouped := groupByDay(slots, loc)
	order := dayOrder(slots, loc)

	var lines []string
	for _, day := range order {
		times := grouped[day]
		if len(times) > 5 {
			lines = append(lines, fmt.Sprintf("%s: %s, and %d more slots",
				day, strings.Join(times[:3], ", "), len(times)-3))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s", day, strings.Join(times, ", ")))
		}
	}
	return lines
}

func groupByDay(slots []models.FreeSlot, loc *time.Location) map[string][]string {
	grouped := make(map[string][]string)
	for _, slot := range slots {
		start := slot.Start.In(loc)
		day := utils.FormatDay(start)
		grouped[day] = append(grouped[day], utils.FormatClock(start))
	}
	return grouped
}

// dayOrder preserves the chronological day sequence of the slot list.
func dayOrder(slots []models.FreeSlot, loc *time.Location) []string {
	var order []string
	seen := make(map[string]bool)
	for _, slot := range slots {
		day := utils.FormatDay(slot.Start.In(loc))
		if !seen[day] {
			seen[day] = true
			order = append(order, day)
		}
	}
	return order
}
