package booking

import (
	"context"
	"fmt"
	"time"

	"meetwise/models"
	"meetwise/services/tasks"
	"meetwise/utils"

	"go.uber.org/zap"
)

// reminderLead is how long before the event start the reminder fires.
const reminderLead = 30 * time.Minute

// Confirm re-validates the proposed slot against the live calendar, creates
// the event, persists the booking record, and schedules a reminder. The
// re-check closes the race between proposal and confirmation.
func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string, payload models.ConfirmationPayload) (*models.BookingRecord, error) {
	logger := utils.GetLogger()

	if payload.StartUTC.IsZero() || !payload.EndUTC.After(payload.StartUTC) {
		return nil, ErrInvalidPayload
	}
	if !payload.StartUTC.After(time.Now().UTC()) {
		return nil, ErrSlotInPast
	}

	free, err := s.Calendar.IsPointAvailable(ctx, payload.StartUTC, payload.EndUTC)
	if err != nil {
		return nil, fmt.Errorf("availability re-check failed: %w", err)
	}
	if !free {
		return nil, ErrSlotTaken
	}

	title := payload.Title
	if title == "" {
		title = "Meeting"
	}

	event, err := s.Calendar.CreateEvent(ctx, title, payload.StartUTC, payload.EndUTC,
		"Booked via chat assistant", "")
	if err != nil {
		return nil, fmt.Errorf("event creation failed: %w", err)
	}

	record := models.BookingRecord{
		SessionID:    sessionID,
		EventID:      event.ID,
		Title:        title,
		StartUTC:     payload.StartUTC,
		EndUTC:       payload.EndUTC,
		UserTimezone: payload.UserTimezone,
	}
	record.ID, err = s.Repo.Create(ctx, record)
	if err != nil {
		// The calendar event exists; surface the record failure but keep the ID.
		logger.Error("failed to persist booking record",
			zap.String("eventID", event.ID), zap.Error(err))
		return nil, fmt.Errorf("booking record persistence failed: %w", err)
	}

	s.scheduleReminder(record, payload)

	logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("eventID", event.ID),
		zap.Time("start", record.StartUTC))

	return &record, nil
}

// ListBySession returns all bookings made within a chat session.
func (s *DefaultBookingService) ListBySession(ctx context.Context, sessionID string) ([]models.BookingRecord, error) {
	return s.Repo.GetBySessionID(ctx, sessionID)
}

// scheduleReminder enqueues a reminder ahead of the event start. Best effort;
// a queue failure never fails the booking.
func (s *DefaultBookingService) scheduleReminder(record models.BookingRecord, payload models.ConfirmationPayload) {
	if s.AsynqClient == nil {
		return
	}

	fireAt := record.StartUTC.Add(-reminderLead)
	if !fireAt.After(time.Now().UTC()) {
		return
	}

	reminder := models.ReminderPayload{
		BookingID: record.ID,
		SessionID: record.SessionID,
		Title:     record.Title,
		FireDate:  fireAt.Format(time.RFC3339),
		Body:      fmt.Sprintf("Your %s starts at %s.", record.Title, utils.FormatFriendly(payload.LocalStart())),
	}

	task, opts, err := tasks.NewReminderTask(reminder, fireAt)
	if err == nil {
		_, err = s.AsynqClient.Enqueue(task, opts...)
	}
	if err != nil {
		utils.GetLogger().Error("failed to enqueue reminder task",
			zap.Error(err), zap.String("bookingID", record.ID))
	}
}
