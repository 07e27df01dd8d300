package booking

import (
	"context"

	bookingsRepo "meetwise/database/repository/bookings"
	"meetwise/models"
	"meetwise/services/calendar"

	"github.com/hibiken/asynq"
)

// BookingService turns a confirmed proposal into a calendar event plus a
// persisted booking record.
type BookingService interface {
	Confirm(ctx context.Context, sessionID string, payload models.ConfirmationPayload) (*models.BookingRecord, error)
	ListBySession(ctx context.Context, sessionID string) ([]models.BookingRecord, error)
}

type DefaultBookingService struct {
	Calendar    calendar.Provider
	Repo        bookingsRepo.BookingRepository
	AsynqClient *asynq.Client
}
