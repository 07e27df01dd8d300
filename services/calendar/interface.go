package calendar

import (
	"context"
	"time"

	"meetwise/models"
)

// Provider is the external calendar collaborator. Busy intervals come back in
// UTC; authentication and credential lifetime are entirely the provider's
// concern.
type Provider interface {
	GetBusyIntervals(ctx context.Context, window models.Window) ([]models.BusyInterval, error)
	IsPointAvailable(ctx context.Context, start, end time.Time) (bool, error)
	CreateEvent(ctx context.Context, title string, start, end time.Time, description, location string) (*models.EventRecord, error)
}
