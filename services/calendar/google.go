package calendar

import (
	"context"
	"fmt"
	"time"

	"meetwise/models"
	"meetwise/services/availability"
	"meetwise/utils"

	"go.uber.org/zap"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleProvider talks to the Google Calendar API using freebusy queries for
// availability and event insertion for bookings.
type GoogleProvider struct {
	svc        *calendarapi.Service
	calendarID string
}

func NewGoogleProvider(ctx context.Context, credentialsFile, calendarID string) (*GoogleProvider, error) {
	svc, err := calendarapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendarapi.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &GoogleProvider{svc: svc, calendarID: calendarID}, nil
}

// GetBusyIntervals runs a freebusy query over the window and returns the busy
// periods in UTC.
func (p *GoogleProvider) GetBusyIntervals(ctx context.Context, window models.Window) ([]models.BusyInterval, error) {
	req := &calendarapi.FreeBusyRequest{
		TimeMin:  window.Start.UTC().Format(time.RFC3339),
		TimeMax:  window.End.UTC().Format(time.RFC3339),
		TimeZone: "UTC",
		Items:    []*calendarapi.FreeBusyRequestItem{{Id: p.calendarID}},
	}

	resp, err := p.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("freebusy query failed: %w", err)
	}

	cal, ok := resp.Calendars[p.calendarID]
	if !ok {
		return nil, nil
	}

	logger := utils.GetLogger()
	var busy []models.BusyInterval
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			logger.Warn("skipping unparsable busy period", zap.String("start", period.Start), zap.Error(err))
			continue
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			logger.Warn("skipping unparsable busy period", zap.String("end", period.End), zap.Error(err))
			continue
		}
		busy = append(busy, models.BusyInterval{Start: start.UTC(), End: end.UTC()})
	}
	return busy, nil
}

// IsPointAvailable reports whether [start, end) is entirely free.
func (p *GoogleProvider) IsPointAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	busy, err := p.GetBusyIntervals(ctx, models.Window{Start: start, End: end})
	if err != nil {
		return false, err
	}
	return !availability.Overlaps(start, end, busy), nil
}

// CreateEvent inserts an event on the configured calendar. Times are stored
// in UTC regardless of the caller's zone.
func (p *GoogleProvider) CreateEvent(ctx context.Context, title string, start, end time.Time, description, location string) (*models.EventRecord, error) {
	event := &calendarapi.Event{
		Summary:     title,
		Description: description,
		Location:    location,
		Start: &calendarapi.EventDateTime{
			DateTime: start.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendarapi.EventDateTime{
			DateTime: end.UTC().Format(time.RFC3339),
			TimeZone: "UTC",
		},
	}

	created, err := p.svc.Events.Insert(p.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	utils.GetLogger().Info("calendar event created", zap.String("eventID", created.Id))

	return &models.EventRecord{
		ID:       created.Id,
		Title:    title,
		Start:    start.UTC(),
		End:      end.UTC(),
		HTMLLink: created.HtmlLink,
		Status:   "created",
	}, nil
}
