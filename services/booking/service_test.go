package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"meetwise/models"
	"meetwise/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCalendar struct {
	busy      []models.BusyInterval
	createErr error
	created   []models.EventRecord
}

func (f *fakeCalendar) GetBusyIntervals(ctx context.Context, window models.Window) ([]models.BusyInterval, error) {
	return f.busy, nil
}

func (f *fakeCalendar) IsPointAvailable(ctx context.Context, start, end time.Time) (bool, error) {
	return !availability.Overlaps(start, end, f.busy), nil
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, title string, start, end time.Time, description, location string) (*models.EventRecord, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	rec := models.EventRecord{ID: "evt-42", Title: title, Start: start, End: end, Status: "created"}
	f.created = append(f.created, rec)
	return &rec, nil
}

type fakeRepo struct {
	records   []models.BookingRecord
	createErr error
}

func (r *fakeRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	record.ID = "bk-1"
	r.records = append(r.records, record)
	return record.ID, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	for i := range r.records {
		if r.records[i].ID == id {
			return &r.records[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.BookingRecord, error) {
	var out []models.BookingRecord
	for _, rec := range r.records {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteByID(ctx context.Context, id string) error { return nil }

func futurePayload() models.ConfirmationPayload {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)
	return models.ConfirmationPayload{
		StartUTC:        start,
		EndUTC:          start.Add(30 * time.Minute),
		Title:           "Meeting",
		DurationMinutes: 30,
		UserTimezone:    "UTC",
	}
}

func TestConfirm_CreatesEventAndRecord(t *testing.T) {
	cal := &fakeCalendar{}
	repo := &fakeRepo{}
	svc := &DefaultBookingService{Calendar: cal, Repo: repo}

	payload := futurePayload()
	record, err := svc.Confirm(context.Background(), "sess-1", payload)
	require.NoError(t, err)

	assert.Equal(t, "bk-1", record.ID)
	assert.Equal(t, "sess-1", record.SessionID)
	assert.Equal(t, "evt-42", record.EventID)
	assert.Equal(t, payload.StartUTC, record.StartUTC)
	assert.Equal(t, payload.EndUTC, record.EndUTC)

	require.Len(t, cal.created, 1)
	assert.Equal(t, payload.StartUTC, cal.created[0].Start)

	listed, err := svc.ListBySession(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestConfirm_RejectsTakenSlot(t *testing.T) {
	payload := futurePayload()
	cal := &fakeCalendar{busy: []models.BusyInterval{{Start: payload.StartUTC, End: payload.EndUTC}}}
	svc := &DefaultBookingService{Calendar: cal, Repo: &fakeRepo{}}

	_, err := svc.Confirm(context.Background(), "sess-1", payload)
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, cal.created)
}

func TestConfirm_RejectsPastSlot(t *testing.T) {
	payload := futurePayload()
	payload.StartUTC = time.Now().UTC().Add(-time.Hour)
	payload.EndUTC = payload.StartUTC.Add(30 * time.Minute)

	svc := &DefaultBookingService{Calendar: &fakeCalendar{}, Repo: &fakeRepo{}}
	_, err := svc.Confirm(context.Background(), "sess-1", payload)
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestConfirm_RejectsMalformedPayload(t *testing.T) {
	svc := &DefaultBookingService{Calendar: &fakeCalendar{}, Repo: &fakeRepo{}}

	_, err := svc.Confirm(context.Background(), "sess-1", models.ConfirmationPayload{})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	inverted := futurePayload()
	inverted.EndUTC = inverted.StartUTC.Add(-time.Minute)
	_, err = svc.Confirm(context.Background(), "sess-1", inverted)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestConfirm_DefaultsEmptyTitle(t *testing.T) {
	cal := &fakeCalendar{}
	svc := &DefaultBookingService{Calendar: cal, Repo: &fakeRepo{}}

	payload := futurePayload()
	payload.Title = ""
	record, err := svc.Confirm(context.Background(), "sess-1", payload)
	require.NoError(t, err)
	assert.Equal(t, "Meeting", record.Title)
}
