package controllers

import (
	"context"
	"io"
	"log/slog"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr   error
	updateErr   error
	getErr      error
	listErr     error
	bySlug      map[string]*domain.Event
	listResult  []*domain.Event
	listTotal   int
	lastCreate  *domain.Event
	lastPatch   *domain.EventPatch
	lastPatchID string
	lastParams  domain.PaginationParams
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event) error {
	f.lastCreate = event
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = "ev-created"
	event.Slug = "created"
	return nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, eventID string, patch *domain.EventPatch) (*domain.Event, error) {
	f.lastPatchID = eventID
	f.lastPatch = patch
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e := &domain.Event{ID: eventID, Title: "Go Conf"}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	return e, nil
}

func (f *fakeEventService) GetEventBySlug(_ context.Context, slug string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	e, ok := f.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (f *fakeEventService) ListEvents(_ context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	if f.listResult == nil {
		return []*domain.Event{}, f.listTotal, nil
	}
	return f.listResult, f.listTotal, nil
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createErr  error
	listErr    error
	bookings   []*domain.Booking
	lastCreate *domain.Booking
	lastSlug   string
}

func (f *fakeBookingService) CreateBooking(_ context.Context, booking *domain.Booking) error {
	f.lastCreate = booking
	if f.createErr != nil {
		return f.createErr
	}
	booking.ID = "bk-created"
	return nil
}

func (f *fakeBookingService) ListBookingsForEvent(_ context.Context, slug string) ([]*domain.Booking, error) {
	f.lastSlug = slug
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token string
	err   error
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
