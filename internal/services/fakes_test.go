package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeEventRepo is an in-memory EventRepository for tests. Like the real stores,
// it enforces slug uniqueness on write.
type fakeEventRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Event
	nextID    int
	createErr error
	updateErr error
	getErr    error
	// hideSlugs makes GetBySlug miss, simulating a concurrent writer that got
	// past the application-level check.
	hideSlugs bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) slugOwner(slug string) (string, bool) {
	for id, e := range f.byID {
		if e.Slug == slug {
			return id, true
		}
	}
	return "", false
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if _, taken := f.slugOwner(e.Slug); taken {
		return domain.ErrDuplicateSlug
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e.Clone()
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[e.ID]; !ok {
		return domain.ErrNotFound
	}
	if owner, taken := f.slugOwner(e.Slug); taken && owner != e.ID {
		return domain.ErrDuplicateSlug
	}
	f.byID[e.ID] = e.Clone()
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.byID[id]; ok {
		return e.Clone(), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.hideSlugs {
		return nil, domain.ErrNotFound
	}
	if id, ok := f.slugOwner(slug); ok {
		return f.byID[id].Clone(), nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, 0, f.getErr
	}
	all := make([]*domain.Event, 0, len(f.byID))
	for _, e := range f.byID {
		all = append(all, e.Clone())
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	start := params.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := start + params.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], len(all), nil
}

func (f *fakeEventRepo) Exists(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return false, f.getErr
	}
	_, ok := f.byID[id]
	return ok, nil
}

// fakeBookingRepo is an in-memory BookingRepository for tests.
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{nextID: 1}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = fmt.Sprintf("bk-%d", f.nextID)
	f.nextID++
	cp := *b
	f.bookings = append(f.bookings, &cp)
	return nil
}

func (f *fakeBookingRepo) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeEmailService records confirmations.
type fakeEmailService struct {
	sent []*domain.BookingConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
