package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
	"github.com/Kirubel-Te/Event-Next/internal/normalize"
	"github.com/Kirubel-Te/Event-Next/internal/validation"
)

type eventService struct {
	eventRepo      domain.EventRepository
	validator      *validation.Validator
	contextTimeout time.Duration
}

// NewEventService returns an EventService that validates and normalizes events before
// handing them to eventRepo.
func NewEventService(eventRepo domain.EventRepository, v *validation.Validator, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		validator:      v,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event.TrimSpace()
	if err := s.validator.Event(event); err != nil {
		return err
	}
	event.Slug = normalize.Slug(event.Title)
	if event.Slug == "" {
		return slugUnderivable()
	}
	if err := normalizeSchedule(event, domain.EventChanges{Date: true, Time: true}); err != nil {
		return err
	}
	if err := s.ensureSlugAvailable(ctx, event.Slug, ""); err != nil {
		return err
	}

	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return slugTaken(event.Slug)
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, patch *domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	current, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	updated := current.Clone()
	changes := patch.Apply(updated)
	updated.TrimSpace()
	if err := s.validator.Event(updated); err != nil {
		return nil, err
	}
	if changes.Title || updated.Slug == "" {
		updated.Slug = normalize.Slug(updated.Title)
		if updated.Slug == "" {
			return nil, slugUnderivable()
		}
	}
	if err := normalizeSchedule(updated, changes); err != nil {
		return nil, err
	}
	if updated.Slug != current.Slug {
		if err := s.ensureSlugAvailable(ctx, updated.Slug, updated.ID); err != nil {
			return nil, err
		}
	}

	updated.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, updated); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		case errors.Is(err, domain.ErrDuplicateSlug):
			return nil, slugTaken(updated.Slug)
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, total, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, total, nil
}

// ensureSlugAvailable rejects slug if an event other than selfID already uses it.
// The store's unique index still guards the write that follows.
func (s *eventService) ensureSlugAvailable(ctx context.Context, slug, selfID string) error {
	existing, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("check slug: %w", err)
	}
	if existing.ID != selfID {
		return slugTaken(slug)
	}
	return nil
}

// normalizeSchedule rewrites date and time into canonical form, touching only the
// fields marked as changed.
func normalizeSchedule(e *domain.Event, changes domain.EventChanges) error {
	var errs domain.ValidationErrors
	if changes.Date {
		d, err := normalize.Date(e.Date)
		if err != nil {
			errs = append(errs, domain.NewValidationError("date", domain.KindInvalidFormat, "date must be a valid calendar date"))
		} else {
			e.Date = d
		}
	}
	if changes.Time {
		t, err := normalize.Time(e.Time)
		switch {
		case errors.Is(err, normalize.ErrTimeRequired):
			errs = append(errs, domain.NewValidationError("time", domain.KindRequired, "time is required"))
		case err != nil:
			errs = append(errs, domain.NewValidationError("time", domain.KindInvalidFormat, "time must be a valid time of day"))
		default:
			e.Time = t
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func slugTaken(slug string) error {
	return domain.Reject("slug", domain.KindUniqueness, fmt.Sprintf("slug %q is already in use", slug))
}

func slugUnderivable() error {
	return domain.Reject("slug", domain.KindRequired, "slug is required: title must contain letters or digits")
}
