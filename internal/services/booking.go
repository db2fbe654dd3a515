package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
	"github.com/Kirubel-Te/Event-Next/internal/validation"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	eventRepo      domain.EventRepository
	validator      *validation.Validator
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. emailService may be nil, in which case
// no confirmation is sent.
func NewBookingService(
	bookingRepo domain.BookingRepository,
	eventRepo domain.EventRepository,
	v *validation.Validator,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		eventRepo:      eventRepo,
		validator:      v,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	booking.EventID = strings.TrimSpace(booking.EventID)
	booking.Email = strings.ToLower(strings.TrimSpace(booking.Email))
	if err := s.validator.Booking(booking); err != nil {
		return err
	}

	// Not locked against a concurrent event removal; events are never deleted.
	exists, err := s.eventRepo.Exists(ctx, booking.EventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}
	if !exists {
		return unknownEvent(booking.EventID)
	}

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrUnknownEvent) {
			return unknownEvent(booking.EventID)
		}
		return fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, booking)
	return nil
}

// sendConfirmation mails the booker. The booking is already committed, so failures
// are logged rather than returned.
func (s *bookingService) sendConfirmation(ctx context.Context, booking *domain.Booking) {
	if s.emailService == nil {
		return
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.WarnContext(ctx, "booking confirmation skipped", "booking_id", booking.ID, "event_id", booking.EventID, "err", err)
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:      booking.Email,
		BookingID:  booking.ID,
		EventTitle: event.Title,
		EventSlug:  event.Slug,
		Date:       event.Date,
		Time:       event.Time,
		Venue:      event.Venue,
		Location:   event.Location,
		Mode:       event.Mode,
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "booking confirmation failed", "booking_id", booking.ID, "err", err)
	}
}

func (s *bookingService) ListBookingsForEvent(ctx context.Context, eventSlug string) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	bookings, err := s.bookingRepo.ListByEventID(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, nil
}

func unknownEvent(eventID string) error {
	return domain.Reject("event_id", domain.KindReferentialIntegrity, fmt.Sprintf("event %q does not exist", eventID))
}
