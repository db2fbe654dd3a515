package domain

import (
	"context"
	"time"
)

// Booking represents one reservation against an Event.
// swagger:model Booking
type Booking struct {
	ID        string    `json:"id" bson:"_id"`
	EventID   string    `json:"event_id" bson:"event_id" validate:"notblank"`
	Email     string    `json:"email" bson:"email" validate:"notblank,emailshape"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// NewBooking returns a new Booking. ID is typically set by the repository on create.
func NewBooking(eventID, email string) *Booking {
	return &Booking{
		EventID: eventID,
		Email:   email,
	}
}

// BookingRepository defines storage operations for bookings.
type BookingRepository interface {
	// Create stores a booking and sets its ID. Returns ErrUnknownEvent if the store
	// itself rejects the event reference.
	Create(ctx context.Context, booking *Booking) error
	ListByEventID(ctx context.Context, eventID string) ([]*Booking, error)
}

// BookingService defines booking operations.
type BookingService interface {
	CreateBooking(ctx context.Context, booking *Booking) error
	ListBookingsForEvent(ctx context.Context, eventSlug string) ([]*Booking, error)
}
