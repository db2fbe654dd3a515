package domain

import (
	"context"
	"strings"
	"time"
)

// Event represents a single occurrence open for booking.
// Slug, Date and Time are stored in canonical form (see internal/normalize).
// swagger:model Event
type Event struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title" validate:"notblank"`
	Slug        string    `json:"slug" bson:"slug"`
	Description string    `json:"description" bson:"description" validate:"notblank"`
	Overview    string    `json:"overview" bson:"overview" validate:"notblank"`
	Image       string    `json:"image" bson:"image" validate:"notblank"`
	Venue       string    `json:"venue" bson:"venue" validate:"notblank"`
	Location    string    `json:"location" bson:"location" validate:"notblank"`
	Date        string    `json:"date" bson:"date" validate:"notblank"`
	Time        string    `json:"time" bson:"time" validate:"notblank"`
	Mode        string    `json:"mode" bson:"mode" validate:"notblank"`
	Audience    string    `json:"audience" bson:"audience" validate:"notblank"`
	Agenda      []string  `json:"agenda" bson:"agenda" validate:"required,min=1,dive,notblank"`
	Organizer   string    `json:"organizer" bson:"organizer" validate:"notblank"`
	Tags        []string  `json:"tags" bson:"tags" validate:"required,min=1,dive,notblank"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// TrimSpace trims surrounding whitespace from every text field and agenda/tag item.
func (e *Event) TrimSpace() {
	for _, f := range []*string{
		&e.Title, &e.Description, &e.Overview, &e.Image, &e.Venue, &e.Location,
		&e.Date, &e.Time, &e.Mode, &e.Audience, &e.Organizer,
	} {
		*f = strings.TrimSpace(*f)
	}
	for i := range e.Agenda {
		e.Agenda[i] = strings.TrimSpace(e.Agenda[i])
	}
	for i := range e.Tags {
		e.Tags[i] = strings.TrimSpace(e.Tags[i])
	}
}

// Clone returns a deep copy of the event.
func (e *Event) Clone() *Event {
	c := *e
	if e.Agenda != nil {
		c.Agenda = append([]string(nil), e.Agenda...)
	}
	if e.Tags != nil {
		c.Tags = append([]string(nil), e.Tags...)
	}
	return &c
}

// EventPatch carries a partial update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Overview    *string  `json:"overview"`
	Image       *string  `json:"image"`
	Venue       *string  `json:"venue"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Mode        *string  `json:"mode"`
	Audience    *string  `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   *string  `json:"organizer"`
	Tags        []string `json:"tags"`
}

// EventChanges reports which normalization-relevant fields an EventPatch modified.
type EventChanges struct {
	Title bool
	Date  bool
	Time  bool
}

// Apply copies the patch onto e and reports which of title, date and time now differ
// from their previous values (compared after trimming).
func (p *EventPatch) Apply(e *Event) EventChanges {
	var ch EventChanges
	set := func(dst *string, src *string) bool {
		if src == nil {
			return false
		}
		changed := strings.TrimSpace(*src) != strings.TrimSpace(*dst)
		*dst = *src
		return changed
	}
	ch.Title = set(&e.Title, p.Title)
	ch.Date = set(&e.Date, p.Date)
	ch.Time = set(&e.Time, p.Time)
	set(&e.Description, p.Description)
	set(&e.Overview, p.Overview)
	set(&e.Image, p.Image)
	set(&e.Venue, p.Venue)
	set(&e.Location, p.Location)
	set(&e.Mode, p.Mode)
	set(&e.Audience, p.Audience)
	set(&e.Organizer, p.Organizer)
	if p.Agenda != nil {
		e.Agenda = append([]string(nil), p.Agenda...)
	}
	if p.Tags != nil {
		e.Tags = append([]string(nil), p.Tags...)
	}
	return ch
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create stores a new event and sets its ID. Returns ErrDuplicateSlug when the slug is taken.
	Create(ctx context.Context, event *Event) error
	// Update replaces the stored event with the same ID. Returns ErrNotFound or ErrDuplicateSlug.
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// List returns one page of events, newest first, and the total number of events.
	List(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	// Exists reports whether an event with the given ID is stored.
	Exists(ctx context.Context, id string) (bool, error)
}

// EventService runs events through the normalization and validation pipeline before they are stored.
type EventService interface {
	CreateEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, eventID string, patch *EventPatch) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	ListEvents(ctx context.Context, params PaginationParams) ([]*Event, int, error)
}
