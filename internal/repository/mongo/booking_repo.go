package mongo

import (
	"context"

	"github.com/Kirubel-Te/Event-Next/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type bookingRepository struct {
	coll *mongo.Collection
}

// NewBookingRepository returns a domain.BookingRepository backed by the bookings collection.
// MongoDB has no foreign keys; the booking service checks the event reference first.
func NewBookingRepository(db *mongo.Database) domain.BookingRepository {
	return &bookingRepository{
		coll: db.Collection(bookingsCollection),
	}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	b.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		b.ID = ""
		return err
	}
	return nil
}

func (r *bookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}
	bookings := make([]*domain.Booking, 0)
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
