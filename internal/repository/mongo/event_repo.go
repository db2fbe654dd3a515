package mongo

import (
	"context"
	"errors"

	"github.com/Kirubel-Te/Event-Next/internal/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository returns a domain.EventRepository backed by the events collection.
func NewEventRepository(db *mongo.Database) domain.EventRepository {
	return &eventRepository{
		coll: db.Collection(eventsCollection),
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	e.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		e.ID = ""
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": e.ID}, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateSlug
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *eventRepository) findOne(ctx context.Context, filter bson.M) (*domain.Event, error) {
	var e domain.Event
	if err := r.coll.FindOne(ctx, filter).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.Limit()))
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	events := make([]*domain.Event, 0)
	if err := cur.All(ctx, &events); err != nil {
		return nil, 0, err
	}
	return events, int(total), nil
}

func (r *eventRepository) Exists(ctx context.Context, id string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
