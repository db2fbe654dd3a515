package mongo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes creates the collection indexes the repositories rely on. Ensure does the
// work at most once; later calls return the first result.
type Indexes struct {
	db   *mongo.Database
	once sync.Once
	err  error
}

// NewIndexes returns an index registrar for db.
func NewIndexes(db *mongo.Database) *Indexes {
	return &Indexes{db: db}
}

// Ensure creates any missing index.
func (i *Indexes) Ensure(ctx context.Context) error {
	i.once.Do(func() {
		i.err = i.ensure(ctx)
	})
	return i.err
}

func (i *Indexes) ensure(ctx context.Context) error {
	specs := map[string]map[string]mongo.IndexModel{
		eventsCollection: {
			"slug_1": {
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("slug_1"),
			},
			"created_at_-1": {
				Keys:    bson.D{{Key: "created_at", Value: -1}},
				Options: options.Index().SetName("created_at_-1"),
			},
		},
		bookingsCollection: {
			"event_id_1": {
				Keys:    bson.D{{Key: "event_id", Value: 1}},
				Options: options.Index().SetName("event_id_1"),
			},
		},
	}

	for _, coll := range []string{eventsCollection, bookingsCollection} {
		view := i.db.Collection(coll).Indexes()
		existing, err := indexNames(ctx, view)
		if err != nil {
			return fmt.Errorf("list %s indexes: %w", coll, err)
		}
		for name, model := range specs[coll] {
			if _, ok := existing[name]; ok {
				continue
			}
			if _, err := view.CreateOne(ctx, model); err != nil {
				return fmt.Errorf("create index %s.%s: %w", coll, name, err)
			}
		}
	}
	return nil
}

func indexNames(ctx context.Context, view mongo.IndexView) (map[string]struct{}, error) {
	cur, err := view.List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	names := make(map[string]struct{})
	for cur.Next(ctx) {
		var spec bson.M
		if err := cur.Decode(&spec); err != nil {
			return nil, err
		}
		if name, _ := spec["name"].(string); name != "" {
			names[name] = struct{}{}
		}
	}
	return names, cur.Err()
}
