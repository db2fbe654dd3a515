// Package mongo implements the event and booking repositories on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabase is used when neither the caller nor the URI names a database.
const DefaultDatabase = "eventnext"

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

// Open connects to the deployment at uri, pings the primary and returns the database.
// database overrides the one named in the URI path.
func Open(ctx context.Context, uri, database string) (*mongo.Database, error) {
	connDSN, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongodb uri: %w", err)
	}
	if database == "" {
		database = connDSN.Database
	}
	if database == "" {
		database = DefaultDatabase
	}

	client, err := mongo.Connect(ctx,
		options.Client().ApplyURI(connDSN.String()),
		options.Client().SetConnectTimeout(10*time.Second),
		options.Client().SetServerSelectionTimeout(10*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client.Database(database), nil
}

// Close disconnects the client behind db.
func Close(ctx context.Context, db *mongo.Database) error {
	return db.Client().Disconnect(ctx)
}

// Ping checks that the primary is reachable.
func Ping(ctx context.Context, db *mongo.Database) error {
	return db.Client().Ping(ctx, readpref.Primary())
}
