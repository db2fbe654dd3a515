package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kirubel-Te/Event-Next/config"
	"github.com/Kirubel-Te/Event-Next/internal/domain"
	"github.com/Kirubel-Te/Event-Next/internal/repository"
	mongorepo "github.com/Kirubel-Te/Event-Next/internal/repository/mongo"
	"github.com/Kirubel-Te/Event-Next/internal/repository/postgres"
	"github.com/Kirubel-Te/Event-Next/internal/repository/postgres/migrations"

	"go.mongodb.org/mongo-driver/mongo"
)

// storage is the selected backend with its repositories.
type storage struct {
	events   domain.EventRepository
	bookings domain.BookingRepository
	ping     func(ctx context.Context) error
	release  func(ctx context.Context) error
}

// openStorage acquires the configured backend and prepares its schema or indexes.
func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		return openPostgres(ctx, cfg)
	default:
		return openMongo(ctx, cfg)
	}
}

func openPostgres(ctx context.Context, cfg *config.Config) (*storage, error) {
	handle := repository.NewHandle(
		func(ctx context.Context) (*sql.DB, error) { return postgres.Open(ctx, cfg.DBUrl) },
		func(_ context.Context, db *sql.DB) error { return db.Close() },
	)
	db, err := handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if err := migrations.Apply(ctx, db); err != nil {
		_ = handle.Release(ctx)
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return &storage{
		events:   postgres.NewEventRepository(db),
		bookings: postgres.NewBookingRepository(db),
		ping:     db.PingContext,
		release:  handle.Release,
	}, nil
}

func openMongo(ctx context.Context, cfg *config.Config) (*storage, error) {
	handle := repository.NewHandle(
		func(ctx context.Context) (*mongo.Database, error) {
			return mongorepo.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		},
		mongorepo.Close,
	)
	db, err := handle.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if err := mongorepo.NewIndexes(db).Ensure(ctx); err != nil {
		_ = handle.Release(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return &storage{
		events:   mongorepo.NewEventRepository(db),
		bookings: mongorepo.NewBookingRepository(db),
		ping:     func(ctx context.Context) error { return mongorepo.Ping(ctx, db) },
		release:  handle.Release,
	}, nil
}
