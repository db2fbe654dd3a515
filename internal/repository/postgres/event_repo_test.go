package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Kirubel-Te/Event-Next/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var eventColumnNames = []string{
	"id", "title", "slug", "description", "overview", "image", "venue", "location", "date", "time",
	"mode", "audience", "agenda", "organizer", "tags", "created_at", "updated_at",
}

var testStamp = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func sampleEvent() *domain.Event {
	return &domain.Event{
		Title:       "Go Conf",
		Slug:        "go-conf",
		Description: "desc",
		Overview:    "overview",
		Image:       "/img.png",
		Venue:       "Hall A",
		Location:    "Berlin",
		Date:        "2025-03-01",
		Time:        "09:00",
		Mode:        "offline",
		Audience:    "Gophers",
		Agenda:      []string{"Keynote", "Lunch"},
		Organizer:   "Go Community",
		Tags:        []string{"go"},
		CreatedAt:   testStamp,
		UpdatedAt:   testStamp,
	}
}

func addEventRow(rows *sqlmock.Rows, id, slug string) *sqlmock.Rows {
	return rows.AddRow(id, "Go Conf", slug, "desc", "overview", "/img.png", "Hall A", "Berlin", "2025-03-01", "09:00",
		"offline", "Gophers", "{Keynote,Lunch}", "Go Community", "{go}", testStamp, testStamp)
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(title, slug, description`).
					WithArgs("Go Conf", "go-conf", "desc", "overview", "/img.png", "Hall A", "Berlin", "2025-03-01", "09:00",
						"offline", "Gophers", sqlmock.AnyArg(), "Go Community", sqlmock.AnyArg(), testStamp, testStamp).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID: "ev-uuid-1",
		},
		{
			name: "duplicate slug",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23505", Constraint: "events_slug_key"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			event := sampleEvent()
			err = NewEventRepository(db).Create(ctx, event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events SET title = \$2, slug = \$3`).
					WithArgs("ev-1", "Go Conf", "go-conf", "desc", "overview", "/img.png", "Hall A", "Berlin", "2025-03-01", "09:00",
						"offline", "Gophers", sqlmock.AnyArg(), "Go Community", sqlmock.AnyArg(), testStamp).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "no row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "slug collision",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrDuplicateSlug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			event := sampleEvent()
			event.ID = "ev-1"
			err = NewEventRepository(db).Update(ctx, event)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnRows(addEventRow(sqlmock.NewRows(eventColumnNames), "ev-1", "go-conf"))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "malformed id",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .+ FROM events WHERE id = \$1`).WillReturnError(&pq.Error{Code: "22P02"})
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewEventRepository(db).GetByID(ctx, "ev-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ev-1", got.ID)
			assert.Equal(t, []string{"Keynote", "Lunch"}, got.Agenda)
			assert.Equal(t, []string{"go"}, got.Tags)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetBySlug(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM events WHERE slug = \$1`).
		WithArgs("go-conf").
		WillReturnRows(addEventRow(sqlmock.NewRows(eventColumnNames), "ev-1", "go-conf"))
	mock.ExpectQuery(`SELECT .+ FROM events WHERE slug = \$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(eventColumnNames))

	repo := NewEventRepository(db)
	got, err := repo.GetBySlug(ctx, "go-conf")
	require.NoError(t, err)
	assert.Equal(t, "go-conf", got.Slug)

	_, err = repo.GetBySlug(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	rows := sqlmock.NewRows(eventColumnNames)
	addEventRow(rows, "ev-3", "third")
	addEventRow(rows, "ev-2", "second")
	mock.ExpectQuery(`SELECT .+ FROM events ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(2, 2).
		WillReturnRows(rows)

	events, total, err := NewEventRepository(db).List(ctx, domain.PaginationParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, events, 2)
	assert.Equal(t, "third", events[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_List_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT .+ FROM events ORDER BY`).
		WillReturnRows(sqlmock.NewRows(eventColumnNames))

	events, total, err := NewEventRepository(db).List(context.Background(), domain.PaginationParams{Page: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventRepository_Exists(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    bool
		wantErr bool
	}{
		{
			name: "exists",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			want: true,
		},
		{
			name: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			name: "not a uuid",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(&pq.Error{Code: "22P02"})
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT EXISTS`).WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewEventRepository(db).Exists(ctx, "ev-1")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
