package controllers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/helpers"
	"github.com/Kirubel-Te/Event-Next/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingController_CreateBooking(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "success", body: `{"event_id":"ev-1","email":"ada@example.com"}`, wantStatus: http.StatusCreated},
		{name: "invalid json", body: `[`, wantStatus: http.StatusBadRequest, wantCode: helpers.ErrCodeBadRequest},
		{
			name:       "unknown event",
			body:       `{"event_id":"ev-404","email":"ada@example.com"}`,
			fakeErr:    domain.Reject("event_id", domain.KindReferentialIntegrity, `event "ev-404" does not exist`),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailed,
		},
		{
			name:       "malformed email",
			body:       `{"event_id":"ev-1","email":"nope"}`,
			fakeErr:    domain.Reject("email", domain.KindInvalidFormat, "email must be a valid email address"),
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailed,
		},
		{
			name:       "service error",
			body:       `{"event_id":"ev-1","email":"ada@example.com"}`,
			fakeErr:    errors.New("db error"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{createErr: tt.fakeErr}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			ctrl.CreateBooking(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			envelope := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantCode, envelope.Error.Code)
				return
			}
			data := envelope.Data.(map[string]any)
			assert.Equal(t, "bk-created", data["id"])
			assert.Equal(t, "ev-1", fake.lastCreate.EventID)
		})
	}
}

func TestBookingController_ListEventBookings(t *testing.T) {
	tests := []struct {
		name       string
		listErr    error
		bookings   []*domain.Booking
		wantStatus int
		wantBody   string
	}{
		{"bookings", nil, []*domain.Booking{{ID: "bk-1", EventID: "ev-1", Email: "a@example.com"}}, http.StatusOK, `"bk-1"`},
		{"no bookings", nil, []*domain.Booking{}, http.StatusOK, `"data":[]`},
		{"unknown event", domain.ErrNotFound, nil, http.StatusNotFound, "event not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBookingService{listErr: tt.listErr, bookings: tt.bookings}
			ctrl := NewBookingController(testLogger, fake)
			req := httptest.NewRequest(http.MethodGet, "/events/go-conf/bookings", nil)
			req.SetPathValue("slug", "go-conf")
			rr := httptest.NewRecorder()

			ctrl.ListEventBookings(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.Equal(t, "go-conf", fake.lastSlug)
		})
	}
}
