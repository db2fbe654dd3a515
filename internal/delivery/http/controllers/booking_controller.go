package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/helpers"
	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// BookingSuccessResponse is the success response envelope for POST /bookings (201).
type BookingSuccessResponse struct {
	Data  *domain.Booking   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListBookingsSuccessResponse is the success response envelope for GET /events/{slug}/bookings (200).
type ListBookingsSuccessResponse struct {
	Data  []*domain.Booking `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book an event
// @Description Reserves a spot for email at the referenced event. A confirmation email is sent best-effort.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed (missing fields, malformed email, unknown event)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking := domain.NewBooking(req.EventID, req.Email)
	if err := c.Service.CreateBooking(r.Context(), booking); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, booking)
}

// ListEventBookings godoc
// @Summary List bookings for an event
// @Description Returns every booking for the event, newest first.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.ListBookingsSuccessResponse "data contains the bookings"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug}/bookings [get]
func (c *BookingController) ListEventBookings(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	bookings, err := c.Service.ListBookingsForEvent(r.Context(), slug)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, bookings)
}
