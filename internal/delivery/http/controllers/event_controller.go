package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/helpers"
	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// CreateEventRequest is the request body for POST /events. Slug, id and timestamps are server-generated.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Mode        string   `json:"mode"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

func (c CreateEventRequest) toEvent() *domain.Event {
	return &domain.Event{
		Title:       c.Title,
		Description: c.Description,
		Overview:    c.Overview,
		Image:       c.Image,
		Venue:       c.Venue,
		Location:    c.Location,
		Date:        c.Date,
		Time:        c.Time,
		Mode:        c.Mode,
		Audience:    c.Audience,
		Agenda:      c.Agenda,
		Organizer:   c.Organizer,
		Tags:        c.Tags,
	}
}

// EventSuccessResponse is the success response envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsResponse is the data payload for GET /events (200).
type ListEventsResponse struct {
	Items      []*domain.Event        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns events newest first. Use page and page_size query params.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains items and pagination"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{Items: events, Pagination: helpers.NewPaginationMeta(params, total)})
}

// GetEvent godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(r.PathValue("slug"))
	if slug == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing slug")
		return
	}
	event, err := c.Service.GetEventBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. The slug is derived from the title; date and time are stored as YYYY-MM-DD and HH:MM. Rejected saves list every violated field in error.details.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toEvent()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		writeServiceError(c.Logger, w, r, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies a partial update. Omitted fields are unchanged; a new title regenerates the slug. The result goes through the same validation as a create.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param body body domain.EventPatch true "Fields to update (all optional)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (slug already in use)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := strings.TrimSpace(r.PathValue("id"))
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing id")
		return
	}
	var patch domain.EventPatch
	if !helpers.DecodeAndValidate(w, r, &patch) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, &patch)
	if err != nil {
		writeServiceError(c.Logger, w, r, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
