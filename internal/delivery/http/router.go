// Package http wires the controllers and middleware into the API's ServeMux.
package http

import (
	"log/slog"
	"net/http"

	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/controllers"
	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/middleware"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Event   *controllers.EventController
	Booking *controllers.BookingController
	Auth    *controllers.AuthController
	Health  *controllers.HealthController
}

// NewRouter initializes the HTTP router with all application routes. requireAdmin
// guards the event management and booking listing routes.
func NewRouter(c Controllers, requireAdmin func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", c.Health.Health)

	// Events
	mux.HandleFunc("GET /events", c.Event.ListEvents)
	mux.HandleFunc("GET /events/{slug}", c.Event.GetEvent)
	mux.HandleFunc("POST /events", requireAdmin(c.Event.CreateEvent))
	mux.HandleFunc("PATCH /events/{id}", requireAdmin(c.Event.UpdateEvent))

	// Bookings
	mux.HandleFunc("POST /bookings", c.Booking.CreateBooking)
	mux.HandleFunc("GET /events/{slug}/bookings", requireAdmin(c.Booking.ListEventBookings))

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with CORS and request logging.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.CORS(allowedOrigins, middleware.LoggingMiddleware(logger, mux))
}
