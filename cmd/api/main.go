// Command api serves the event listing and booking API.
//
// @title Event Next API
// @version 1.0
// @description Event listing and booking API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin JWT.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kirubel-Te/Event-Next/config"
	_ "github.com/Kirubel-Te/Event-Next/docs"
	"github.com/Kirubel-Te/Event-Next/internal/adapters/auth"
	"github.com/Kirubel-Te/Event-Next/internal/adapters/email"
	deliveryhttp "github.com/Kirubel-Te/Event-Next/internal/delivery/http"
	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/controllers"
	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/middleware"
	"github.com/Kirubel-Te/Event-Next/internal/domain"
	"github.com/Kirubel-Te/Event-Next/internal/services"
	"github.com/Kirubel-Te/Event-Next/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const (
	startupTimeout  = 15 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	if err := run(cfg, logger); err != nil {
		logger.Error("api stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	store, err := openStorage(startupCtx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.release(ctx); err != nil {
			logger.Warn("release storage", "err", err)
		}
	}()
	logger.Info("storage ready", "driver", cfg.StorageDriver)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}

	v := validation.New()
	emailSvc := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	eventSvc := services.NewEventService(store.events, v, cfg.ContextTimeout)
	bookingSvc := services.NewBookingService(store.bookings, store.events, v, emailSvc, logger, cfg.ContextTimeout)
	authSvc := services.NewAuthService(services.AdminCredentials{
		Email:        cfg.Admin.Email,
		PasswordHash: cfg.Admin.PasswordHash,
		PasswordSalt: cfg.Admin.PasswordSalt,
	}, auth.NewBcryptHasher(bcrypt.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)
	if cfg.Admin.Email == "" || cfg.Admin.PasswordHash == "" {
		logger.Warn("ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set; admin login is disabled")
	}

	requireAdmin := middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret, domain.RoleAdmin), logger)
	mux := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Event:   controllers.NewEventController(logger, eventSvc),
		Booking: controllers.NewBookingController(logger, bookingSvc),
		Auth:    controllers.NewAuthController(logger, authSvc),
		Health:  controllers.NewHealthController(logger, store.ping),
	}, requireAdmin)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           deliveryhttp.NewHandler(mux, logger, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", server.Addr, "env", cfg.Environment)
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown", "err", err)
	}
	logger.Info("server stopped")
	return nil
}
