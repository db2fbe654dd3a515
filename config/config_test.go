package config

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	for _, k := range []string{"PORT", "STORAGE_DRIVER", "CONTEXT_TIMEOUT", "JWT_EXPIRY", "JWT_SECRET", "CORS_ALLOWED_ORIGINS", "EMAIL_PROVIDER", "MONGODB_URI"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageMongo, cfg.StorageDriver)
	assert.Equal(t, "mongodb://localhost:27017/eventnext", cfg.MongoURI)
	assert.Equal(t, 5*time.Second, cfg.ContextTimeout)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://db/events")
	t.Setenv("CONTEXT_TIMEOUT", "2s")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("EMAIL_PROVIDER", "ses")
	t.Setenv("SES_INSECURE_SKIP_VERIFY", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://db/events", cfg.DBUrl)
	assert.Equal(t, 2*time.Second, cfg.ContextTimeout)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "admin@example.com", cfg.Admin.Email)
	assert.Equal(t, "ses", cfg.Email.Provider)
	assert.True(t, cfg.Email.SESInsecureSkipVerify)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad timeout", map[string]string{"CONTEXT_TIMEOUT": "soon"}, "CONTEXT_TIMEOUT"},
		{"negative expiry", map[string]string{"JWT_EXPIRY": "-1h"}, "JWT_EXPIRY"},
		{"unknown driver", map[string]string{"STORAGE_DRIVER": "sqlite"}, "STORAGE_DRIVER"},
		{"bad bool", map[string]string{"SES_INSECURE_SKIP_VERIFY": "maybe"}, "SES_INSECURE_SKIP_VERIFY"},
		{"production without secret", map[string]string{"GO_ENV": "production", "JWT_SECRET": ""}, "JWT_SECRET"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "test")
			t.Setenv("JWT_SECRET", "x")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.ErrorContains(t, err, tt.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "production", "warn")
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
	logger.Warn("careful", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"careful"`)

	buf.Reset()
	logger = newLogger(&buf, "development", "debug")
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
