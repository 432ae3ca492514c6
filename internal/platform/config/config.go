package config

import (
	"fmt"
	"os"
	"time"
)

// Environment names recognized by the service. Anything other than
// "development" is treated as a deployed context for security decisions.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// InsecureDevSecret is the signing key used when JWT_SECRET is unset in
// development. It must never be accepted outside local development.
const InsecureDevSecret = "dotback_secret_key"

// DefaultSessionTTL is the fixed lifetime of an admin session token.
var DefaultSessionTTL = 7 * 24 * time.Hour

// Server captures process-level configuration for the admin backend.
type Server struct {
	Addr            string
	Env             string
	LogLevel        string
	JWTSecret       string
	JWTSecretIsDev  bool
	SessionTTL      time.Duration
	MongoURI        string
	MongoDatabase   string
	UploadDir       string
	UploadMaxBytes  int64
	DashboardOrigin string
}

// FromEnv builds a Server config from environment variables so main stays lean.
// It returns an error when the configuration is unusable, such as a missing
// JWT secret in production.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:            envOr("DOTBACK_ADDR", ":8080"),
		Env:             envOr("APP_ENV", EnvDevelopment),
		LogLevel:        envOr("LOG_LEVEL", "info"),
		SessionTTL:      DefaultSessionTTL,
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDatabase:   envOr("MONGO_DATABASE", "dotback"),
		UploadDir:       envOr("UPLOAD_DIR", "public/uploads"),
		UploadMaxBytes:  2 << 20,
		DashboardOrigin: envOr("DASHBOARD_ORIGIN", "http://localhost:3000"),
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil {
			return Server{}, fmt.Errorf("invalid SESSION_TTL %q: %w", ttl, err)
		}
		cfg.SessionTTL = duration
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if cfg.Env != EnvDevelopment {
			return Server{}, fmt.Errorf("JWT_SECRET must be set when APP_ENV=%s", cfg.Env)
		}
		cfg.JWTSecret = InsecureDevSecret
		cfg.JWTSecretIsDev = true
	}

	return cfg, nil
}

// IsDevelopment reports whether the process runs in local development.
func (c Server) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
