package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"exam-platform"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres  Postgres
	Redis     Redis
	Security  Security
	OAuth     OAuth
	Generator Generator
	Pipeline  Pipeline
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Redis holds cache configuration.
type Redis struct {
	Addr     string `env:"REDIS_ADDR,notEmpty"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

// Security stores secrets for signing and selects the identity provider.
// AuthProvider is fixed at process start; "stub" is for local development only.
// The secrets default to empty so the stub provider can run without them;
// the jwt provider rejects an empty JWT_SECRET at startup.
type Security struct {
	JWTSecret        string `env:"JWT_SECRET" envDefault:""`
	JWTRefreshSecret string `env:"JWT_REFRESH_SECRET" envDefault:""`
	AuthProvider     string `env:"AUTH_PROVIDER" envDefault:"jwt"`
}

// OAuth holds OAuth provider configuration. All fields are optional;
// leaving them empty disables the Google sign-in routes.
type OAuth struct {
	GoogleClientID     string `env:"GOOGLE_OAUTH_CLIENT_ID" envDefault:""`
	GoogleClientSecret string `env:"GOOGLE_OAUTH_CLIENT_SECRET" envDefault:""`
	GoogleRedirectURL  string `env:"GOOGLE_OAUTH_REDIRECT_URL" envDefault:""`
}

// Generator configures the upstream chat-completion service.
type Generator struct {
	URL         string        `env:"GENERATOR_URL" envDefault:"https://openrouter.ai/api/v1/chat/completions"`
	APIKey      string        `env:"GENERATOR_API_KEY,notEmpty"`
	Model       string        `env:"GENERATOR_MODEL" envDefault:"openai/gpt-4o-mini"`
	HTTPTimeout time.Duration `env:"GENERATOR_HTTP_TIMEOUT" envDefault:"90s"`
}

// Pipeline governs the background generation workers.
type Pipeline struct {
	Workers        int           `env:"PIPELINE_WORKERS" envDefault:"4"`
	QueueSize      int           `env:"PIPELINE_QUEUE_SIZE" envDefault:"64"`
	StatusCacheTTL time.Duration `env:"STATUS_CACHE_TTL" envDefault:"2s"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
