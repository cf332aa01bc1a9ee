package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/auth"
	"github.com/examgenius/exam-platform/internal/auth/jwt"
	"github.com/examgenius/exam-platform/internal/config"
	"github.com/examgenius/exam-platform/internal/curriculum"
	"github.com/examgenius/exam-platform/internal/db/repository"
	"github.com/examgenius/exam-platform/internal/generate"
	"github.com/examgenius/exam-platform/internal/logging"
	"github.com/examgenius/exam-platform/internal/reference"
	"github.com/examgenius/exam-platform/internal/server"
	ws "github.com/examgenius/exam-platform/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool   *pgxpool.Pool
	redis  *redis.Client
	http   *http.Server
	worker *generate.Worker
}

// New bootstraps configs, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	userRepo := repository.NewUserRepository(pool)
	requestRepo := repository.NewRequestRepository(pool)
	setRepo := repository.NewSetRepository(pool)
	documentRepo := repository.NewDocumentRepository(pool)

	// The identity provider is fixed at boot. "stub" keeps local
	// development working without configured secrets; it still issues and
	// verifies real tokens, just with an ephemeral signing key.
	switch cfg.Security.AuthProvider {
	case "jwt":
		if cfg.Security.JWTSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET must be configured")
		}
	case "stub":
		if cfg.Security.JWTSecret == "" {
			cfg.Security.JWTSecret = uuid.NewString()
			logger.Warn().Msg("stub auth provider: using ephemeral signing key, tokens will not survive a restart")
		}
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Security.AuthProvider)
	}
	refreshSecret := cfg.Security.JWTRefreshSecret
	if refreshSecret == "" {
		refreshSecret = cfg.Security.JWTSecret + "_refresh"
	}
	tokenCfg := jwt.TokenConfig{
		AccessSecret:  []byte(cfg.Security.JWTSecret),
		RefreshSecret: []byte(refreshSecret),
		Issuer:        cfg.Name,
	}
	authSvc := auth.NewService(userRepo, tokenCfg, logger)

	var oauthSvc *auth.OAuthService
	if cfg.OAuth.GoogleClientID != "" && cfg.OAuth.GoogleClientSecret != "" {
		redirectURL := cfg.OAuth.GoogleRedirectURL
		if redirectURL == "" {
			redirectURL = fmt.Sprintf("http://%s/v1/oauth/google/callback", cfg.HTTPAddr)
		}
		oauthSvc = auth.NewOAuthService(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret, redirectURL, logger)
		logger.Info().Msg("OAuth service initialized")
	} else {
		logger.Warn().Msg("OAuth not configured (missing GOOGLE_OAUTH_CLIENT_ID or GOOGLE_OAUTH_CLIENT_SECRET)")
	}
	authHandlers := auth.NewHTTPHandlers(authSvc, oauthSvc, logger)

	// Generation pipeline
	catalog := curriculum.Default()
	resolver := reference.NewResolver(catalog, documentRepo)
	client := generate.NewClient(generate.ClientConfig{
		URL:     cfg.Generator.URL,
		APIKey:  cfg.Generator.APIKey,
		Model:   cfg.Generator.Model,
		Timeout: cfg.Generator.HTTPTimeout,
	}, logger)
	statusCache := generate.NewRedisStatusCache(redisClient, cfg.Pipeline.StatusCacheTTL)

	wsHub := ws.NewHub(logger)
	notifier := server.NewStatusNotifier(wsHub, logger)

	genSvc := generate.NewService(
		catalog,
		resolver,
		client,
		requestRepo,
		setRepo,
		statusCache,
		notifier,
		logger,
		generate.ServiceOptions{QueueSize: cfg.Pipeline.QueueSize},
	)
	worker := generate.NewWorker(genSvc, logger, cfg.Pipeline.Workers, cfg.Generator.HTTPTimeout)

	handlers := server.Handlers{
		Auth:       authHandlers,
		Curriculum: server.NewCurriculumHandlers(catalog),
		Documents:  server.NewDocumentHandlers(documentRepo, logger),
		Generate:   server.NewGenerateHandlers(genSvc, logger),
		WS:         server.NewWSHandler(wsHub, authSvc, genSvc, logger),
	}

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, authSvc, handlers)

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   apiServer,
		worker: worker,
	}, nil
}

// Run starts the workers and the HTTP server, then waits for termination
// signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.worker.Run()

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.worker.Stop()

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
