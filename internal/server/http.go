// Package server wires the HTTP surface of the exam platform.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/examgenius/exam-platform/internal/auth"
	"github.com/examgenius/exam-platform/internal/config"
)

// WSUpgrader handles WebSocket upgrades (configure CORS/security as needed).
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: implement proper origin checking for production
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handlers groups the per-domain HTTP handlers the server mounts.
type Handlers struct {
	Auth       *auth.HTTPHandlers
	Curriculum *CurriculumHandlers
	Documents  *DocumentHandlers
	Generate   *GenerateHandlers
	WS         *WSHandler
}

// NewHTTPServer wires all routes. The auth middleware runs in front of
// every /v1 route so handlers can read claims from the request context.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, rdb *redis.Client, authSvc *auth.Service, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, rdb); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	// Auth endpoints
	if h.Auth != nil {
		mux.HandleFunc("/v1/auth/register", h.Auth.Register)
		mux.HandleFunc("/v1/auth/login", h.Auth.Login)
		mux.HandleFunc("/v1/auth/guest", h.Auth.CreateGuest)
		mux.HandleFunc("/v1/auth/refresh", h.Auth.RefreshToken)
		mux.HandleFunc("/v1/oauth/{provider}/start", h.Auth.OAuthStart)
		mux.HandleFunc("/v1/oauth/{provider}/callback", h.Auth.OAuthCallback)
		mux.HandleFunc("/v1/users/me", h.Auth.GetMe)
	}

	// Curriculum catalog and manual library
	if h.Curriculum != nil {
		mux.HandleFunc("/v1/curriculum/options", h.Curriculum.Options)
		mux.HandleFunc("/v1/manuals", h.Curriculum.Manuals)
	}

	// Uploaded reference documents
	if h.Documents != nil {
		mux.HandleFunc("/v1/documents", h.Documents.HandleDocuments)
	}

	// Generation pipeline and question sets
	if h.Generate != nil {
		mux.HandleFunc("/v1/requests", h.Generate.SubmitRequest)
		mux.HandleFunc("/v1/requests/{id}", h.Generate.RequestStatus)
		mux.HandleFunc("/v1/sets", h.Generate.ListSets)
		mux.HandleFunc("/v1/sets/{id}", h.Generate.HandleSet)
		mux.HandleFunc("/v1/sets/{id}/export", h.Generate.ExportSet)
	}

	// WebSocket status push
	if h.WS != nil {
		mux.Handle("/ws/requests", h.WS)
	}

	var handler http.Handler = mux
	if authSvc != nil {
		handler = auth.Middleware(authSvc, logger)(mux)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, rdb *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
