// Package server hosts the viewer's HTTP endpoints.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/mdview/internal/logger"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Routes registers a feature's handlers on the server.
type Routes interface {
	RegisterRoutes(r chi.Router)
	// RegisterStreams registers long-lived handlers that must not be
	// subject to the request timeout.
	RegisterStreams(r chi.Router)
}

// Server wraps a chi router and its http.Server.
type Server struct {
	cfg        Config
	log        *logger.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Each Routes value is mounted under the common
// middleware stack.
func New(cfg Config, log *logger.Logger, routes ...Routes) *Server {
	if log == nil {
		log = logger.Discard()
	}
	s := &Server{cfg: cfg, log: log}
	s.router = s.buildRouter(routes)
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter(routes []Routes) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	for _, rt := range routes {
		rt.RegisterStreams(r)
	}
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		for _, rt := range routes {
			rt.RegisterRoutes(r)
		}
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Addr returns the listen address.
func (s *Server) Addr() string { return fmt.Sprintf(":%d", s.cfg.Port) }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.ServerListening(s.Addr())
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
