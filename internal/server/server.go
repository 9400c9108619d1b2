// Package server wires the feature packages into one HTTP API.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/propertyloop/leadmatch/internal/advice"
	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/config"
	"github.com/propertyloop/leadmatch/internal/db"
	"github.com/propertyloop/leadmatch/internal/fieldcatalog"
	"github.com/propertyloop/leadmatch/internal/flows"
	"github.com/propertyloop/leadmatch/internal/leads"
	"github.com/propertyloop/leadmatch/internal/recommend"
	"github.com/propertyloop/leadmatch/internal/vectordb"
)

// Server hosts the leadmatch HTTP API.
type Server struct {
	cfg        *config.Config
	db         *db.DB
	registry   *concepts.Registry
	flowStore  *flows.Store
	leadStore  *leads.Store
	advStore   *advice.Store
	drafter    *recommend.Drafter
	search     vectordb.VectorStore
	router     chi.Router
	httpServer *http.Server
}

// New creates a server over the given database. drafter and search may be
// nil when the instance runs without an LLM provider or vector index.
func New(cfg *config.Config, database *db.DB, registry *concepts.Registry, drafter *recommend.Drafter, search vectordb.VectorStore) *Server {
	s := &Server{
		cfg:       cfg,
		db:        database,
		registry:  registry,
		flowStore: flows.NewStore(database),
		leadStore: leads.NewStore(database),
		advStore:  advice.NewStore(database),
		drafter:   drafter,
		search:    search,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	flows.RegisterRoutes(r, s.flowStore)
	leads.RegisterRoutes(r, s.leadStore)
	advice.RegisterRoutes(r, s.advStore, s.registry, s.search)
	fieldcatalog.RegisterRoutes(r, s.registry, s.flowStore)

	rec := recommend.NewRecommender(s.leadStore, s.flowStore, s.advStore, s.registry, recommend.Options{
		MaxResults: s.cfg.MaxRecommendations,
		MinScore:   s.cfg.MinScore,
	})
	recommend.RegisterRoutes(r, rec, s.drafter, s.search)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("leadmatch server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
