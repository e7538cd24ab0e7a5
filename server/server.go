package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"estate-listings/models"
	"estate-listings/services"
	"estate-listings/utils"
)

// Server exposes the listing catalog over a JSON API.
type Server struct {
	router    chi.Router
	logger    *utils.Logger
	startTime time.Time
	pageSize  int

	catalog   *services.Catalog
	engine    *services.QueryEngine
	favorites *services.Favorites
	leads     *services.LeadService
	insights  *services.InsightService
}

type Option func(*Server)

// WithPageSize sets the page size used when a request has no pageSize.
func WithPageSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

func New(catalog *services.Catalog, logger *utils.Logger, opts ...Option) *Server {
	logger = logger.With("server")
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger,
		startTime: time.Now(),
		pageSize:  models.DefaultPageSize,
		catalog:   catalog,
		engine:    services.NewQueryEngine(logger),
		favorites: services.NewFavorites(catalog),
		leads:     services.NewLeadService(catalog, logger),
		insights:  services.NewInsightService(logger),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(accessLog(s.logger))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, RequestIDFromContext(r.Context()), http.StatusNotFound,
			&models.APIError{Code: models.ErrNotFound, Message: "no route for " + r.URL.Path})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/listings", s.handleListListings)
		r.Get("/listings/{id}", s.handleGetListing)
		r.Get("/featured", s.handleFeatured)
		r.Get("/filters/options", s.handleFilterOptions)

		r.Get("/favorites", s.handleListFavorites)
		r.Post("/favorites/{id}", s.handleToggleFavorite)

		r.Get("/leads", s.handleListLeads)
		r.Post("/leads", s.handleCreateLead)

		r.Route("/estimates", func(r chi.Router) {
			r.Get("/mortgage", s.handleMortgage)
			r.Get("/rent", s.handleRentAffordability)
			r.Get("/home-value", s.handleHomeValue)
		})

		r.Get("/insights", s.handleInsights)

		r.Get("/agents", s.handleAgents)
		r.Get("/testimonials", s.handleTestimonials)
		r.Get("/neighborhoods", s.handleNeighborhoods)
		r.Get("/faqs", s.handleFAQs)
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("[server] Listening on %s (%d listings)", addr, s.catalog.Len())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("[server] Stopped")
	return nil
}
