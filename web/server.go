// Package web serves the position size calculator as an HTML form and a
// small JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/rustyeddy/lotsize/config"
	"github.com/rustyeddy/lotsize/i18n"
	"github.com/rustyeddy/lotsize/market"
	"github.com/rustyeddy/lotsize/metrics"
	"github.com/rustyeddy/lotsize/pkg/id"
	"github.com/rustyeddy/lotsize/prefs"
	"github.com/rustyeddy/lotsize/risk"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options wires a Server. Store and Logger are required; a nil Metrics
// disables /metrics.
type Options struct {
	Config  *config.Config
	Store   prefs.Store
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

type Server struct {
	cfg     *config.Config
	catalog market.Catalog
	store   prefs.Store
	metrics *metrics.Metrics
	log     *zap.Logger
	ids     *id.Generator
	tmpl    *template.Template

	// compute sizes a position; tests swap it to exercise failure paths.
	compute func(risk.Input, market.Catalog) (risk.Outcome, error)

	sessions *sessions

	defaultLang  i18n.Lang
	defaultTheme prefs.Theme
}

func NewServer(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("web: config is required")
	}
	if opts.Store == nil {
		return nil, errors.New("web: prefs store is required")
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	delay, err := opts.Config.Server.Delay()
	if err != nil {
		return nil, fmt.Errorf("web: calculation delay: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}

	return &Server{
		cfg:          opts.Config,
		catalog:      opts.Config.Instruments.Clone(),
		store:        opts.Store,
		metrics:      opts.Metrics,
		log:          opts.Logger,
		ids:          id.NewGenerator(),
		tmpl:         tmpl,
		compute:      risk.SafeCompute,
		sessions:     newSessions(delay),
		defaultLang:  i18n.Normalize(opts.Config.UI.DefaultLang),
		defaultTheme: prefs.ParseTheme(opts.Config.UI.DefaultTheme),
	}, nil
}

// Handler returns the routed handler with middleware applied.
//
//	GET  /                      form page
//	POST /calculate             deferred calculation, renders the page
//	POST /theme                 toggle light/dark
//	POST /lang                  toggle en/fr
//	GET  /api/v1/size           JSON calculation
//	GET  /api/v1/instruments    JSON catalog
//	GET  /healthz
//	GET  /metrics               when metrics are enabled
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter()

	router.Use(s.recovery)
	router.Use(s.logging)

	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/calculate", s.handleCalculate).Methods(http.MethodPost)
	router.HandleFunc("/theme", s.handleTheme).Methods(http.MethodPost)
	router.HandleFunc("/lang", s.handleLang).Methods(http.MethodPost)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/size", s.handleAPISize).Methods(http.MethodGet)
	api.HandleFunc("/instruments", s.handleAPIInstruments).Methods(http.MethodGet)

	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	go s.pruneSessions(ctx)

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) pruneSessions(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.sessions.prune(now, sessionIdle); n > 0 {
				s.log.Debug("pruned idle sessions", zap.Int("count", n))
			}
		}
	}
}
