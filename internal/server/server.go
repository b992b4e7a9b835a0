// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/snonux/textlens/internal/input"
	"codeberg.org/snonux/textlens/internal/processor"
	"codeberg.org/snonux/textlens/internal/translation"
)

// Config holds the server configuration
type Config struct {
	Host            string
	Port            int
	EnableMetrics   bool
	SourceLang      string
	TargetLang      string
	StripMarkdown   bool
	UploadLimit     int64
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a default server configuration
func DefaultConfig() *Config {
	return &Config{
		Host:            "localhost",
		Port:            8080,
		EnableMetrics:   true,
		SourceLang:      translation.DefaultSourceLanguage,
		TargetLang:      translation.DefaultTargetLanguage,
		UploadLimit:     input.DefaultUploadLimit,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    90 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// Analyzer is satisfied by *processor.Processor.
type Analyzer interface {
	Analyze(ctx context.Context, req processor.Request) (*processor.Result, error)
}

// Metrics are the Prometheus collectors of the HTTP surface.
type Metrics struct {
	analyses  *prometheus.CounterVec
	fallbacks prometheus.Counter
	duration  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with registerer,
// unless it is nil.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "textlens_analyses_total",
			Help: "Analyses by outcome",
		}, []string{"outcome"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "textlens_translation_fallbacks_total",
			Help: "Analyses that fell back to the untranslated text",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "textlens_analysis_duration_seconds",
			Help:    "Duration of successful analyses in seconds",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if registerer != nil {
		registerer.MustRegister(m.analyses)
		registerer.MustRegister(m.fallbacks)
		registerer.MustRegister(m.duration)
	}

	return m
}

// Option customizes a Server.
type Option func(*Server)

// WithRegistry registers metrics with reg and serves them from it instead of
// the global registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		s.registerer = reg
		s.gatherer = reg
	}
}

// Server serves the analysis API
type Server struct {
	config     *Config
	analyzer   Analyzer
	metrics    *Metrics
	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	router     *mux.Router
	server     *http.Server
}

// New creates a server around analyzer. A nil config selects DefaultConfig.
func New(config *Config, analyzer Analyzer, opts ...Option) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	if config.UploadLimit <= 0 {
		config.UploadLimit = input.DefaultUploadLimit
	}

	s := &Server{
		config:     config,
		analyzer:   analyzer,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = NewMetrics(s.registerer)
	s.router = s.routes()
	return s
}

func (s *Server) routes() *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(s.loggingMiddleware)
	api.HandleFunc("/analyze", s.analyzeText).Methods(http.MethodPost)
	api.HandleFunc("/analyze/upload", s.analyzeUpload).Methods(http.MethodPost)

	if s.config.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	router.HandleFunc("/health", s.healthCheck).Methods(http.MethodGet)

	return router
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	slog.Info("[Server] Starting",
		slog.String("addr", s.Addr()),
		slog.Bool("metrics", s.config.EnableMetrics))

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("[Server] Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
