// Package app assembles the application: configuration, logging, the
// dataset store, the insights service, and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"savrainsights/internal/config"
	"savrainsights/internal/dataset"
	"savrainsights/internal/infrastructure"
	custommw "savrainsights/internal/middleware"
	"savrainsights/internal/services"
	handlers "savrainsights/internal/transport/http"
)

const AppName = "Savra Teacher Insights API"

// Application is the main application container.
type Application struct {
	Config          *config.Config
	Logger          *slog.Logger
	Router          *chi.Mux
	Server          *http.Server
	Store           *dataset.Store
	InsightsService *services.InsightsService

	metricsRegistry *prometheus.Registry
}

// NewApplication creates a new application instance with all
// dependencies wired.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	slog.SetDefault(logger)

	logger.Info("application starting",
		slog.String("name", AppName),
		slog.String("dataset", cfg.Dataset.File))

	app := &Application{
		Config: cfg,
		Logger: logger,
	}
	app.initializeServices()
	app.setupRouter()
	app.createServer()
	return app, nil
}

func (a *Application) initializeServices() {
	a.Store = dataset.NewStore(dataset.Options{
		Path:           a.Config.Dataset.File,
		Sheet:          a.Config.Dataset.Sheet,
		StrictIdentity: a.Config.Dataset.StrictIdentity,
	}, a.Logger)

	a.InsightsService = services.NewInsightsService(a.Store, a.Logger)

	a.metricsRegistry = prometheus.NewRegistry()
	a.metricsRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// setupRouter configures the HTTP router with middleware and routes.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.RealIP)
	r.Use(custommw.NewHTTPMetrics(a.metricsRegistry).Handler)
	r.Use(custommw.StructuredLogger(a.Logger))
	r.Use(custommw.Recoverer(a.Logger))
	r.Use(custommw.SecurityHeaders)
	r.Use(custommw.CORS(custommw.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
	}))
	if a.Config.Security.RateLimit.Enabled {
		r.Use(custommw.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"message": AppName + " is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		healthHandler := handlers.NewHealthHandler(a.InsightsService, a.Logger)
		r.Get("/health", healthHandler.HealthCheck)

		insightsHandler := handlers.NewInsightsHandler(a.InsightsService, a.Logger)
		insightsHandler.RegisterRoutes(r)
	})

	r.Handle("/metrics", promhttp.HandlerFor(a.metricsRegistry, promhttp.HandlerOpts{}))

	a.Router = r
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Router,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
		IdleTimeout:  a.Config.Server.IdleTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown. SIGINT/SIGTERM
// trigger a graceful drain bounded by the configured shutdown timeout.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.Info("server listening", slog.String("addr", a.Server.Addr))
		if err := a.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		a.Logger.Info("shutting down",
			slog.Duration("timeout", a.Config.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
