package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"flow7/docs"
	"flow7/internal/config"
	"flow7/internal/database"
	handlers "flow7/internal/http/handler"
	"flow7/internal/http/middleware"
	"flow7/internal/logging"
	"flow7/internal/otel"
)

const (
	shutdownTimeout = 10 * time.Second
	docsPath        = "/api/docs"
)

// @title Flow7 API
// @version 0.1.0
// @description AI Agent Platform API
// @BasePath /
func main() {
	cfg := config.Load()
	log := logging.New(cfg.Debug, cfg.Location())
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Error("server_exited", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, handlers.ServiceName, cfg.Environment, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	// The database is optional; without it the DB health endpoint reports not_implemented.
	var pinger handlers.Pinger
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		pinger = db
		if dsn, err := database.BuildPostgresDSN(cfg.Database); err == nil {
			log.Info("database_connected", zap.String("dsn", database.RedactDSN(dsn)))
		}
	} else {
		log.Info("database_disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := newApp(cfg, log, reg, pinger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_starting", zap.String("addr", addr), zap.String("environment", cfg.Environment))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("server_shutting_down")
		return app.ShutdownWithTimeout(shutdownTimeout)
	}
}

// newApp builds the fiber app with its middleware chain and routes.
// It configures the package level swagger document, so call it once per process.
func newApp(cfg *config.AppConfig, log *zap.Logger, reg *prometheus.Registry, db handlers.Pinger) (*fiber.App, error) {
	// cors.New panics on origins it cannot parse.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.ProjectName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: !cfg.Debug,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowOrigins, ","),
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowHeaders:     "*",
	}))

	apiPrefix := handlers.NormalizePrefix(cfg.APIPrefix)
	handlers.RegisterRoutes(app, apiPrefix, db)

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// An empty scheme list lets Swagger UI reuse the scheme the page was loaded with.
	docs.Configure(cfg.ProjectName, cfg.AppHost, apiPrefix)
	app.Get(docsPath+"/*", swagger.HandlerDefault)
	app.Get(handlers.ReDocPath, handlers.ReDoc(cfg.ProjectName, docsPath+"/doc.json"))

	return app, nil
}
