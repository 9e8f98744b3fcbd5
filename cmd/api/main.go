package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"casewrite/docs"
	"casewrite/internal/config"
	"casewrite/internal/database"
	"casewrite/internal/database/migration"
	"casewrite/internal/gemini"
	handlers "casewrite/internal/http/handler"
	"casewrite/internal/http/middleware"
	"casewrite/internal/logging"
	"casewrite/internal/otel"
	"casewrite/internal/render"
	"casewrite/internal/repository"
	"casewrite/internal/repository/postgres"
	"casewrite/internal/service"
)

// @title Casewrite API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	log := logging.New(os.Stdout, cfg.LogLevel, loc)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			log.Error("missing model credential", "error", err)
		} else {
			log.Error("invalid configuration", "error", err)
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	analysisMetrics, err := service.NewAnalysisMetrics(reg)
	if err != nil {
		log.Error("failed to register analysis metrics", "error", err)
		os.Exit(1)
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Error("failed to register http metrics", "error", err)
		os.Exit(1)
	}

	sessionOpts := []service.SessionOption{
		service.WithLogger(log.With("component", "session")),
		service.WithMetrics(analysisMetrics),
	}

	// Optional intake ledger (metadata only)
	deps := handlers.Deps{}
	if cfg.Database.Enabled() {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Error("database migration failed", "error", err)
			os.Exit(1)
		}

		var intakes repository.IntakeRepository = postgres.NewIntakePostgres(db)
		deps.DB = db
		deps.Intakes = intakes
		sessionOpts = append(sessionOpts, service.WithRecorder(intakes))
	} else {
		log.Info("intake ledger disabled", "component", "database")
	}

	client := gemini.NewClient(cfg.Gemini.APIKey,
		gemini.WithBaseURL(cfg.Gemini.BaseURL),
		gemini.WithTimeout(cfg.Gemini.Timeout()),
	)
	analyzer := service.NewAnalysisService(client, service.AnalyzerConfig{
		Credential: cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		Location:   loc,
	})
	deps.Session = service.NewSession(analyzer, sessionOpts...)

	deps.Renderer, err = render.NewRenderer()
	if err != nil {
		log.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.Intake.BodyLimit(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger(log.With("component", "http")))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, deps)

	if cfg.Swagger {
		// Swagger UI with dynamic host and scheme
		app.Get("/swagger/*", func(c *fiber.Ctx) error {
			scheme := c.Protocol()
			if proto := c.Get("X-Forwarded-Proto"); proto != "" {
				scheme = strings.Split(proto, ",")[0]
			}

			docs.SwaggerInfo.Host = c.Get("Host")
			docs.SwaggerInfo.Schemes = []string{scheme}

			return swagger.HandlerDefault(c)
		})
	}

	go func() {
		<-ctx.Done()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	addr := ":" + cfg.Port
	log.Info("server starting", "addr", addr, "model", cfg.Gemini.Model, "ledger", cfg.Database.Enabled())

	if err := app.Listen(addr); err != nil {
		log.Error("failed to start server", "error", err)
	}
}
