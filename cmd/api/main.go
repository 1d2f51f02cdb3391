package main

import (
	"context"
	"database/sql"
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
	"github.com/rs/zerolog"

	"employeeapi/docs"
	"employeeapi/internal/config"
	"employeeapi/internal/database"
	"employeeapi/internal/database/migration"
	"employeeapi/internal/export"
	handlers "employeeapi/internal/http/handler"
	"employeeapi/internal/http/middleware"
	"employeeapi/internal/logger"
	"employeeapi/internal/otel"
	"employeeapi/internal/repository"
	"employeeapi/internal/repository/postgres"
	"employeeapi/internal/repository/sqlite"
	"employeeapi/internal/service"
	"employeeapi/internal/storage"
)

// @title Employee API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	loc := logger.LoadLocation(cfg.Timezone)
	log := logger.New(cfg.LogLevel, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}
	defer db.Close()

	repo, err := newRepository(ctx, db, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare employee store")
	}
	svc := service.NewEmployeeService(repo, log)

	// Export is optional; it needs S3-compatible object storage.
	var exp handlers.Snapshotter
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize object storage")
		}
		exp = export.NewExporter(repo, objStore, time.Duration(cfg.ExportURLExpirySec)*time.Second, log)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.RegisterRoutes(app, db, svc, exp)

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

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Bool("export_enabled", exp != nil).Msg("server starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("tracer shutdown")
	}
}

// newRepository returns the employee store for the configured driver,
// bootstrapping its schema first.
func newRepository(ctx context.Context, db *sql.DB, c config.DatabaseConfig, log zerolog.Logger) (repository.EmployeeRepository, error) {
	if c.Driver == "sqlite" {
		return sqlite.NewEmployeeSQLite(ctx, db)
	}

	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := migration.EnsureMigrated(migrateCtx, db, log, c.Host); err != nil {
		return nil, err
	}
	return postgres.NewEmployeePostgres(db), nil
}
