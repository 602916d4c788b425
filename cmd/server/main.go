package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mistakebook/internal/config"
	"mistakebook/internal/database"
	"mistakebook/internal/handlers"
	"mistakebook/internal/middleware"
	"mistakebook/internal/services"
	"mistakebook/internal/types"
	"mistakebook/internal/utils"

	_ "mistakebook/docs/api" // Swagger docs
)

// @title Mistakebook API
// @version 1.0.0
// @description Local-first mistake photo catalogue: photos, units, settings and filters over an embedded database
// @host localhost:3000
// @BasePath /api
// @schemes http

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogger(cfg.LogLevel)

	// Open the local database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Services
	settingsService := services.NewSettingsService(db)
	photoService := services.NewPhotoService(db, settingsService, cfg.QuotaBytes())
	unitService := services.NewUnitService(db)

	// Seed the default units explicitly at startup; a non-empty collection
	// makes this a no-op.
	seeded, err := unitService.SeedDefaults(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed default units")
	}
	if seeded > 0 {
		log.Info().Int("units", seeded).Msg("seeded default units")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: storageErrorHandler,
		BodyLimit:    64 * 1024 * 1024, // uploads are size-checked against settings, not here
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("mistakebook")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health and storage report
	healthHandler := &handlers.HealthHandler{DB: db, QuotaBytes: cfg.QuotaBytes()}
	app.Get("/health", healthHandler.GetHealth)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())

	photoHandler := &handlers.PhotoHandler{Photos: photoService}
	unitHandler := &handlers.UnitHandler{Units: unitService}
	settingsHandler := &handlers.SettingsHandler{Settings: settingsService}

	api.Post("/photos", photoHandler.CreatePhoto)
	api.Get("/photos", photoHandler.ListPhotos)
	api.Get("/photos/count", photoHandler.CountPhotos)
	api.Get("/photos/:id", photoHandler.GetPhoto)
	api.Get("/photos/:id/image", photoHandler.GetPhotoImage)
	api.Get("/photos/:id/thumbnail", photoHandler.GetPhotoThumbnail)
	api.Patch("/photos/:id", photoHandler.UpdatePhoto)
	api.Delete("/photos/:id", photoHandler.DeletePhoto)

	api.Get("/units", unitHandler.ListUnits)
	api.Post("/units", unitHandler.CreateUnit)
	api.Delete("/units/:id", unitHandler.DeleteUnit)

	api.Get("/settings", settingsHandler.GetSettings)
	api.Patch("/settings", settingsHandler.UpdateSettings)
	api.Post("/settings/reset", settingsHandler.ResetSettings)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("gracefully shutting down")
		_ = app.ShutdownWithTimeout(15 * time.Second)
	}()

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}

	log.Info().Msg("server stopped")
}

// setupLogger configures the global zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// storageErrorHandler translates errors escaping handlers into the standard
// envelope, mapping storage error codes to HTTP statuses.
func storageErrorHandler(c *fiber.Ctx, err error) error {
	var se *types.StorageError
	if errors.As(err, &se) {
		return utils.StorageErrorResponse(c, se)
	}

	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	return utils.ErrorResponse(c, err.Error(), code, "unknown")
}
