package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patient-registry/config"
	deliveryHttp "patient-registry/internal/delivery/http"
	"patient-registry/internal/delivery/http/handler"
	"patient-registry/internal/delivery/http/middleware"
	"patient-registry/internal/infrastructure/cache"
	"patient-registry/internal/infrastructure/database"
	"patient-registry/internal/repository"
	"patient-registry/internal/service"
	"patient-registry/internal/usecase"
	"patient-registry/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Usecases    *Usecases
	Server      *http.Server

	// Seeded is the number of default specialists inserted at startup.
	Seeded int
	closed bool
}

// Usecases are shared by the HTTP server and the command line.
type Usecases struct {
	Patient    usecase.PatientUsecase
	Specialist usecase.SpecialistUsecase
	Export     usecase.ExportUsecase

	validator *validator.CustomValidator
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	setupLogger(cfg.App)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewConnection(cfg.DB, cfg.App.IsDev())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.WithField("driver", cfg.DB.Driver).Info("Database connected successfully")

	seeded, err := database.Initialize(context.Background(), db)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.Seeded = seeded
	if seeded > 0 {
		logrus.WithField("count", seeded).Info("Default specialists seeded")
	}

	// Initialize Redis; the specialist cache is optional
	specialistCache := service.NewNoopSpecialistCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logrus.Warnf("Redis unavailable, specialist cache disabled: %v", err)
		} else {
			app.RedisClient = redisClient
			specialistCache = service.NewRedisSpecialistCache(redisClient, cfg.Redis.TTL, logrus.StandardLogger())
			logrus.Info("Redis connected successfully")
		}
	}

	// Initialize all layers
	app.Usecases = initializeUsecases(cfg, db, specialistCache)
	app.Server = initializeServer(cfg, app.Usecases)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func initializeUsecases(cfg *config.Config, db *gorm.DB, specialistCache service.SpecialistCache) *Usecases {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	specialistRepo := repository.NewSpecialistRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	return &Usecases{
		Patient:    usecase.NewPatientUsecase(db, log, customValidator, patientRepo),
		Specialist: usecase.NewSpecialistUsecase(db, log, customValidator, specialistRepo, patientRepo, specialistCache),
		Export:     usecase.NewExportUsecase(log, cfg.Export.SheetName),
		validator:  customValidator,
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, usecases *Usecases) *http.Server {
	// Initialize handlers
	patientHandler := handler.NewPatientHandler(usecases.Patient, usecases.Export, usecases.validator)
	specialistHandler := handler.NewSpecialistHandler(usecases.Specialist)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(logrus.StandardLogger())
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, specialistHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis). Calling it again is a no-op.
func (app *App) Close() {
	if app.closed {
		return
	}
	app.closed = true

	// Close database connection
	if err := database.Close(app.DB); err != nil {
		logrus.Warnf("Failed to close database: %v", err)
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
