package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"profesionesuy-api/config"
	deliveryHttp "profesionesuy-api/internal/delivery/http"
	"profesionesuy-api/internal/delivery/http/handler"
	"profesionesuy-api/internal/delivery/http/middleware"
	"profesionesuy-api/internal/infrastructure/cache"
	"profesionesuy-api/internal/infrastructure/database"
	"profesionesuy-api/internal/repository"
	"profesionesuy-api/internal/service"
	"profesionesuy-api/internal/usecase"
	"profesionesuy-api/pkg/jwt"
	"profesionesuy-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config            *config.Config
	DB                *gorm.DB
	RedisClient       *redis.Client
	Server            *http.Server
	CompletionService *service.CompletionService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Run pending migrations
	if err := database.Migrate(db, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, completionService := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.CompletionService = completionService

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.CompletionService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	clientProfileRepo := repository.NewClientProfileRepository()
	professionalProfileRepo := repository.NewProfessionalProfileRepository()
	windowRepo := repository.NewAvailabilityWindowRepository()
	ratingRepo := repository.NewRatingRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	mailerService := service.NewMailerService(cfg, log)
	completionService := service.NewCompletionService(db, log, appointmentRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, clientProfileRepo, professionalProfileRepo, windowRepo, jwtService, redisClient, mailerService, auditService, cfg.Booking.ResetTokenTTL)
	clientProfileUsecase := usecase.NewClientProfileUsecase(db, log, userRepo, clientProfileRepo, auditService)
	professionalProfileUsecase := usecase.NewProfessionalProfileUsecase(db, log, userRepo, professionalProfileRepo, windowRepo, ratingRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, professionalProfileRepo, windowRepo, auditService, cfg.Booking.SlotDuration)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	clientHandler := handler.NewClientProfileHandler(clientProfileUsecase, customValidator)
	professionalHandler := handler.NewProfessionalProfileHandler(professionalProfileUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, clientHandler, professionalHandler, appointmentHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, completionService
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start the appointment completion scheduler
	if err := app.CompletionService.Start(); err != nil {
		logrus.Fatalf("Failed to start completion scheduler: %v", err)
	}

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

// Close closes all connections (database, redis, scheduler)
func (app *App) Close() {
	// Stop the completion scheduler
	if app.CompletionService != nil {
		app.CompletionService.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
