package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ehr-backend/config"
	deliveryHttp "ehr-backend/internal/delivery/http"
	"ehr-backend/internal/delivery/http/handler"
	"ehr-backend/internal/delivery/http/middleware"
	"ehr-backend/internal/infrastructure/cache"
	"ehr-backend/internal/infrastructure/database"
	"ehr-backend/internal/infrastructure/session"
	"ehr-backend/internal/infrastructure/storage"
	"ehr-backend/internal/repository"
	"ehr-backend/internal/service"
	"ehr-backend/internal/usecase"
	"ehr-backend/pkg/jwt"
	"ehr-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	log := NewLogger(cfg.App.LogLevel)
	app := &App{Config: cfg, Log: log}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, database.GormLogLevel(cfg.App.Env))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	// Initialize upload storage
	fileStorage, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Server = initializeServer(cfg, log, db, redisClient, fileStorage)
	return app, nil
}

// NewLogger returns the JSON logger shared by every layer. An unknown level
// falls back to info.
func NewLogger(level string) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client, fileStorage storage.FileStorage) *http.Server {
	jwtService := jwt.NewJWTService(cfg.Session)
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	visitRepo := repository.NewVisitRepository()
	documentRepo := repository.NewDocumentRepository()
	digestiveRepo := repository.NewDigestiveVisitRepository()
	ehrRepo := repository.NewEHRRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	sessionRepo := session.NewRedisSessionRepository(redisClient)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, doctorRepo, sessionRepo, jwtService, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, visitRepo, documentRepo, fileStorage, auditService)
	visitUsecase := usecase.NewVisitUsecase(db, log, patientRepo, visitRepo, documentRepo, fileStorage, auditService)
	documentUsecase := usecase.NewDocumentUsecase(db, log, visitRepo, documentRepo, fileStorage, auditService)
	digestiveUsecase := usecase.NewDigestiveUsecase(db, log, patientRepo, digestiveRepo, auditService)
	ehrRecordUsecase := usecase.NewEHRRecordUsecase(db, log, visitRepo, ehrRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessionRepo, cfg.Session, log)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, authMiddleware)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase, customValidator)
	documentHandler := handler.NewDocumentHandler(documentUsecase, cfg.Upload.MaxSize)
	digestiveHandler := handler.NewDigestiveHandler(digestiveUsecase, customValidator)
	ehrRecordHandler := handler.NewEHRRecordHandler(ehrRecordUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize router
	router := deliveryHttp.NewRouter(
		log,
		cfg.App.AllowedOrigin,
		authHandler,
		patientHandler,
		visitHandler,
		documentHandler,
		digestiveHandler,
		ehrRecordHandler,
		auditLogHandler,
		authMiddleware,
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
