package app

import (
	"context"
	"errors"
	"fmt"

	"elgrace_backend/internal/auth"
	"elgrace_backend/internal/config"
	"elgrace_backend/internal/email"
	"elgrace_backend/internal/handlers"
	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/middleware"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/routes"
	"elgrace_backend/internal/services"
	"elgrace_backend/internal/storage"
	"elgrace_backend/internal/validator"
	"elgrace_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.SetSecret(cfg.JWT.Secret)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	workers.NewDeadlineWorker(repositories.NewCastingRepository(gormDB)).Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	var mailer email.Provider
	if cfg.Email.Host != "" {
		mailer = email.NewGomailProvider(cfg.Email)
	} else {
		logger.Warn("SMTP not configured, using mock email provider")
		mailer = &MockEmailProvider{}
	}

	serviceContainer := services.NewServiceContainer(gormDB, cfg, store, mailer)
	appHandlers := handlers.NewAppHandlers(serviceContainer, store, validator.New())

	router := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(router, appHandlers)
	return router
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.MediaItem{},
		&models.Casting{},
		&models.CastingApplication{},
		&models.BookingRequest{},
		&models.ModelCodeCounter{},
	); err != nil {
		return err
	}

	// Counter starts so that the first allocated code is M-1000001.
	return repositories.NewModelCodeRepository(db).Seed(1000001)
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("First admin credentials not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		FullName:     "Administrator",
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusActive,
		IsVerified:   true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
