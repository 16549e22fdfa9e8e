package app

import (
	"fmt"

	"careero_backend/database"
	"careero_backend/internal/ai"
	"careero_backend/internal/config"
	"careero_backend/internal/email"
	"careero_backend/internal/handlers"
	"careero_backend/internal/logger"
	"careero_backend/internal/middleware"
	"careero_backend/internal/repositories"
	"careero_backend/internal/routes"
	"careero_backend/internal/services"
	"careero_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Session.Secret == "" {
		logger.Fatal("SESSION_SECRET is not configured; refusing to issue unsigned sessions")
	}

	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to migrate schema", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full gin engine from configuration and a DB
// handle. Tests call this directly against httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer, userRepo := initializeServices(cfg)
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	ginRouter := gin.New()
	ginRouter.Use(middleware.RecoveryMiddleware())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	authMW := middleware.AuthMiddleware(userRepo)
	routes.RegisterRoutes(ginRouter, appHandlers, authMW)

	return ginRouter
}

func initializeServices(cfg *config.Config) (*services.ServiceContainer, repositories.UserRepository) {
	userRepo := repositories.NewUserRepository()
	applicationRepo := repositories.NewApplicationRepository()
	profileRepo := repositories.NewProfileRepository()

	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewSMTPProvider(email.Config{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromEmail:    cfg.Email.FromEmail,
			FromName:     cfg.Email.FromName,
		})
	} else {
		logger.Warn("SMTP not configured, welcome emails disabled")
		emailProvider = &email.NoopProvider{}
	}

	aiClient := ai.NewOpenAIClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, emailProvider),
		ApplicationService: services.NewApplicationService(applicationRepo),
		ProfileService:     services.NewProfileService(profileRepo),
		GenerationService:  services.NewGenerationService(applicationRepo, profileRepo, aiClient),
	}, userRepo
}
