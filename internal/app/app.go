package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"kirismor_backend/database"
	"kirismor_backend/internal/auth"
	"kirismor_backend/internal/config"
	"kirismor_backend/internal/email"
	"kirismor_backend/internal/handlers"
	"kirismor_backend/internal/logger"
	"kirismor_backend/internal/middleware"
	"kirismor_backend/internal/models"
	"kirismor_backend/internal/repositories"
	"kirismor_backend/internal/routes"
	"kirismor_backend/internal/services"
	"kirismor_backend/internal/validator"
	"kirismor_backend/internal/workers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Configure(cfg.JWT.Secret, cfg.JWT.TTL)

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
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reaper := workers.NewTokenReaper(
		gormDB,
		repositories.NewUserRepository(),
		repositories.NewFeedbackRepository(),
		repositories.NewRefreshTokenRepository(),
		cfg,
	)
	reaper.Start(ctx)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := InitializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// InitializeServices wires repositories into services. Services are
// stateless; the database handle arrives per call from the handlers.
func InitializeServices(cfg *config.Config) *services.ServiceContainer {
	emailProvider := newEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	favoriteRepo := repositories.NewFavoriteRepository()
	feedbackRepo := repositories.NewFeedbackRepository()
	requestRepo := repositories.NewRequestRepository()
	taskRepo := repositories.NewTaskRepository()
	newsRepo := repositories.NewNewsRepository()

	authService := services.NewAuthService(userRepo, profileRepo, refreshTokenRepo, emailProvider, cfg)
	userService := services.NewUserService(userRepo, profileRepo)
	profileService := services.NewProfileService(userRepo, profileRepo, favoriteRepo)
	jobService := services.NewJobService(jobRepo, favoriteRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobRepo)
	favoriteService := services.NewFavoriteService(favoriteRepo, jobRepo, profileRepo)
	feedbackService := services.NewFeedbackService(feedbackRepo, jobRepo, emailProvider, cfg)
	requestService := services.NewRequestService(requestRepo, profileRepo)
	taskService := services.NewTaskService(taskRepo, profileRepo)
	newsService := services.NewNewsService(newsRepo)
	dashboardService := services.NewDashboardService(
		userRepo,
		jobService,
		applicationService,
		favoriteService,
		requestService,
		taskService,
		newsService,
	)

	return &services.ServiceContainer{
		AuthService:        authService,
		UserService:        userService,
		ProfileService:     profileService,
		JobService:         jobService,
		ApplicationService: applicationService,
		FavoriteService:    favoriteService,
		FeedbackService:    feedbackService,
		RequestService:     requestService,
		TaskService:        taskService,
		NewsService:        newsService,
		DashboardService:   dashboardService,
		EmailProvider:      emailProvider,
	}
}

// newEmailProvider builds the SMTP provider, falling back to the mock
// when no SMTP host is configured so local runs work without a relay.
func newEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, emails will be logged only")
		return email.NewMockProvider()
	}

	renderer := email.NewTemplateManager()
	if err := renderer.LoadTemplates(cfg.Email.TemplatesDir); err != nil {
		logger.Warn("Failed to load email templates, using built-ins", "error", err)
	}

	provider, err := email.NewSMTPProvider(cfg, renderer)
	if err != nil {
		logger.Warn("SMTP provider misconfigured, emails will be logged only", "error", err)
		return email.NewMockProvider()
	}
	return provider
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:      handlers.NewUserHandler(baseHandler, container.UserService),
		ProfileHandler:   handlers.NewProfileHandler(baseHandler, container.ProfileService),
		JobHandler:       handlers.NewJobHandler(baseHandler, container.JobService, container.ApplicationService),
		FavoriteHandler:  handlers.NewFavoriteHandler(baseHandler, container.FavoriteService),
		FeedbackHandler:  handlers.NewFeedbackHandler(baseHandler, container.FeedbackService),
		RequestHandler:   handlers.NewRequestHandler(baseHandler, container.RequestService),
		TaskHandler:      handlers.NewTaskHandler(baseHandler, container.TaskService),
		NewsHandler:      handlers.NewNewsHandler(baseHandler, container.NewsService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, container.DashboardService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

// seedFirstAdmin creates the initial staff account from the environment.
// Idempotent; an existing account with the same email is left untouched.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := strings.ToLower(strings.TrimSpace(cfg.FirstAdminEmail))
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set, skipping admin seeding")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		result := tx.Where("email = ?", adminEmail).First(&existing)
		if result.Error == nil {
			logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", result.Error)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &models.User{
			Email:        adminEmail,
			PasswordHash: string(hashedPassword),
			Role:         models.UserRoleClient,
			Status:       models.UserStatusActive,
			IsVerified:   true,
			IsStaff:      true,
			IsSuperuser:  true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		profile := &models.ClientProfile{
			UserID:      admin.ID,
			CompanyName: "Platform Administration",
		}
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to create admin profile: %w", err)
		}

		logger.Info("Created first admin user", "email", adminEmail)
		return nil
	})
}
