package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/application/service"
	"github.com/techgpt/techgpt-api/internal/config"
	"github.com/techgpt/techgpt-api/internal/infrastructure/database"
	"github.com/techgpt/techgpt-api/internal/infrastructure/repository"
	"github.com/techgpt/techgpt-api/internal/presentation/http/handler"
	"github.com/techgpt/techgpt-api/internal/presentation/http/routes"
	"github.com/techgpt/techgpt-api/pkg/email"
	"github.com/techgpt/techgpt-api/pkg/oauth"
	"github.com/techgpt/techgpt-api/pkg/sms"
	"github.com/techgpt/techgpt-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		logger.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProviderProfileRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	jobRepo := repository.NewJobRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	systemMessageRepo := repository.NewSystemMessageRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize SMS gateway
	smsGateway := sms.NewGatewayFromConfig(cfg.SMS.GatewayURL, cfg.SMS.APIKey)
	if !smsGateway.IsConfigured() {
		logger.Warn("SMS gateway not configured, receipt SMS delivery disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, profileRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService, logger)
	jobService := service.NewJobService(jobRepo, userRepo, profileRepo, logger)
	receiptService := service.NewReceiptService(jobRepo, emailService, smsGateway, logger)
	ticketService := service.NewTicketService(ticketRepo, userRepo)
	bookingService := service.NewBookingService(bookingRepo, userRepo)
	notificationService := service.NewNotificationService(notificationRepo, systemMessageRepo, userRepo)
	providerService := service.NewProviderService(userRepo, profileRepo, jobRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, userRepo)
	bridgeService := service.NewBridgeService(
		userRepo, profileRepo, jobRepo, ticketRepo, notificationRepo, systemMessageRepo,
		providerService, dashboardService, notificationService, ticketService, jobService,
		logger,
	)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Customer:     handler.NewCustomerHandler(authService, jobService, ticketService),
		Provider:     handler.NewProviderHandler(providerService, jobService),
		Job:          handler.NewJobHandler(jobService, receiptService, bridgeService),
		Ticket:       handler.NewTicketHandler(ticketService, bridgeService),
		Booking:      handler.NewBookingHandler(bookingService),
		Notification: handler.NewNotificationHandler(notificationService, bridgeService),
		Admin:        handler.NewAdminHandler(dashboardService),
		Overview:     handler.NewOverviewHandler(bridgeService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          logger,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
