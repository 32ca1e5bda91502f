package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techgpt/techgpt-api/internal/config"
	"github.com/techgpt/techgpt-api/internal/domain/enum"
	domainRepo "github.com/techgpt/techgpt-api/internal/domain/repository"
	"github.com/techgpt/techgpt-api/internal/presentation/http/handler"
	"github.com/techgpt/techgpt-api/internal/presentation/http/middleware"
	"github.com/techgpt/techgpt-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Customer     *handler.CustomerHandler
	Provider     *handler.ProviderHandler
	Job          *handler.JobHandler
	Ticket       *handler.TicketHandler
	Booking      *handler.BookingHandler
	Notification *handler.NotificationHandler
	Admin        *handler.AdminHandler
	Overview     *handler.OverviewHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/google", h.Auth.GoogleLogin)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Account routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/profile", h.Auth.UpdateProfile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Customer role views
	customer := protected.Group("/customer")
	customer.Use(middleware.RequireUserType(enum.UserTypeCustomer, enum.UserTypeAdmin))
	{
		customer.GET("/profile", h.Customer.GetProfile)
		customer.GET("/jobs", h.Customer.ListJobs)
		customer.GET("/tickets", h.Customer.ListTickets)
	}

	// Provider role views
	provider := protected.Group("/service-provider")
	provider.Use(middleware.RequireUserType(enum.UserTypeServiceProvider, enum.UserTypeAdmin))
	{
		provider.GET("/profile", h.Provider.GetProfile)
		provider.PUT("/profile", h.Provider.UpdateProfile)
		provider.GET("/jobs", h.Provider.ListJobs)
		provider.GET("/earnings", h.Provider.GetEarnings)
	}

	// Provider marketplace listing, visible to every role
	protected.GET("/providers", h.Provider.ListAvailable)

	registerJobRoutes(protected, h)
	registerTicketRoutes(protected, h, deps)
	registerBookingRoutes(protected, h)
	registerNotificationRoutes(protected, h, deps)
	registerAdminRoutes(protected, h)

	// Cross-role overview
	protected.GET("/overview", h.Overview.Get)
	protected.POST("/overview/refresh", h.Overview.Refresh)
}

func registerJobRoutes(protected *gin.RouterGroup, h *Handlers) {
	jobs := protected.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.POST("", middleware.RequireUserType(enum.UserTypeCustomer), h.Job.Create)
		jobs.GET("/:id", h.Job.Get)
		jobs.POST("/:id/assign", middleware.RequireUserType(enum.UserTypeAdmin, enum.UserTypeServiceProvider), h.Job.AssignProvider)
		jobs.PATCH("/:id/status", h.Job.UpdateStatus)
		jobs.POST("/:id/complete", middleware.RequireUserType(enum.UserTypeServiceProvider), h.Job.Complete)
		jobs.GET("/:id/receipt", h.Job.GetReceipt)
		jobs.GET("/:id/receipt/text", h.Job.GetReceiptText)
		jobs.POST("/:id/receipt/send", h.Job.SendReceipt)
	}
}

func registerTicketRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	tickets := protected.Group("/tickets")
	{
		tickets.GET("", h.Ticket.List)
		// Ticket creation uses idempotency middleware to prevent duplicates
		tickets.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Ticket.Create)
		tickets.GET("/:id", h.Ticket.Get)
		tickets.PATCH("/:id", middleware.RequireUserType(enum.UserTypeAdmin), h.Ticket.Update)
	}
}

func registerBookingRoutes(protected *gin.RouterGroup, h *Handlers) {
	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.Booking.List)
		bookings.POST("", middleware.RequireUserType(enum.UserTypeCustomer), h.Booking.Create)
		bookings.PATCH("/:id/status", h.Booking.UpdateStatus)
	}
}

func registerNotificationRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	notifications := protected.Group("/notifications")
	{
		notifications.GET("", h.Notification.List)
		notifications.POST("/send", middleware.Idempotency(deps.IdempotencyRepo), h.Notification.Send)
		notifications.POST("/:id/read", h.Notification.MarkRead)
	}

	protected.GET("/system-messages", h.Notification.ListSystemMessages)
	protected.POST("/system-messages", middleware.RequireUserType(enum.UserTypeAdmin), h.Notification.BroadcastSystemMessage)
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireUserType(enum.UserTypeAdmin))
	{
		admin.GET("/platform-stats", h.Admin.PlatformStats)
		admin.GET("/system-metrics", h.Admin.SystemMetrics)
		admin.GET("/users", h.Admin.ListUsers)
	}
}
