package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/config"
	domainRepo "github.com/clubops/clubops-api/internal/domain/repository"
	"github.com/clubops/clubops-api/internal/presentation/http/handler"
	"github.com/clubops/clubops-api/internal/presentation/http/middleware"
	"github.com/clubops/clubops-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Venue      *handler.VenueHandler
	Session    *handler.SessionHandler
	Order      *handler.OrderHandler
	Table      *handler.TableHandler
	Pricing    *handler.PricingHandler
	Cast       *handler.CastHandler
	Guest      *handler.GuestHandler
	Menu       *handler.MenuHandler
	Settings   *handler.SettingsHandler
	Attendance *handler.AttendanceHandler
	Board      *handler.BoardHandler
	Report     *handler.ReportHandler
	User       *handler.UserHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	VenueRepo       domainRepo.VenueRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
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
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.VenueMiddleware(deps.VenueRepo))

		// Per-venue rate limiter
		rateLimiter := middleware.NewVenueRateLimiter(middleware.RateLimiterConfig{
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
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Venues and membership
	registerVenueRoutes(protected, h)

	// Venue-scoped routes require the X-Venue-ID header
	venue := protected.Group("")
	venue.Use(middleware.RequireVenue())

	// Billing settings
	settings := venue.Group("/settings")
	settings.Use(middleware.RequirePermission("manage-settings"))
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.UpdateSettings)
	}

	// Floor and sessions
	registerSessionRoutes(venue, h, deps)

	// Directory: tables, pricing, casts, guests, menu
	registerTableRoutes(venue, h)
	registerPricingRoutes(venue, h)
	registerCastRoutes(venue, h)
	registerGuestRoutes(venue, h)
	registerMenuRoutes(venue, h)

	// Attendance
	registerAttendanceRoutes(venue, h)

	// Bulletin board
	registerBoardRoutes(venue, h)

	// Reports
	registerReportRoutes(venue, h)

	// Printer
	registerPrinterRoutes(venue, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerVenueRoutes(protected *gin.RouterGroup, h *Handlers) {
	venues := protected.Group("/venues")
	{
		venues.GET("", h.Venue.ListMine)
		venues.POST("", h.Venue.Create)
	}

	current := protected.Group("/venues/current")
	current.Use(middleware.RequireVenue())
	{
		current.GET("", h.Venue.GetCurrent)
		current.PUT("", h.Venue.UpdateCurrent)
		current.DELETE("", h.Venue.DeleteCurrent)
		current.GET("/members", h.Venue.ListMembers)
		current.POST("/members", h.Venue.InviteMember)
		current.PUT("/members/:user_id", h.Venue.UpdateMemberRole)
		current.DELETE("/members/:user_id", h.Venue.RemoveMember)
	}
}

func registerSessionRoutes(venue *gin.RouterGroup, h *Handlers, deps *Deps) {
	venue.GET("/floor", middleware.RequirePermission("view-floor"), h.Session.Floor)

	sessions := venue.Group("/sessions")
	sessions.Use(middleware.RequirePermission("manage-sessions"))
	{
		sessions.GET("", h.Session.List)
		// Session opening uses idempotency middleware to prevent duplicates
		sessions.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Session.Open)
		sessions.GET("/:id", h.Session.GetSlip)
		sessions.PUT("/:id", h.Session.Update)
		sessions.PUT("/:id/times", h.Session.UpdateTimes)
		sessions.POST("/:id/checkout", h.Session.Checkout)
		sessions.POST("/:id/reopen", h.Session.Reopen)
		sessions.POST("/:id/recalculate", h.Session.Recalculate)
		sessions.DELETE("/:id", h.Session.Delete)

		// Roster
		sessions.POST("/:id/guests", h.Session.AddGuest)
		sessions.DELETE("/:id/guests/:guest_row_id", h.Session.RemoveGuest)

		// Slip orders
		orders := sessions.Group("/:id")
		orders.Use(middleware.RequirePermission("manage-orders"))
		{
			orders.GET("/orders", h.Order.List)
			orders.POST("/orders", middleware.Idempotency(middleware.IdempotencyConfig{
				Repo: deps.IdempotencyRepo,
			}), h.Order.AddMenuOrders)
			orders.POST("/charges", h.Order.AddCharge)
			orders.POST("/cast-fees", h.Order.AddCastFee)
			orders.PUT("/guest-fees", h.Order.SetGuestFee)
			orders.POST("/adjustments", h.Order.AddAdjustment)
		}
	}

	// Single-order operations
	orderOps := venue.Group("/orders")
	orderOps.Use(middleware.RequirePermission("manage-orders"))
	{
		orderOps.PUT("/:order_id", h.Order.Update)
		orderOps.POST("/:order_id/recalculate", h.Order.Recalculate)
		orderOps.DELETE("/:order_id", h.Order.Delete)
	}
}

func registerTableRoutes(venue *gin.RouterGroup, h *Handlers) {
	tables := venue.Group("/tables")
	tables.Use(middleware.RequirePermission("manage-tables"))
	{
		tables.GET("", h.Table.List)
		tables.POST("", h.Table.Create)
		tables.GET("/:id", h.Table.Get)
		tables.PUT("/:id", h.Table.Update)
		tables.DELETE("/:id", h.Table.Delete)
	}
}

func registerPricingRoutes(venue *gin.RouterGroup, h *Handlers) {
	pricing := venue.Group("/pricing-systems")
	pricing.Use(middleware.RequirePermission("manage-pricing"))
	{
		pricing.GET("", h.Pricing.List)
		pricing.POST("", h.Pricing.Create)
		pricing.GET("/:id", h.Pricing.Get)
		pricing.PUT("/:id", h.Pricing.Update)
		pricing.DELETE("/:id", h.Pricing.Delete)
	}
}

func registerCastRoutes(venue *gin.RouterGroup, h *Handlers) {
	casts := venue.Group("/casts")
	casts.Use(middleware.RequirePermission("manage-casts"))
	{
		casts.GET("", h.Cast.List)
		casts.POST("", h.Cast.Create)
		casts.GET("/:id", h.Cast.Get)
		casts.PUT("/:id", h.Cast.Update)
		casts.DELETE("/:id", h.Cast.Delete)
	}
}

func registerGuestRoutes(venue *gin.RouterGroup, h *Handlers) {
	guests := venue.Group("/guests")
	guests.Use(middleware.RequirePermission("manage-guests"))
	{
		guests.GET("", h.Guest.List)
		guests.POST("", h.Guest.Create)
		guests.GET("/:id", h.Guest.Get)
		guests.PUT("/:id", h.Guest.Update)
		guests.DELETE("/:id", h.Guest.Delete)
	}
}

func registerMenuRoutes(venue *gin.RouterGroup, h *Handlers) {
	menu := venue.Group("/menu")
	menu.Use(middleware.RequirePermission("manage-menu"))
	{
		menu.GET("/items", h.Menu.ListItems)
		menu.POST("/items", h.Menu.CreateItem)
		menu.GET("/items/:id", h.Menu.GetItem)
		menu.PUT("/items/:id", h.Menu.UpdateItem)
		menu.DELETE("/items/:id", h.Menu.DeleteItem)
		menu.GET("/categories", h.Menu.ListCategories)
		menu.POST("/categories", h.Menu.CreateCategory)
		menu.DELETE("/categories/:id", h.Menu.DeleteCategory)
	}
}

func registerAttendanceRoutes(venue *gin.RouterGroup, h *Handlers) {
	attendance := venue.Group("/attendance")
	attendance.Use(middleware.RequirePermission("manage-attendance"))
	{
		attendance.GET("", h.Attendance.ListByDate)
		attendance.POST("/clock-in", h.Attendance.ClockIn)
		attendance.POST("/:id/clock-out", h.Attendance.ClockOut)
		attendance.DELETE("/:id", h.Attendance.Delete)
	}
}

func registerBoardRoutes(venue *gin.RouterGroup, h *Handlers) {
	board := venue.Group("/board")
	board.Use(middleware.RequirePermission("manage-board"))
	{
		board.GET("", h.Board.List)
		board.POST("", h.Board.Create)
		board.POST("/draft", h.Board.Draft)
		board.GET("/:id", h.Board.Get)
		board.PUT("/:id", h.Board.Update)
		board.DELETE("/:id", h.Board.Delete)
	}
}

func registerReportRoutes(venue *gin.RouterGroup, h *Handlers) {
	reports := venue.Group("/reports")
	reports.Use(middleware.RequirePermission("view-reports"))
	{
		reports.GET("/payroll", h.Report.Payroll)
		reports.GET("/ranking", h.Report.Ranking)
	}
}

func registerPrinterRoutes(venue *gin.RouterGroup, h *Handlers) {
	printerGroup := venue.Group("/printer")
	printerGroup.Use(middleware.RequirePermission("manage-sessions"))
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
		printerGroup.POST("/sessions/:id", h.Printer.PrintSlip)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("/:id/roles", h.User.AssignRole)
		users.DELETE("/:id/roles", h.User.RemoveRole)
		users.DELETE("/:id", h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
