package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/config"
	"github.com/clubops/clubops-api/internal/infrastructure/database"
	"github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/internal/presentation/http/handler"
	"github.com/clubops/clubops-api/internal/presentation/http/routes"
	"github.com/clubops/clubops-api/pkg/oauth"
	"github.com/clubops/clubops-api/pkg/printer"
	"github.com/clubops/clubops-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	venueRepo := repository.NewVenueRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	tableRepo := repository.NewTableRepository(db)
	pricingRepo := repository.NewPricingSystemRepository(db)
	castRepo := repository.NewCastRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize AI client for board drafts, if configured
	var aiClient service.ChatCompleter
	if cfg.OpenAI.APIKey != "" {
		aiClient = openai.NewClient(cfg.OpenAI.APIKey)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager, googleOAuthService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	venueService := service.NewVenueService(venueRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	tableService := service.NewTableService(tableRepo, sessionRepo)
	pricingService := service.NewPricingService(pricingRepo)
	castService := service.NewCastService(castRepo)
	guestService := service.NewGuestService(guestRepo)
	menuService := service.NewMenuService(menuRepo)
	sessionService := service.NewSessionService(sessionRepo, orderRepo, tableRepo, pricingRepo, guestRepo, settingsRepo)
	chargeService := service.NewChargeService(sessionRepo, orderRepo, pricingRepo)
	orderService := service.NewOrderService(orderRepo, sessionRepo, menuRepo, pricingRepo, castRepo, guestRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo, castRepo, userRepo)
	reportService := service.NewReportService(orderRepo, attendanceRepo, castRepo)
	boardService := service.NewBoardService(boardRepo, aiClient, cfg.OpenAI.Model)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, sessionService, venueRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Venue:      handler.NewVenueHandler(venueService),
		Session:    handler.NewSessionHandler(sessionService, chargeService),
		Order:      handler.NewOrderHandler(orderService),
		Table:      handler.NewTableHandler(tableService),
		Pricing:    handler.NewPricingHandler(pricingService),
		Cast:       handler.NewCastHandler(castService),
		Guest:      handler.NewGuestHandler(guestService),
		Menu:       handler.NewMenuHandler(menuService),
		Settings:   handler.NewSettingsHandler(settingsService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Board:      handler.NewBoardHandler(boardService),
		Report:     handler.NewReportHandler(reportService),
		User:       handler.NewUserHandler(userService),
		Printer:    handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		VenueRepo:       venueRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
