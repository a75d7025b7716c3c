package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"prepvault/resume-analyzer/internal/config"
	"prepvault/resume-analyzer/internal/handlers"
	"prepvault/resume-analyzer/internal/logger"
	"prepvault/resume-analyzer/internal/repositories"
	"prepvault/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.Info().Str("env", cfg.Server.Env).Msg("config loaded")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	activityRepo := repositories.NewActivityRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	logger.Info().Msg("repositories initialized")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		logger.Fatal().Err(err).Msg("failed to create upload directory")
	}

	// Initialize embedding
	embedder, err := services.NewGeminiEmbedder(cfg.Gemini.APIKey, cfg.Gemini.Timeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize gemini embedder")
	}

	// The role vectors are embedded once at startup; analysis runs reuse them.
	startupCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	matcher, err := services.NewRoleMatcher(startupCtx, embedder)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to embed role catalogue")
	}
	logger.Info().Msg("role matcher initialized")

	// Initialize Qdrant role index
	roleIndex, err := services.NewRoleIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize qdrant")
	}
	if err := roleIndex.InitCollection(startupCtx); err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize qdrant collection")
	}
	if err := roleIndex.IngestCatalog(startupCtx, embedder); err != nil {
		logger.Fatal().Err(err).Msg("failed to ingest role catalogue")
	}
	logger.Info().Msg("qdrant role index ready")

	// Initialize services
	ocrClient := services.NewTikaOCRClient(cfg.Tika.URL, cfg.Tika.Timeout)
	extractor := services.NewDocumentExtractor(ocrClient)
	analyzerService := services.NewAnalyzerService(extractor, matcher, analysisRepo, activityRepo)
	authService := services.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	interviewService := services.NewInterviewService(interviewRepo, activityRepo, nil)
	studyPlanService := services.NewStudyPlanService(analysisRepo)
	dashboardService := services.NewDashboardService(analysisRepo, interviewRepo)
	logger.Info().Msg("services initialized")

	// Start inactivity notifier
	notifierService := services.NewNotifier(
		activityRepo,
		notificationRepo,
		cfg.Notifier.InactiveAfter,
		cfg.Notifier.PollInterval,
		nil,
	)
	notifierService.Start()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	resumeHandler := handlers.NewResumeHandler(analyzerService, storageService, cfg.Storage.MaxFileSize)
	roleHandler := handlers.NewRoleHandler(roleIndex, embedder)
	interviewHandler := handlers.NewInterviewHandler(interviewService)
	profileHandler := handlers.NewProfileHandler(profileRepo, studyPlanService, dashboardService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "PrepVault Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Public endpoints
	api.Post("/auth/signup", authHandler.HandleSignup)
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Get("/roles", roleHandler.HandleListRoles)

	// Authenticated endpoints
	authed := api.Group("", handlers.RequireAuth(authService))
	authed.Post("/roles/match", roleHandler.HandleMatchRole)
	authed.Post("/resume/analyze", resumeHandler.HandleAnalyze)
	authed.Get("/resume/history", resumeHandler.HandleHistory)
	authed.Get("/interview/question", interviewHandler.HandleNextQuestion)
	authed.Post("/interview/answer", interviewHandler.HandleSubmitAnswer)
	authed.Get("/profile", profileHandler.HandleGetProfile)
	authed.Put("/profile", profileHandler.HandleUpdateProfile)
	authed.Get("/profile/study-plan", profileHandler.HandleStudyPlan)
	authed.Get("/dashboard", profileHandler.HandleDashboard)
	authed.Get("/notifications", notificationHandler.HandleListNotifications)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "PrepVault Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/signup",
				"POST /api/v1/auth/login",
				"GET /api/v1/roles",
				"POST /api/v1/roles/match",
				"POST /api/v1/resume/analyze",
				"GET /api/v1/resume/history",
				"GET /api/v1/interview/question",
				"POST /api/v1/interview/answer",
				"GET /api/v1/profile",
				"PUT /api/v1/profile",
				"GET /api/v1/profile/study-plan",
				"GET /api/v1/dashboard",
				"GET /api/v1/notifications",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info().Msg("shutting down server")
		notifierService.Stop()
		if err := app.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("server forced to shutdown")
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server starting")

	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
