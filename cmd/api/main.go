package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"forceskill/internal/adapter"
	"forceskill/internal/analyzer"
	"forceskill/internal/cache"
	"forceskill/internal/config"
	"forceskill/internal/database"
	"forceskill/internal/extractor"
	"forceskill/internal/handler"
	"forceskill/internal/logger"
	"forceskill/internal/middleware"
	"forceskill/internal/quizgen"
	"forceskill/internal/repository"
	"forceskill/internal/service"
	"forceskill/internal/storage"
)

// requestLogger logs HTTP requests with timing and status.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	model, err := quizgen.NewOpenRouterModel(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	generator := quizgen.NewGenerator(model, cfg.LLM)
	appLogger.Info("Quiz generator initialized", zap.String("model", cfg.LLM.Model))

	ctx := context.Background()
	var uploader service.Uploader
	if cfg.Storage.Bucket != "" {
		storageClient, err := storage.NewClient(ctx, cfg.Storage)
		if err != nil {
			appLogger.Fatal("Failed to create storage client", zap.Error(err))
		}
		uploader = storageClient
	} else {
		appLogger.Warn("No storage bucket configured, uploaded documents will not be retained")
	}

	// Repositories
	userRepository := repository.NewUserRepository(db)
	courseRepository := repository.NewCourseRepository(db)
	skillRepository := repository.NewSkillRepository(db)
	attemptRepository := repository.NewAttemptRepository(db)

	// Services
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	courseService := service.NewCourseService(
		courseRepository, userRepository, attemptRepository,
		extractor.NewService(nil), analyzer.Analyze, generator, uploader, cacheAdapter)
	skillService := service.NewSkillService(skillRepository, userRepository, nil)
	userService := service.NewUserService(userRepository, generator, cacheAdapter)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	courseHandler := handler.NewCourseHandler(courseService)
	skillHandler := handler.NewSkillHandler(skillService)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    50 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	apiGroup.Post("/courses", middleware.Protected(authService), courseHandler.CreateCourse)
	apiGroup.Get("/courses", middleware.Protected(authService), courseHandler.ListCourses)
	apiGroup.Get("/courses/:id/quiz", middleware.OptionalAuth(authService), courseHandler.GetQuiz)
	apiGroup.Post("/courses/:id/attempts", middleware.OptionalAuth(authService), courseHandler.SubmitAttempt)

	apiGroup.Get("/assessment", userHandler.GetAssessment)
	apiGroup.Post("/assessment", middleware.OptionalAuth(authService), userHandler.SubmitAssessment)

	apiGroup.Post("/skills", middleware.Protected(authService), skillHandler.CreateSkill)
	apiGroup.Get("/skills", middleware.Protected(authService), skillHandler.ListSkills)
	apiGroup.Post("/skills/:id/complete", middleware.Protected(authService), skillHandler.CompleteSkill)

	apiGroup.Get("/me", middleware.Protected(authService), userHandler.GetProfile)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
