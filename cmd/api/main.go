package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"github.com/trivialab/trivia-api/internal/config"
	"github.com/trivialab/trivia-api/internal/domain/repository"
	"github.com/trivialab/trivia-api/internal/handler"
	"github.com/trivialab/trivia-api/internal/middleware"
	pgRepo "github.com/trivialab/trivia-api/internal/repository/postgres"
	redisRepo "github.com/trivialab/trivia-api/internal/repository/redis"
	"github.com/trivialab/trivia-api/internal/service"
	"github.com/trivialab/trivia-api/internal/service/quizplay"
	"github.com/trivialab/trivia-api/pkg/database"
	"github.com/trivialab/trivia-api/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to configure logger")
	}
	log.WithField("config_path", configPath).Info("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		log.WithError(err).Fatal("Failed to get sql.DB")
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := database.MigrateDB(db, cfg.Database.MigrationsPath, log); err != nil {
			log.WithError(err).Fatal("Failed to migrate database")
		}
	}

	// Redis необязателен: без него кеш категорий отключён, лимиты не применяются
	var cacheRepo repository.CacheRepository = redisRepo.NoopCache{}
	var redisClient redis.UniversalClient
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisClient.Close()

		cacheRepo, err = redisRepo.NewCacheRepo(redisClient)
		if err != nil {
			log.WithError(err).Fatal("Failed to create cache repository")
		}
	} else {
		log.Warn("Redis is not configured: category cache and rate limiting are disabled")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, cfg.Cache.CategoriesTTL, log)
	questionService := service.NewQuestionService(questionRepo, categoryService, cfg.Pagination.PageSize, log)
	quizService := service.NewQuizService(questionRepo, categoryService, quizplay.NewPicker(), log)

	// Инициализируем обработчики
	handlers := handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, questionService, log),
		Question: handler.NewQuestionHandler(questionService, log),
		Quiz:     handler.NewQuizHandler(quizService, log),
	}
	healthHandler := handler.NewHealthHandler(sqlDB, cacheRepo, log)

	var writeLimit gin.HandlerFunc
	if redisClient != nil && cfg.RateLimit.Enabled {
		rateLimiter := middleware.NewRateLimiter(redisClient, log)
		writeLimit = rateLimiter.Limit(middleware.WriteRateLimitConfig(cfg.RateLimit))
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		middleware.Recovery(log),
	)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	if len(corsConfig.AllowOrigins) == 0 || corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	router.Use(cors.New(corsConfig))

	router.NoRoute(handler.NoRoute)
	router.NoMethod(handler.NoMethod)

	router.GET("/healthz", healthHandler.Health)
	handler.RegisterRoutes(router, handlers, writeLimit)
	handler.RegisterRoutes(router.Group("/api"), handlers, writeLimit)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
		return
	}

	log.Info("Server exited properly")
}
