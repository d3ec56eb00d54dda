package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-scancollect-backend/config"
	_ "go-scancollect-backend/docs" // Important for Swagger
	"go-scancollect-backend/internal/catalog"
	v1 "go-scancollect-backend/internal/delivery/http/v1"
	"go-scancollect-backend/internal/repository/postgres"
	"go-scancollect-backend/internal/usecase"
	"go-scancollect-backend/pkg/auth"
	"go-scancollect-backend/pkg/database"
	"go-scancollect-backend/pkg/logger"
	"go-scancollect-backend/pkg/redis"
	"go-scancollect-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           ScanCollect Backend API
// @version         1.0
// @description     Trading card collection backend using Clean Architecture.
// @host            localhost:8082
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting scancollect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, database.PoolOptions{
		MaxConns: int32(cfg.DBMaxConns),
		MinConns: int32(cfg.DBMinConns),
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	cardRepo := postgres.NewCardRepository(dbPool)
	achievementRepo := postgres.NewAchievementRepository(dbPool)
	collectionRepo := postgres.NewCollectionRepository(dbPool)

	// 6. Setup Upstream Catalog Clients
	pricingClient := catalog.NewPricingClient(cfg.JustTCGBaseURL, cfg.JustTCGAPIKey)
	plainClient := catalog.NewPlainClient(cfg.TCGApiBaseURL, cfg.TCGApiKey)
	orchestrator := catalog.NewOrchestrator(pricingClient, plainClient, logger.Log)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, validate)
	cardUC := usecase.NewCardUsecase(cardRepo, categoryRepo, validate)
	achievementUC := usecase.NewAchievementUsecase(achievementRepo, collectionRepo, validate)
	collectionUC := usecase.NewCollectionUsecase(collectionRepo, cardRepo, achievementUC)
	catalogUC := usecase.NewCatalogUsecase(orchestrator, pricingClient)
	healthUC := usecase.NewHealthUsecase()

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CategoryUC:    categoryUC,
		CardUC:        cardUC,
		AchievementUC: achievementUC,
		CollectionUC:  collectionUC,
		CatalogUC:     catalogUC,
		HealthUC:      healthUC,
		UserRepo:      userRepo,
		JWKSProvider:  jwksProvider,
		Config:        cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
