package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medconnect-backend/config"
	v1 "medconnect-backend/internal/delivery/http/v1"
	"medconnect-backend/internal/repository/postgres"
	"medconnect-backend/internal/usecase"
	"medconnect-backend/pkg/auth"
	"medconnect-backend/pkg/database"
	"medconnect-backend/pkg/logger"
	"medconnect-backend/pkg/redis"
	"medconnect-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           MedConnect API
// @version         1.0
// @description     Backend for the healthcare professional network and job board.
// @host            localhost:8080
// @BasePath        /v1
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
	logger.Log.Info("Starting medconnect backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	redisClient, err := redis.NewClient(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 5. Setup Object Storage (resume uploads)
	store, err := storage.NewClient(context.Background(), storage.Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
	})
	if err != nil {
		logger.Log.Error("Failed to set up object storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	postRepo := postgres.NewPostRepository(dbPool)
	connectionRepo := postgres.NewConnectionRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	orgRepo := postgres.NewOrganizationRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
		Issuer:    cfg.Issuer,
	})
	authUC := usecase.NewAuthUsecase(userRepo, jwtService, validate)
	feedUC := usecase.NewFeedUsecase(postRepo, userRepo)
	connectionUC := usecase.NewConnectionUsecase(connectionRepo, userRepo)
	messageUC := usecase.NewMessageUsecase(messageRepo, connectionRepo, userRepo)
	orgUC := usecase.NewOrganizationUsecase(orgRepo, userRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, orgRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, orgRepo, userRepo)
	uploadUC := usecase.NewUploadUsecase(store)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		FeedUC:         feedUC,
		ConnectionUC:   connectionUC,
		MessageUC:      messageUC,
		OrganizationUC: orgUC,
		JobUC:          jobUC,
		ApplicationUC:  applicationUC,
		UploadUC:       uploadUC,
		JWTService:     jwtService,
		RedisClient:    redisClient,
		Config:         cfg,
	})

	// 9. Start Server
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
