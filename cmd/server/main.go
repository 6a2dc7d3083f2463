package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	handlers "github.com/akmalhakim05/fundizen-backend-sub000/internal/adapter/handler/http"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/config"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/database"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/geo"
	httpServer "github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/http"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/identity"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/provider/stripe"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/ratelimit"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/infrastructure/storage"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/logger"
	"github.com/akmalhakim05/fundizen-backend-sub000/internal/usecase"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Info("Starting service",
		zap.String("name", cfg.Service.Name),
		zap.String("environment", cfg.Service.Environment),
		zap.String("version", cfg.Service.Version))

	db, err := database.NewConnection(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db, zlog); err != nil {
			zlog.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := database.Migrate(db, zlog); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := database.NewRepositories(db, zlog)

	payments := stripe.NewProvider(cfg.Service.StripeSecretKey, cfg.Service.StripeWebhookSecret, zlog)

	limiter, err := ratelimit.NewRedisLimiter(&cfg.Redis, cfg.Service.Name, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer limiter.Close()

	geoResolver, err := geo.NewMaxMindResolver(cfg.Service.GeoDBPath, zlog)
	if err != nil {
		zlog.Warn("Geo database unavailable, donor countries will be empty", zap.Error(err))
	}
	if geoResolver != nil {
		defer geoResolver.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	media, err := storage.NewS3Storage(ctx, &cfg.Storage, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize media storage", zap.Error(err))
	}

	verifier := identity.NewJWTVerifier(cfg.Service.JWTSecret, zlog)

	donationService := usecase.NewDonationService(
		repos.Donation,
		repos.Campaign,
		repos.Webhook,
		payments,
		limiter,
		geoResolver,
		cfg.Fraud,
		usecase.NewFeePolicy(&cfg.Service),
		zlog,
	)
	campaignService := usecase.NewCampaignService(repos.Campaign, repos.Donation, zlog)
	userService := usecase.NewUserService(repos.User, verifier, cfg.Service.JWTSecret, zlog)
	analyticsService := usecase.NewAnalyticsService(repos.Analytics, zlog)
	mediaService := usecase.NewMediaService(media, zlog)

	sweeper := usecase.NewDonationSweeper(repos.Donation, repos.Campaign, payments, cfg.Fraud, zlog)
	sweeper.Start(ctx)

	server := httpServer.NewServer(cfg, zlog, &httpServer.Services{
		Campaigns: campaignService,
		Donations: donationService,
		Users:     userService,
		Analytics: analyticsService,
		Media:     mediaService,
		Webhooks:  handlers.NewWebhookHandler(payments, donationService, zlog),
	})

	go func() {
		if err := server.Start(); err != nil {
			zlog.Info("HTTP server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("Forced shutdown", zap.Error(err))
	}

	zlog.Info("Service stopped")
}
