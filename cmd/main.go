package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"cartoncaps/invite/internal/config"
	"cartoncaps/invite/internal/handler"
	"cartoncaps/invite/internal/model"
	"cartoncaps/invite/internal/repository"
	"cartoncaps/invite/internal/service"
	jwtpkg "cartoncaps/invite/pkg/jwt"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	var logger *zap.Logger
	if cfg.Log.Format == "json" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// 3. Connect to PostgreSQL
	db, err := config.NewPostgresDB(cfg.Database.Postgres)
	if err != nil {
		logger.Fatal("failed to connect to postgres", zap.Error(err))
	}

	// 4. Auto-migrate and seed the source catalog
	if cfg.Database.Postgres.AutoMigrate {
		if err := model.AutoMigrate(db); err != nil {
			logger.Fatal("failed to auto-migrate", zap.Error(err))
		}
		logger.Info("database migration completed")
	}
	if err := model.SeedReferralSources(db); err != nil {
		logger.Fatal("failed to seed referral sources", zap.Error(err))
	}

	// 5. Initialize the source catalog cache (Redis or in-memory)
	var sourceCache repository.SourceCache
	switch cfg.Cache.Backend {
	case "redis":
		redisClient, err := config.NewRedisClient(cfg.Database.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		sourceCache = repository.NewRedisSourceCache(redisClient)
		logger.Info("using Redis source cache")
	case "memory":
		sourceCache = repository.NewMemorySourceCache()
		logger.Info("using in-memory source cache")
	default:
		logger.Fatal("unknown cache backend", zap.String("backend", cfg.Cache.Backend))
	}

	// 6. Initialize repositories
	userRepo := repository.NewPGUserRepository(db)
	referralRepo := repository.NewPGReferralRepository(db)
	redemptionRepo := repository.NewPGRedemptionRepository(db)
	sourceRepo := repository.NewCachedReferralSourceRepository(
		repository.NewPGReferralSourceRepository(db), sourceCache, cfg.Cache.SourceTTL,
	)

	// 7. Initialize JWT manager
	jwtManager := jwtpkg.NewManager(cfg.JWT.SigningKey, cfg.JWT.Issuer, cfg.JWT.AccessTokenTTL)

	// 8. Initialize the profile client and services
	profileClient, err := service.NewHTTPProfileClient(cfg.Profile)
	if err != nil {
		logger.Fatal("failed to init profile client", zap.Error(err))
	}
	referralService := service.NewReferralService(userRepo, referralRepo, sourceRepo)
	redemptionService := service.NewRedemptionService(userRepo, redemptionRepo, sourceRepo, profileClient)

	// 9. Initialize handlers
	referralHandler := handler.NewReferralHandler(referralService)
	redemptionHandler := handler.NewRedemptionHandler(redemptionService)
	referralLinkHandler := handler.NewReferralLinkHandler(profileClient, sourceRepo, cfg.Invite.SignupLinkBase)

	// 10. Setup router
	router := handler.SetupRouter(cfg, logger, jwtManager, referralHandler, redemptionHandler, referralLinkHandler)

	// 11. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 12. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}
