package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cartoncaps/invite/internal/config"
	"cartoncaps/invite/internal/handler/middleware"
	jwtpkg "cartoncaps/invite/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	referralHandler *ReferralHandler,
	redemptionHandler *RedemptionHandler,
	referralLinkHandler *ReferralLinkHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// All invite endpoints require an authenticated caller.
	api := r.Group("/invite/api")
	api.Use(middleware.JWTAuth(jwtManager))
	{
		api.GET("/referrals", referralHandler.List)
		api.GET("/referrals/:id", referralHandler.Get)
		api.POST("/referrals", referralHandler.Post)

		api.GET("/redemptions/:id", redemptionHandler.Get)
		api.POST("/redemptions", redemptionHandler.Post)

		api.GET("/redeemed-referrals", redemptionHandler.ListRedeemed)

		api.GET("/referral-link", referralLinkHandler.Get)
	}

	return r
}
