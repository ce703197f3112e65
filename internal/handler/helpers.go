package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"cartoncaps/invite/internal/handler/middleware"
	jwtpkg "cartoncaps/invite/pkg/jwt"
)

// getAuthIDFromContext returns the caller's external auth identity as set
// by the JWT middleware.
func getAuthIDFromContext(c *gin.Context) (string, error) {
	claimsVal, exists := c.Get(middleware.ContextKeyUserClaims)
	if !exists {
		return "", ErrNoClaims
	}
	claims, ok := claimsVal.(*jwtpkg.Claims)
	if !ok || claims.Subject == "" {
		return "", ErrNoClaims
	}
	return claims.Subject, nil
}

var ErrNoClaims = errors.New("claims not found in context")
