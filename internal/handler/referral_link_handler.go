package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cartoncaps/invite/internal/repository"
	"cartoncaps/invite/internal/service"
	"cartoncaps/invite/pkg/response"
)

// ReferralLinkHandler builds shareable signup links carrying the caller's
// referral code, looked up from their external profile.
type ReferralLinkHandler struct {
	profileClient  service.ProfileClient
	sourceRepo     repository.ReferralSourceRepository
	signupLinkBase string
}

func NewReferralLinkHandler(
	profileClient service.ProfileClient,
	sourceRepo repository.ReferralSourceRepository,
	signupLinkBase string,
) *ReferralLinkHandler {
	return &ReferralLinkHandler{
		profileClient:  profileClient,
		sourceRepo:     sourceRepo,
		signupLinkBase: signupLinkBase,
	}
}

// Get returns the caller's referral link for a given source.
func (h *ReferralLinkHandler) Get(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	sourceName := c.Query("source")
	if sourceName == "" {
		response.BadRequest(c, "source is required")
		return
	}
	if _, err := h.sourceRepo.GetByName(c.Request.Context(), sourceName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.BadRequest(c, "referral source not found")
			return
		}
		response.InternalError(c, "failed to resolve referral source")
		return
	}

	profile, err := h.profileClient.GetProfile(c.Request.Context(), authID)
	if err != nil {
		response.InternalError(c, "profile lookup failed")
		return
	}

	link := fmt.Sprintf("%s?referral_code=%s", h.signupLinkBase, profile.ReferralCode)
	response.Success(c, gin.H{"referral_link": link})
}
