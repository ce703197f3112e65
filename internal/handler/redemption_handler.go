package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cartoncaps/invite/internal/model"
	"cartoncaps/invite/internal/service"
	"cartoncaps/invite/pkg/response"
)

type RedemptionHandler struct {
	redemptionService service.RedemptionService
}

func NewRedemptionHandler(redemptionService service.RedemptionService) *RedemptionHandler {
	return &RedemptionHandler{redemptionService: redemptionService}
}

type RedemptionRequest struct {
	ReferralCode   string `json:"referral_code" binding:"required,len=6,alphanum"`
	ReferralSource string `json:"referral_source" binding:"required"`
}

type RedemptionResponse struct {
	ID             uuid.UUID `json:"id"`
	ReferralCode   string    `json:"referral_code"`
	ReferralSource string    `json:"referral_source"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

func redemptionResponseFromModel(redemption *model.Redemption) RedemptionResponse {
	resp := RedemptionResponse{
		ID:         redemption.ID,
		RedeemedAt: redemption.RedeemedAt,
	}
	if redemption.ReferralCode != nil {
		resp.ReferralCode = redemption.ReferralCode.Code
	}
	if redemption.ReferralSource != nil {
		resp.ReferralSource = redemption.ReferralSource.Name
	}
	return resp
}

// Get returns a redemption to its redeemer; anyone else sees not-found.
func (h *RedemptionHandler) Get(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid redemption id")
		return
	}

	redemption, err := h.redemptionService.GetRedemption(c.Request.Context(), id, authID)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			response.NotFound(c, "redemption not found")
			return
		}
		response.InternalError(c, "failed to get redemption")
		return
	}
	response.Success(c, redemptionResponseFromModel(redemption))
}

// Post redeems another user's code for the caller.
func (h *RedemptionHandler) Post(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req RedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id, err := h.redemptionService.AddRedemption(c.Request.Context(), authID, req.ReferralCode, req.ReferralSource)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidReferralCode):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrReferralCodeNotFound):
			response.BadRequest(c, "referral code not found")
		case errors.Is(err, service.ErrReferralSourceNotFound):
			response.BadRequest(c, "referral source not found")
		case errors.Is(err, service.ErrDuplicateRedemption):
			response.Conflict(c, "code already redeemed")
		default:
			response.InternalError(c, "failed to create redemption")
		}
		return
	}
	response.Created(c, gin.H{"id": id})
}

// ListRedeemed returns redemptions of the caller's own code, enriched
// with each redeemer's display profile.
func (h *RedemptionHandler) ListRedeemed(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	redeemed, err := h.redemptionService.ListRedeemedReferrals(c.Request.Context(), authID)
	if err != nil {
		if errors.Is(err, service.ErrProfileUnavailable) {
			response.InternalError(c, "profile lookup failed")
			return
		}
		response.InternalError(c, "failed to list redeemed referrals")
		return
	}
	response.Success(c, redeemed)
}
