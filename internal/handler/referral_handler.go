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

type ReferralHandler struct {
	referralService service.ReferralService
}

func NewReferralHandler(referralService service.ReferralService) *ReferralHandler {
	return &ReferralHandler{referralService: referralService}
}

type ReferralRequest struct {
	ReferralCode   string `json:"referral_code" binding:"required,len=6,alphanum"`
	ReferralSource string `json:"referral_source" binding:"required"`
}

type ReferralResponse struct {
	ID             uuid.UUID `json:"id"`
	ReferralCode   string    `json:"referral_code"`
	ReferralSource string    `json:"referral_source"`
	CreatedAt      time.Time `json:"created_at"`
}

func referralResponseFromModel(referral *model.Referral) ReferralResponse {
	resp := ReferralResponse{
		ID:        referral.ID,
		CreatedAt: referral.CreatedAt,
	}
	if referral.ReferralCode != nil {
		resp.ReferralCode = referral.ReferralCode.Code
	}
	if referral.ReferralSource != nil {
		resp.ReferralSource = referral.ReferralSource.Name
	}
	return resp
}

// List returns the caller's referrals.
func (h *ReferralHandler) List(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	referrals, err := h.referralService.ListReferrals(c.Request.Context(), authID)
	if err != nil {
		response.InternalError(c, "failed to list referrals")
		return
	}

	resp := make([]ReferralResponse, 0, len(referrals))
	for i := range referrals {
		resp = append(resp, referralResponseFromModel(&referrals[i]))
	}
	response.Success(c, resp)
}

// Get returns a single referral, but only to its owner. A referral owned
// by someone else looks identical to one that does not exist.
func (h *ReferralHandler) Get(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid referral id")
		return
	}

	referral, err := h.referralService.GetReferral(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			response.NotFound(c, "referral not found")
			return
		}
		response.InternalError(c, "failed to get referral")
		return
	}

	if !service.IsOwner(authID, referral) {
		response.NotFound(c, "referral not found")
		return
	}
	response.Success(c, referralResponseFromModel(referral))
}

// Post records that the caller shared their own code via a source.
func (h *ReferralHandler) Post(c *gin.Context) {
	authID, err := getAuthIDFromContext(c)
	if err != nil {
		response.Unauthorized(c, "invalid user context")
		return
	}

	var req ReferralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id, err := h.referralService.AddReferral(c.Request.Context(), authID, req.ReferralCode, req.ReferralSource)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidReferralCode):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrReferralCodeNotFound):
			response.BadRequest(c, "referral code not found")
		case errors.Is(err, service.ErrReferralSourceNotFound):
			response.BadRequest(c, "referral source not found")
		default:
			response.InternalError(c, "failed to create referral")
		}
		return
	}
	response.Created(c, gin.H{"id": id})
}
