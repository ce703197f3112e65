package repository

import (
	"context"

	"github.com/google/uuid"

	"cartoncaps/invite/internal/model"
)

type ReferralRepository interface {
	Create(ctx context.Context, referral *model.Referral) error
	// GetByID loads a referral with its referrer, code, and source, so the
	// caller can run the ownership check without another round trip.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Referral, error)
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]model.Referral, error)
}
