package repository

import (
	"context"

	"github.com/google/uuid"

	"cartoncaps/invite/internal/model"
)

type RedemptionRepository interface {
	// Create persists a redemption. A violation of the (redeemer, code)
	// unique index surfaces as the driver's constraint error, untranslated.
	Create(ctx context.Context, redemption *model.Redemption) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Redemption, error)
	// ListByReferrer returns redemptions performed against the given
	// user's code, with each redeemer preloaded for profile enrichment.
	ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]model.Redemption, error)
}
