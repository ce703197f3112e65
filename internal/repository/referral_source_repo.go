package repository

import (
	"context"

	"cartoncaps/invite/internal/model"
)

type ReferralSourceRepository interface {
	GetByName(ctx context.Context, name string) (*model.ReferralSource, error)
	List(ctx context.Context) ([]model.ReferralSource, error)
}
