package repository

import (
	"context"

	"cartoncaps/invite/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// GetByAuthID loads a user by external identity, with their referral
	// code preloaded when one exists.
	GetByAuthID(ctx context.Context, authID string) (*model.User, error)
	// GetByReferralCode loads the user that owns the given code value.
	GetByReferralCode(ctx context.Context, code string) (*model.User, error)
}
