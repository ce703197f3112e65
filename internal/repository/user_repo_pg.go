package repository

import (
	"context"

	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
)

type pgUserRepository struct {
	db *gorm.DB
}

func NewPGUserRepository(db *gorm.DB) UserRepository {
	return &pgUserRepository{db: db}
}

func (r *pgUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *pgUserRepository) GetByAuthID(ctx context.Context, authID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("ReferralCode").
		First(&user, "auth_id = ?", authID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *pgUserRepository) GetByReferralCode(ctx context.Context, code string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("ReferralCode").
		Joins("JOIN referral_codes ON referral_codes.user_id = users.id").
		Where("referral_codes.code = ?", code).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
