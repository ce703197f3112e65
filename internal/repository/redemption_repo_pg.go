package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
)

type pgRedemptionRepository struct {
	db *gorm.DB
}

func NewPGRedemptionRepository(db *gorm.DB) RedemptionRepository {
	return &pgRedemptionRepository{db: db}
}

func (r *pgRedemptionRepository) Create(ctx context.Context, redemption *model.Redemption) error {
	return r.db.WithContext(ctx).Create(redemption).Error
}

func (r *pgRedemptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Redemption, error) {
	var redemption model.Redemption
	if err := r.db.WithContext(ctx).
		Preload("Redeemer").
		Preload("ReferralCode").
		Preload("ReferralSource").
		First(&redemption, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &redemption, nil
}

func (r *pgRedemptionRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]model.Redemption, error) {
	var redemptions []model.Redemption
	if err := r.db.WithContext(ctx).
		Preload("Redeemer").
		Preload("ReferralCode").
		Where("referrer_id = ?", referrerID).
		Order("redeemed_at").
		Find(&redemptions).Error; err != nil {
		return nil, err
	}
	return redemptions, nil
}
