package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
)

type pgReferralRepository struct {
	db *gorm.DB
}

func NewPGReferralRepository(db *gorm.DB) ReferralRepository {
	return &pgReferralRepository{db: db}
}

func (r *pgReferralRepository) Create(ctx context.Context, referral *model.Referral) error {
	return r.db.WithContext(ctx).Create(referral).Error
}

func (r *pgReferralRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Referral, error) {
	var referral model.Referral
	if err := r.db.WithContext(ctx).
		Preload("Referrer").
		Preload("ReferralCode").
		Preload("ReferralSource").
		First(&referral, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &referral, nil
}

func (r *pgReferralRepository) ListByReferrer(ctx context.Context, referrerID uuid.UUID) ([]model.Referral, error) {
	var referrals []model.Referral
	if err := r.db.WithContext(ctx).
		Preload("ReferralCode").
		Preload("ReferralSource").
		Where("referrer_id = ?", referrerID).
		Order("created_at").
		Find(&referrals).Error; err != nil {
		return nil, err
	}
	return referrals, nil
}
