package repository

import (
	"context"

	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
)

type pgReferralSourceRepository struct {
	db *gorm.DB
}

func NewPGReferralSourceRepository(db *gorm.DB) ReferralSourceRepository {
	return &pgReferralSourceRepository{db: db}
}

func (r *pgReferralSourceRepository) GetByName(ctx context.Context, name string) (*model.ReferralSource, error) {
	var source model.ReferralSource
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&source).Error; err != nil {
		return nil, err
	}
	return &source, nil
}

func (r *pgReferralSourceRepository) List(ctx context.Context) ([]model.ReferralSource, error) {
	var sources []model.ReferralSource
	if err := r.db.WithContext(ctx).Order("id").Find(&sources).Error; err != nil {
		return nil, err
	}
	return sources, nil
}
