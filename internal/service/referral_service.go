package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
	"cartoncaps/invite/internal/repository"
)

type ReferralService interface {
	// ListReferrals returns the caller's referrals. A caller with no user
	// record has made no referrals, so the result is empty, not an error.
	ListReferrals(ctx context.Context, authID string) ([]model.Referral, error)
	// GetReferral returns a referral regardless of caller; the handler
	// applies the ownership check on the result.
	GetReferral(ctx context.Context, id uuid.UUID) (*model.Referral, error)
	AddReferral(ctx context.Context, authID, code, sourceName string) (uuid.UUID, error)
}

type referralService struct {
	userRepo     repository.UserRepository
	referralRepo repository.ReferralRepository
	sourceRepo   repository.ReferralSourceRepository
}

func NewReferralService(
	userRepo repository.UserRepository,
	referralRepo repository.ReferralRepository,
	sourceRepo repository.ReferralSourceRepository,
) ReferralService {
	return &referralService{
		userRepo:     userRepo,
		referralRepo: referralRepo,
		sourceRepo:   sourceRepo,
	}
}

func (s *referralService) ListReferrals(ctx context.Context, authID string) ([]model.Referral, error) {
	referrer, err := s.userRepo.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.Referral{}, nil
		}
		return nil, fmt.Errorf("failed to find referrer: %w", err)
	}
	return s.referralRepo.ListByReferrer(ctx, referrer.ID)
}

func (s *referralService) GetReferral(ctx context.Context, id uuid.UUID) (*model.Referral, error) {
	referral, err := s.referralRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find referral: %w", err)
	}
	return referral, nil
}

func (s *referralService) AddReferral(ctx context.Context, authID, code, sourceName string) (uuid.UUID, error) {
	// Validate before touching the store so a doomed request creates nothing.
	if err := model.ValidateReferralCode(code); err != nil {
		return uuid.Nil, err
	}

	// 1. Resolve the caller, provisioning user + code on first contact.
	referrer, err := s.userRepo.GetByAuthID(ctx, authID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("failed to find referrer: %w", err)
		}
		referrer, err = s.provisionReferrer(ctx, authID, code)
		if err != nil {
			return uuid.Nil, err
		}
	}

	// 2. Resolve the source from the catalog.
	source, err := s.sourceRepo.GetByName(ctx, sourceName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrReferralSourceNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to find referral source: %w", err)
	}

	// 3. The caller declares sharing of their own code; a different code
	// on file means they cited one that is not theirs.
	if referrer.ReferralCode == nil || referrer.ReferralCode.Code != code {
		return uuid.Nil, ErrReferralCodeNotFound
	}

	// 4. Append and persist.
	referral := &model.Referral{
		ReferrerID:       referrer.ID,
		ReferralCodeID:   referrer.ReferralCode.ID,
		ReferralSourceID: source.ID,
	}
	if err := s.referralRepo.Create(ctx, referral); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create referral: %w", err)
	}
	return referral.ID, nil
}

// provisionReferrer creates a user for a first-contact identity and
// assigns them the submitted code as their own.
func (s *referralService) provisionReferrer(ctx context.Context, authID, code string) (*model.User, error) {
	referralCode, err := model.NewReferralCode(code)
	if err != nil {
		return nil, err
	}
	referrer := &model.User{
		AuthID:       authID,
		ReferralCode: referralCode,
	}
	if err := s.userRepo.Create(ctx, referrer); err != nil {
		return nil, fmt.Errorf("failed to create referrer: %w", err)
	}
	return referrer, nil
}

var _ ReferralService = (*referralService)(nil)
