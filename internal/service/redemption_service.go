package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
	"cartoncaps/invite/internal/repository"
)

// pgUniqueViolation is the SQLSTATE for unique constraint violations.
const pgUniqueViolation = "23505"

// ReferralStatusComplete is the only status a recorded redemption can
// have; a redemption row exists iff the referral completed.
const ReferralStatusComplete = "complete"

// RedeemedReferral is the enriched projection of one redemption of the
// caller's code, built from the redeemer's external profile.
type RedeemedReferral struct {
	FirstName    string    `json:"first_name"`
	LastInitial  string    `json:"last_initial"`
	ReferralCode string    `json:"referral_code"`
	Status       string    `json:"referral_status"`
	RedeemedAt   time.Time `json:"redeemed_at"`
}

type RedemptionService interface {
	// GetRedemption returns the redemption only to its redeemer. Absence
	// and an ownership mismatch both come back as ErrResourceNotFound so
	// other users' redemptions are not discoverable.
	GetRedemption(ctx context.Context, id uuid.UUID, authID string) (*model.Redemption, error)
	// ListRedeemedReferrals returns redemptions of the caller's own code,
	// enriched with each redeemer's display profile. A profile lookup
	// failure fails the whole listing.
	ListRedeemedReferrals(ctx context.Context, authID string) ([]RedeemedReferral, error)
	AddRedemption(ctx context.Context, authID, code, sourceName string) (uuid.UUID, error)
}

type redemptionService struct {
	userRepo       repository.UserRepository
	redemptionRepo repository.RedemptionRepository
	sourceRepo     repository.ReferralSourceRepository
	profileClient  ProfileClient
}

func NewRedemptionService(
	userRepo repository.UserRepository,
	redemptionRepo repository.RedemptionRepository,
	sourceRepo repository.ReferralSourceRepository,
	profileClient ProfileClient,
) RedemptionService {
	return &redemptionService{
		userRepo:       userRepo,
		redemptionRepo: redemptionRepo,
		sourceRepo:     sourceRepo,
		profileClient:  profileClient,
	}
}

func (s *redemptionService) GetRedemption(ctx context.Context, id uuid.UUID, authID string) (*model.Redemption, error) {
	redemption, err := s.redemptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, fmt.Errorf("failed to find redemption: %w", err)
	}
	if !IsOwner(authID, redemption) {
		return nil, ErrResourceNotFound
	}
	return redemption, nil
}

func (s *redemptionService) ListRedeemedReferrals(ctx context.Context, authID string) ([]RedeemedReferral, error) {
	referrer, err := s.userRepo.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []RedeemedReferral{}, nil
		}
		return nil, fmt.Errorf("failed to find referrer: %w", err)
	}

	redemptions, err := s.redemptionRepo.ListByReferrer(ctx, referrer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list redemptions: %w", err)
	}

	redeemed := make([]RedeemedReferral, 0, len(redemptions))
	for _, redemption := range redemptions {
		redeemerAuthID, ok := redemption.OwnerAuthID()
		if !ok {
			return nil, fmt.Errorf("redemption %s loaded without redeemer", redemption.ID)
		}
		profile, err := s.profileClient.GetProfile(ctx, redeemerAuthID)
		if err != nil {
			return nil, err
		}
		redeemed = append(redeemed, RedeemedReferral{
			FirstName:    profile.FirstName,
			LastInitial:  lastInitial(profile.LastName),
			ReferralCode: profile.ReferralCode,
			Status:       ReferralStatusComplete,
			RedeemedAt:   redemption.RedeemedAt,
		})
	}
	return redeemed, nil
}

func (s *redemptionService) AddRedemption(ctx context.Context, authID, code, sourceName string) (uuid.UUID, error) {
	// Validate before touching the store so a doomed request creates nothing.
	if err := model.ValidateReferralCode(code); err != nil {
		return uuid.Nil, err
	}

	// 1. The submitted code must belong to someone.
	referrer, err := s.userRepo.GetByReferralCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrReferralCodeNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to find referrer by code: %w", err)
	}
	if referrer.ReferralCode == nil {
		return uuid.Nil, ErrReferralCodeNotFound
	}

	// 2. Resolve the caller as redeemer, provisioning a bare user on first
	// contact. Redeeming does not grant a code.
	redeemer, err := s.userRepo.GetByAuthID(ctx, authID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fmt.Errorf("failed to find redeemer: %w", err)
		}
		redeemer = &model.User{AuthID: authID}
		if err := s.userRepo.Create(ctx, redeemer); err != nil {
			return uuid.Nil, fmt.Errorf("failed to create redeemer: %w", err)
		}
	}

	// 3. Resolve the source from the catalog.
	source, err := s.sourceRepo.GetByName(ctx, sourceName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, ErrReferralSourceNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to find referral source: %w", err)
	}

	// 4. Append and persist. The store decides the duplicate race: only
	// the unique index can serialize two concurrent redemptions of the
	// same code by the same redeemer.
	redemption := &model.Redemption{
		RedeemerID:       redeemer.ID,
		ReferrerID:       referrer.ID,
		ReferralCodeID:   referrer.ReferralCode.ID,
		ReferralSourceID: source.ID,
	}
	if err := s.redemptionRepo.Create(ctx, redemption); err != nil {
		if isUniqueRedemptionViolation(err) {
			return uuid.Nil, ErrDuplicateRedemption
		}
		return uuid.Nil, fmt.Errorf("failed to create redemption: %w", err)
	}
	return redemption.ID, nil
}

// isUniqueRedemptionViolation matches only the (redeemer, code) unique
// index. Other constraint violations propagate untranslated.
func isUniqueRedemptionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == model.RedemptionUniqueIndex
}

func lastInitial(lastName string) string {
	if lastName == "" {
		return ""
	}
	return string([]rune(lastName)[0])
}

var _ RedemptionService = (*redemptionService)(nil)
