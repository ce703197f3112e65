package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"cartoncaps/invite/internal/model"
)

func setupReferralService() (ReferralService, *mockUserRepo, *mockReferralRepo) {
	userRepo := newMockUserRepo()
	referralRepo := newMockReferralRepo()
	svc := NewReferralService(userRepo, referralRepo, newMockSourceRepo())
	return svc, userRepo, referralRepo
}

func TestReferralService_ListReferrals_UnknownCallerIsEmpty(t *testing.T) {
	svc, _, _ := setupReferralService()

	referrals, err := svc.ListReferrals(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListReferrals: %v", err)
	}
	if len(referrals) != 0 {
		t.Errorf("expected empty result, got %d referrals", len(referrals))
	}
}

func TestReferralService_AddReferral_FirstContactProvisionsUserAndCode(t *testing.T) {
	svc, userRepo, referralRepo := setupReferralService()

	id, err := svc.AddReferral(context.Background(), "u1", "ABC123", "Android")
	if err != nil {
		t.Fatalf("AddReferral: %v", err)
	}
	if id == uuid.Nil {
		t.Error("expected a referral id")
	}

	user, err := userRepo.GetByAuthID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected user to be provisioned: %v", err)
	}
	if user.ReferralCode == nil || user.ReferralCode.Code != "ABC123" {
		t.Errorf("expected provisioned code ABC123, got %+v", user.ReferralCode)
	}

	referral, err := referralRepo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("expected referral to exist: %v", err)
	}
	if referral.ReferrerID != user.ID {
		t.Error("referral not linked to the provisioned user")
	}
	if referral.ReferralCodeID != user.ReferralCode.ID {
		t.Error("referral not linked to the provisioned code")
	}
	if referral.ReferralSourceID != 1 {
		t.Errorf("source id = %d, want 1 (Android)", referral.ReferralSourceID)
	}
}

func TestReferralService_AddReferral_SourceNotFound(t *testing.T) {
	svc, _, referralRepo := setupReferralService()

	_, err := svc.AddReferral(context.Background(), "u1", "ABC123", "Netscape")
	if !errors.Is(err, ErrReferralSourceNotFound) {
		t.Fatalf("err = %v, want ErrReferralSourceNotFound", err)
	}
	if referralRepo.count() != 0 {
		t.Error("no referral should exist after a failed add")
	}
}

func TestReferralService_AddReferral_CodeMismatch(t *testing.T) {
	svc, userRepo, referralRepo := setupReferralService()
	code, _ := model.NewReferralCode("AAAAAA")
	if err := userRepo.Create(context.Background(), &model.User{AuthID: "u1", ReferralCode: code}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.AddReferral(context.Background(), "u1", "ZZZZZZ", "Android")
	if !errors.Is(err, ErrReferralCodeNotFound) {
		t.Fatalf("err = %v, want ErrReferralCodeNotFound", err)
	}
	if referralRepo.count() != 0 {
		t.Error("no referral should exist after a failed add")
	}
}

func TestReferralService_AddReferral_CallerWithoutCode(t *testing.T) {
	svc, userRepo, _ := setupReferralService()
	// A user provisioned by the redemption path has no code on file.
	if err := userRepo.Create(context.Background(), &model.User{AuthID: "u1"}); err != nil {
		t.Fatal(err)
	}

	_, err := svc.AddReferral(context.Background(), "u1", "ABC123", "Android")
	if !errors.Is(err, ErrReferralCodeNotFound) {
		t.Fatalf("err = %v, want ErrReferralCodeNotFound", err)
	}
}

func TestReferralService_AddReferral_InvalidCodeBeforeAnyIO(t *testing.T) {
	svc, userRepo, referralRepo := setupReferralService()

	_, err := svc.AddReferral(context.Background(), "u1", "bad!", "Android")
	if !errors.Is(err, model.ErrInvalidReferralCode) {
		t.Fatalf("err = %v, want ErrInvalidReferralCode", err)
	}
	if userRepo.userCount() != 0 {
		t.Error("validation failure must not provision a user")
	}
	if referralRepo.count() != 0 {
		t.Error("validation failure must not create a referral")
	}
}

func TestReferralService_AddReferral_PersistenceFailurePropagates(t *testing.T) {
	svc, _, referralRepo := setupReferralService()
	boom := errors.New("connection reset")
	referralRepo.createErr = boom

	_, err := svc.AddReferral(context.Background(), "u1", "ABC123", "Android")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
}

func TestReferralService_GetReferral_NotFound(t *testing.T) {
	svc, _, _ := setupReferralService()

	_, err := svc.GetReferral(context.Background(), uuid.New())
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("err = %v, want ErrResourceNotFound", err)
	}
}

func TestReferralService_ListReferrals_ReturnsOwnOnly(t *testing.T) {
	svc, userRepo, referralRepo := setupReferralService()
	codeA, _ := model.NewReferralCode("AAAAAA")
	userA := &model.User{AuthID: "a", ReferralCode: codeA}
	codeB, _ := model.NewReferralCode("BBBBBB")
	userB := &model.User{AuthID: "b", ReferralCode: codeB}
	for _, u := range []*model.User{userA, userB} {
		if err := userRepo.Create(context.Background(), u); err != nil {
			t.Fatal(err)
		}
	}
	for _, r := range []*model.Referral{
		{ReferrerID: userA.ID, ReferralCodeID: codeA.ID, ReferralSourceID: 1},
		{ReferrerID: userB.ID, ReferralCodeID: codeB.ID, ReferralSourceID: 2},
	} {
		if err := referralRepo.Create(context.Background(), r); err != nil {
			t.Fatal(err)
		}
	}

	referrals, err := svc.ListReferrals(context.Background(), "a")
	if err != nil {
		t.Fatalf("ListReferrals: %v", err)
	}
	if len(referrals) != 1 || referrals[0].ReferrerID != userA.ID {
		t.Errorf("expected exactly user a's referral, got %+v", referrals)
	}
}
