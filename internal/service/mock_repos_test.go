package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"cartoncaps/invite/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*model.User
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.ReferralCode != nil {
		if user.ReferralCode.ID == uuid.Nil {
			user.ReferralCode.ID = uuid.New()
		}
		user.ReferralCode.UserID = user.ID
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByAuthID(_ context.Context, authID string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.AuthID == authID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByReferralCode(_ context.Context, code string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ReferralCode != nil && u.ReferralCode.Code == code {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) userCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

// ── Mock ReferralRepository ──

type mockReferralRepo struct {
	mu        sync.Mutex
	referrals map[uuid.UUID]*model.Referral
	createErr error
}

func newMockReferralRepo() *mockReferralRepo {
	return &mockReferralRepo{referrals: make(map[uuid.UUID]*model.Referral)}
}

func (m *mockReferralRepo) Create(_ context.Context, referral *model.Referral) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	if referral.ID == uuid.Nil {
		referral.ID = uuid.New()
	}
	m.referrals[referral.ID] = referral
	return nil
}

func (m *mockReferralRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Referral, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.referrals[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReferralRepo) ListByReferrer(_ context.Context, referrerID uuid.UUID) ([]model.Referral, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Referral
	for _, r := range m.referrals {
		if r.ReferrerID == referrerID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReferralRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.referrals)
}

// ── Mock RedemptionRepository ──

// mockRedemptionRepo enforces the (redeemer, code) unique index the way
// the real store does: atomically at insert, returning the driver's
// constraint error. Reads attach the redeemer the way the pg repo's
// preloads do.
type mockRedemptionRepo struct {
	mu          sync.Mutex
	redemptions map[uuid.UUID]*model.Redemption
	unique      map[string]bool
	users       *mockUserRepo
	createErr   error
}

func newMockRedemptionRepo(users *mockUserRepo) *mockRedemptionRepo {
	return &mockRedemptionRepo{
		redemptions: make(map[uuid.UUID]*model.Redemption),
		unique:      make(map[string]bool),
		users:       users,
	}
}

func (m *mockRedemptionRepo) attachRedeemer(r *model.Redemption) {
	if r.Redeemer != nil || m.users == nil {
		return
	}
	m.users.mu.Lock()
	defer m.users.mu.Unlock()
	if u, ok := m.users.users[r.RedeemerID]; ok {
		r.Redeemer = u
	}
}

func (m *mockRedemptionRepo) Create(_ context.Context, redemption *model.Redemption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	key := redemption.RedeemerID.String() + "|" + redemption.ReferralCodeID.String()
	if m.unique[key] {
		return &pgconn.PgError{Code: "23505", ConstraintName: model.RedemptionUniqueIndex}
	}
	m.unique[key] = true
	if redemption.ID == uuid.Nil {
		redemption.ID = uuid.New()
	}
	if redemption.RedeemedAt.IsZero() {
		redemption.RedeemedAt = time.Now()
	}
	m.redemptions[redemption.ID] = redemption
	return nil
}

func (m *mockRedemptionRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Redemption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.redemptions[id]; ok {
		m.attachRedeemer(r)
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRedemptionRepo) ListByReferrer(_ context.Context, referrerID uuid.UUID) ([]model.Redemption, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []model.Redemption
	for _, r := range m.redemptions {
		if r.ReferrerID == referrerID {
			m.attachRedeemer(r)
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockRedemptionRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redemptions)
}

// ── Mock ReferralSourceRepository ──

type mockSourceRepo struct {
	sources map[string]*model.ReferralSource
}

func newMockSourceRepo() *mockSourceRepo {
	repo := &mockSourceRepo{sources: make(map[string]*model.ReferralSource)}
	for i, name := range []string{"Android", "iOS", "Chrome", "Edge", "Firefox"} {
		repo.sources[name] = &model.ReferralSource{ID: i + 1, Name: name}
	}
	return repo
}

func (m *mockSourceRepo) GetByName(_ context.Context, name string) (*model.ReferralSource, error) {
	if s, ok := m.sources[name]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSourceRepo) List(_ context.Context) ([]model.ReferralSource, error) {
	var result []model.ReferralSource
	for _, s := range m.sources {
		result = append(result, *s)
	}
	return result, nil
}

// ── Mock ProfileClient ──

type mockProfileClient struct {
	profiles map[string]*UserProfile
	err      error
}

func newMockProfileClient() *mockProfileClient {
	return &mockProfileClient{profiles: make(map[string]*UserProfile)}
}

func (m *mockProfileClient) GetProfile(_ context.Context, authID string) (*UserProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.profiles[authID]; ok {
		return p, nil
	}
	return nil, ErrProfileUnavailable
}
