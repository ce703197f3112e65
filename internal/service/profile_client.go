package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"cartoncaps/invite/internal/config"
)

// UserProfile is the display profile the external profile-management
// service keeps for an identity.
type UserProfile struct {
	AuthID       string `json:"authId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ReferralCode string `json:"referralCode"`
}

type ProfileClient interface {
	GetProfile(ctx context.Context, authID string) (*UserProfile, error)
}

type httpProfileClient struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProfileClient(cfg config.ProfileConfig) (ProfileClient, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("profile base_url is required")
	}
	return &httpProfileClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *httpProfileClient) GetProfile(ctx context.Context, authID string) (*UserProfile, error) {
	endpoint := c.baseURL + "/profiles/" + url.PathEscape(authID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrProfileUnavailable, resp.StatusCode)
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileUnavailable, err)
	}
	return &profile, nil
}
