package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cartoncaps/invite/internal/config"
)

func TestHTTPProfileClient_GetProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/profiles/u1" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"authId":"u1","firstName":"Jane","lastName":"Doe","referralCode":"JANE01"}`))
	}))
	defer srv.Close()

	client, err := NewHTTPProfileClient(config.ProfileConfig{BaseURL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewHTTPProfileClient: %v", err)
	}

	profile, err := client.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.FirstName != "Jane" || profile.LastName != "Doe" || profile.ReferralCode != "JANE01" {
		t.Errorf("unexpected profile: %+v", profile)
	}
}

func TestHTTPProfileClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client, err := NewHTTPProfileClient(config.ProfileConfig{BaseURL: srv.URL, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewHTTPProfileClient: %v", err)
	}

	_, err = client.GetProfile(context.Background(), "u1")
	if !errors.Is(err, ErrProfileUnavailable) {
		t.Fatalf("err = %v, want ErrProfileUnavailable", err)
	}
}

func TestHTTPProfileClient_RequiresBaseURL(t *testing.T) {
	if _, err := NewHTTPProfileClient(config.ProfileConfig{}); err == nil {
		t.Fatal("expected an error for a missing base URL")
	}
}
