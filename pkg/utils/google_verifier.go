package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// SocialProfile is the identity a provider vouches for.
type SocialProfile struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Picture    string `json:"picture"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Locale     string `json:"locale"`
}

// SocialVerifier checks a provider-issued token and returns the profile it
// asserts. Implementations must bound their network calls.
type SocialVerifier interface {
	Verify(ctx context.Context, provider, token string) (*SocialProfile, error)
}

const googleTokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint.
type GoogleVerifier struct {
	client   *http.Client
	endpoint string
}

func NewGoogleVerifier() *GoogleVerifier {
	return &GoogleVerifier{
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: googleTokenInfoURL,
	}
}

func (v *GoogleVerifier) Verify(ctx context.Context, provider, token string) (*SocialProfile, error) {
	if provider != "google" {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}

	u := fmt.Sprintf("%s?id_token=%s", v.endpoint, url.QueryEscape(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokeninfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidSocialToken
	}

	var profile SocialProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("tokeninfo decode failed: %w", err)
	}
	if profile.Email == "" {
		return nil, ErrInvalidSocialToken
	}

	return &profile, nil
}
