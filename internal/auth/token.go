// Package auth provides bearer tokens for the remote document store. Token
// acquisition is modeled as an explicit request/response contract; callers
// get a token or an AuthError, never a callback.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"habitly/internal/config"
	apperrors "habitly/internal/errors"
)

// DefaultTokenEndpoint is the OAuth 2.0 token endpoint used for
// refresh-token exchanges.
const DefaultTokenEndpoint = "https://oauth2.googleapis.com/token"

// TokenProvider yields a bearer token for one sync operation.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticProvider returns a fixed, pre-acquired access token.
type StaticProvider struct {
	AccessToken string
}

func (p StaticProvider) Token(ctx context.Context) (string, error) {
	if p.AccessToken == "" {
		return "", &apperrors.AuthError{Reason: "no access token configured"}
	}
	return p.AccessToken, nil
}

// RefreshProvider exchanges a long-lived refresh token for access tokens,
// caching each one until shortly before it expires. A cache miss is a full
// re-acquisition; there is no other refresh protocol.
type RefreshProvider struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	Endpoint     string
	HTTPClient   *http.Client

	now    func() time.Time
	token  string
	expiry time.Time
}

// NewRefreshProvider builds a provider against the default token endpoint.
func NewRefreshProvider(clientID, clientSecret, refreshToken string) *RefreshProvider {
	return &RefreshProvider{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RefreshToken: refreshToken,
		Endpoint:     DefaultTokenEndpoint,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
		now:          time.Now,
	}
}

// expirySkew is subtracted from the advertised lifetime so a token is never
// handed out moments before it lapses mid-request.
const expirySkew = 30 * time.Second

type tokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int    `json:"expires_in"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (p *RefreshProvider) Token(ctx context.Context) (string, error) {
	if p.token != "" && p.now().Before(p.expiry) {
		return p.token, nil
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"client_id":     {p.ClientID},
		"client_secret": {p.ClientSecret},
		"refresh_token": {p.RefreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &apperrors.AuthError{Reason: "building token request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", &apperrors.AuthError{Reason: "token endpoint unreachable", Err: err}
	}
	defer res.Body.Close()

	var tr tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tr); err != nil {
		return "", &apperrors.AuthError{Reason: "decoding token response", Err: err}
	}

	if res.StatusCode != http.StatusOK || tr.Error != "" {
		reason := tr.Error
		if tr.ErrorDescription != "" {
			reason = fmt.Sprintf("%s: %s", tr.Error, tr.ErrorDescription)
		}
		if reason == "" {
			reason = fmt.Sprintf("token endpoint returned status %d", res.StatusCode)
		}
		return "", &apperrors.AuthError{Reason: reason}
	}

	if tr.AccessToken == "" {
		return "", &apperrors.AuthError{Reason: "token endpoint returned no access token"}
	}

	p.token = tr.AccessToken
	p.expiry = p.now().Add(time.Duration(tr.ExpiresIn)*time.Second - expirySkew)
	return p.token, nil
}

// FromConfig picks the provider matching the configured credentials: a
// static token wins over a refresh grant. Returns ErrNotConfigured when
// neither is present.
func FromConfig(cfg *config.Config) (TokenProvider, error) {
	if cfg.AccessToken != "" {
		return StaticProvider{AccessToken: cfg.AccessToken}, nil
	}
	if cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.RefreshToken != "" {
		return NewRefreshProvider(cfg.ClientID, cfg.ClientSecret, cfg.RefreshToken), nil
	}
	return nil, apperrors.ErrNotConfigured
}
