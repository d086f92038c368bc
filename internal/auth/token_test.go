package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitly/internal/config"
	apperrors "habitly/internal/errors"
)

func TestStaticProvider(t *testing.T) {
	assert := assert.New(t)

	tok, err := StaticProvider{AccessToken: "abc"}.Token(context.Background())
	require.NoError(t, err)
	assert.Equal("abc", tok)

	_, err = StaticProvider{}.Token(context.Background())
	var authErr *apperrors.AuthError
	assert.True(errors.As(err, &authErr))
}

func TestRefreshProviderExchangesAndCaches(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, r.ParseForm())
		assert.Equal("refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal("cid", r.PostForm.Get("client_id"))
		assert.Equal("secret", r.PostForm.Get("client_secret"))
		assert.Equal("rt", r.PostForm.Get("refresh_token"))

		json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh", "expires_in": 3600})
	}))
	defer srv.Close()

	p := NewRefreshProvider("cid", "secret", "rt")
	p.Endpoint = srv.URL

	tok, err := p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal("fresh", tok)

	// Second call hits the cache, not the endpoint.
	tok, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal("fresh", tok)
	assert.Equal(1, calls)
}

func TestRefreshProviderReacquiresAfterExpiry(t *testing.T) {
	assert := assert.New(t)

	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{"access_token": "fresh", "expires_in": 60})
	}))
	defer srv.Close()

	clock := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	p := NewRefreshProvider("cid", "secret", "rt")
	p.Endpoint = srv.URL
	p.now = func() time.Time { return clock }

	_, err := p.Token(context.Background())
	require.NoError(t, err)

	// Advance past expiry minus the skew; the provider re-exchanges.
	clock = clock.Add(2 * time.Minute)
	_, err = p.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(2, calls)
}

func TestRefreshProviderRefusal(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{
			"error":             "invalid_grant",
			"error_description": "Token has been revoked.",
		})
	}))
	defer srv.Close()

	p := NewRefreshProvider("cid", "secret", "rt")
	p.Endpoint = srv.URL

	_, err := p.Token(context.Background())
	assert.Error(err)

	var authErr *apperrors.AuthError
	assert.True(errors.As(err, &authErr))
	assert.Contains(authErr.Reason, "invalid_grant")
}

func TestFromConfig(t *testing.T) {
	assert := assert.New(t)

	p, err := FromConfig(&config.Config{AccessToken: "abc"})
	require.NoError(t, err)
	assert.IsType(StaticProvider{}, p)

	p, err = FromConfig(&config.Config{ClientID: "cid", ClientSecret: "s", RefreshToken: "rt"})
	require.NoError(t, err)
	assert.IsType(&RefreshProvider{}, p)

	_, err = FromConfig(&config.Config{})
	assert.ErrorIs(err, apperrors.ErrNotConfigured)
}
