// Package auth holds the credential abstractions used by the HTTP layer.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/bluewater-io/docean/v2/internal/constants"
	"github.com/bluewater-io/docean/v2/pkg/docean"
)

// TokenManager provides bearer tokens to the HTTP client. Implementations
// must be safe for concurrent use.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// StaticTokenManager holds a personal access token fixed at construction.
type StaticTokenManager struct {
	mutex sync.RWMutex
	token string
}

// NewStaticTokenManager creates a token manager for a fixed bearer token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the stored token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.token, nil
}

// RefreshToken fails: a personal access token has nothing to refresh against.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return docean.ErrStaticTokenNoRefresh
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = token
}

// TokenSourceManager adapts an oauth2.TokenSource to the TokenManager
// interface, caching the current token until shortly before it expires.
type TokenSourceManager struct {
	mutex     sync.Mutex
	source    oauth2.TokenSource
	token     string
	expiresAt time.Time
}

// NewTokenSourceManager creates a token manager backed by an
// oauth2.TokenSource.
func NewTokenSourceManager(source oauth2.TokenSource) *TokenSourceManager {
	return &TokenSourceManager{source: source}
}

// GetToken returns a valid access token, fetching a fresh one when the
// cached token is absent or about to expire.
func (m *TokenSourceManager) GetToken(ctx context.Context) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.token != "" && (m.expiresAt.IsZero() || time.Until(m.expiresAt) > constants.TokenExpirationBuffer) {
		return m.token, nil
	}

	token, err := m.source.Token()
	if err != nil {
		return "", fmt.Errorf("fetching token from source: %w", err)
	}

	m.token = token.AccessToken
	m.expiresAt = token.Expiry

	return m.token, nil
}

// RefreshToken drops the cached token so the next GetToken fetches a fresh
// one from the source.
func (m *TokenSourceManager) RefreshToken(ctx context.Context) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = ""
	m.expiresAt = time.Time{}

	return nil
}

// SetToken overrides the cached token.
func (m *TokenSourceManager) SetToken(token string, expiresAt time.Time) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.token = token
	m.expiresAt = expiresAt
}
