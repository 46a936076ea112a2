package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-doc-sync/internal/utils"
)

// TokenAuth derives the sign-in state from the bearer token of the current
// user. The token is never verified locally; it only has to parse and must
// not be expired.
type TokenAuth struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

// NewTokenAuth returns a TokenAuth holding token. An empty token means
// signed out.
func NewTokenAuth(token string) *TokenAuth {
	a := &TokenAuth{now: time.Now}
	if token != "" {
		// an unparsable token leaves the user signed out
		_ = a.SetToken(token)
	}
	return a
}

// SetToken replaces the current token. value may carry the "Bearer "
// scheme. An empty value signs the user out.
func (a *TokenAuth) SetToken(value string) error {
	if value == "" {
		a.mu.Lock()
		a.token = ""
		a.mu.Unlock()
		return nil
	}

	token, err := utils.ParseBearerToken(value)
	if err != nil {
		return fmt.Errorf("set token: %w", err)
	}

	a.mu.Lock()
	a.token = token
	a.mu.Unlock()
	return nil
}

// Token returns the raw bearer token, or "" when signed out.
func (a *TokenAuth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *TokenAuth) IsSignedIn() bool {
	claims, ok := a.claims()
	return ok && !claims.Expired(a.now())
}

func (a *TokenAuth) CurrentUserID() string {
	claims, ok := a.claims()
	if !ok || claims.Expired(a.now()) {
		return ""
	}
	return claims.Subject
}

func (a *TokenAuth) claims() (utils.TokenClaims, bool) {
	token := a.Token()
	if token == "" {
		return utils.TokenClaims{}, false
	}

	claims, err := utils.ParseUnverifiedClaims(token)
	if err != nil {
		return utils.TokenClaims{}, false
	}
	return claims, true
}

type staticAuth struct {
	userID string
}

// NewStaticAuth returns an [Auth] that is always signed in as userID.
func NewStaticAuth(userID string) Auth {
	return staticAuth{userID: userID}
}

func (s staticAuth) IsSignedIn() bool      { return true }
func (s staticAuth) CurrentUserID() string { return s.userID }
