// Package auth holds the client-side session: the bearer credential handed
// to the API client and the identity recorded as createdBy on bookings.
// Tokens are issued elsewhere (the auth provider); this package never
// verifies signatures, it only reads claims. The backend stays the authority
// on token validity.
package auth

import (
	"fmt"
	"sync"

	"mirpur-express/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Session implements oauth2.TokenSource for the API client.
type Session struct {
	mu       sync.Mutex
	token    *oauth2.Token
	email    string
	onLogout func()
}

// NewSession wraps a raw bearer token. An empty token yields an anonymous
// session. A non-empty token must be a well-formed JWT so the submitter
// identity can be read from its claims.
func NewSession(accessToken string) (*Session, error) {
	s := &Session{token: &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}}
	if accessToken == "" {
		return s, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return nil, fmt.Errorf("auth.NewSession: parse token: %w", err)
	}
	if email, ok := claims["email"].(string); ok {
		s.email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		s.token.Expiry = exp.Time
	}
	return s, nil
}

// Token returns the current credential. After logout (or local expiry) it
// fails with ErrInvalidToken so in-flight callers stop hitting the API with
// a dead credential.
func (s *Session) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, models.ErrInvalidToken
	}
	if s.token.AccessToken != "" && !s.token.Valid() {
		return nil, models.ErrInvalidToken
	}
	return s.token, nil
}

// Email is the submitter identity, empty for anonymous sessions.
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// LoggedIn reports whether the session still carries a usable credential.
func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil && s.token.AccessToken != "" && s.token.Valid()
}

// OnLogout registers a hook fired once when the session ends.
func (s *Session) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLogout = fn
}

// Logout drops the credential and identity. Safe to call more than once;
// the hook fires only on the first call.
func (s *Session) Logout() {
	s.mu.Lock()
	alreadyOut := s.token == nil
	s.token = nil
	s.email = ""
	fn := s.onLogout
	s.onLogout = nil
	s.mu.Unlock()

	if !alreadyOut && fn != nil {
		fn()
	}
}
