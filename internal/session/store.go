// Package session persists the authenticated session between invocations:
// the signed-in user, the bearer token with its expiry, and the id of the
// last created bill so the preview can find it after the creation flow ends.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"medibill/internal/domain"
)

// State is the on-disk session snapshot.
type State struct {
	User       *domain.User `json:"user,omitempty"`
	Token      string       `json:"token,omitempty"`
	TokenExp   time.Time    `json:"tokenExp,omitempty"`
	LastBillID int64        `json:"lastBillId,omitempty"`
}

// Store is a file-backed session store. Callbacks registered with
// OnTokenRefresh are invoked whenever a new token is saved, replacing the
// original push-on-change broadcast with explicit listeners.
type Store struct {
	mu        sync.Mutex
	path      string
	state     State
	listeners []func()
}

// Open loads the session file at path, creating parent directories as
// needed. A missing file yields an empty session. An empty path resolves to
// medibill/session.json under the user config directory.
func Open(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("session.Open: %w", err)
		}
		path = filepath.Join(dir, "medibill", "session.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("session.Open: %w", err)
	}

	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("session.Open: %w", err)
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		// A corrupt session file is discarded, not fatal.
		s.state = State{}
	}
	return s, nil
}

// OnTokenRefresh registers a callback fired after every SaveToken.
func (s *Store) OnTokenRefresh(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SaveUser records the authenticated user.
func (s *Store) SaveUser(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = u
	return s.flushLocked()
}

// SaveToken records a bearer token, deriving its expiry from the JWT exp
// claim. The token is parsed without verification: the client never holds
// the signing key, it only needs the claims.
func (s *Store) SaveToken(token string) error {
	s.mu.Lock()
	s.state.Token = token
	s.state.TokenExp = time.Time{}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			s.state.TokenExp = exp.Time
		}
	}
	err := s.flushLocked()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	return err
}

// SaveBillID records the id of the bill created by the last submission.
func (s *Store) SaveBillID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastBillID = id
	return s.flushLocked()
}

// ClearBillID drops the cached bill id, as done when a new creation flow starts.
func (s *Store) ClearBillID() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.LastBillID = 0
	return s.flushLocked()
}

// User returns the signed-in user, or ErrNotLoggedIn.
func (s *Store) User() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil, domain.ErrNotLoggedIn
	}
	u := *s.state.User
	return &u, nil
}

// Token returns the current bearer token, empty if none.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// TokenExpiry returns when the current token expires; zero if unknown.
func (s *Store) TokenExpiry() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.TokenExp
}

// BillID returns the cached bill id, zero if none.
func (s *Store) BillID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.LastBillID
}

// Role returns the signed-in user's role, empty if signed out.
func (s *Store) Role() domain.UserRole {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return ""
	}
	return s.state.User.Role
}

// IsUserLoggedIn reports whether a distributor session is active.
func (s *Store) IsUserLoggedIn() bool {
	return s.Token() != "" && s.Role() == domain.RoleUser
}

// IsAdminLoggedIn reports whether an admin session is active.
func (s *Store) IsAdminLoggedIn() bool {
	return s.Token() != "" && s.Role() == domain.RoleAdmin
}

// SignOut discards the session.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(&s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", s.path, err)
	}
	return nil
}
