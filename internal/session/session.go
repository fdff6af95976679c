package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrTokenExpired = errors.New("session token expired")
)

// Session holds the bearer token for the current user and its lifecycle.
// It replaces ambient token-storage lookups with one explicit object: Init
// on successful auth, Invalidate on 401 or logout. Safe for use from the
// relay goroutine and the caller's event loop.
type Session struct {
	mu        sync.RWMutex
	token     string
	userID    string
	expiresAt time.Time

	onInvalidate func()
}

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

func New() *Session {
	return &Session{}
}

// OnInvalidate registers a hook observed on forced teardown (401). Must be
// set before the session is shared.
func (s *Session) OnInvalidate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onInvalidate = fn
}

// Init installs a bearer token. The expiry and subject are read from the
// token without signature verification: the client holds no signing secret,
// the server remains the authority on token validity.
func (s *Session) Init(token string) error {
	if token == "" {
		return fmt.Errorf("empty token: %w", ErrNoSession)
	}

	c := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = c.UserID
	if s.userID == "" {
		s.userID = c.Subject
	}
	if c.ExpiresAt != nil {
		s.expiresAt = c.ExpiresAt.Time
	} else {
		s.expiresAt = time.Time{}
	}

	slog.Info("session initialized", slog.String("user_id", s.userID))
	return nil
}

// Token returns the bearer token for header injection.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", ErrNoSession
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return "", ErrTokenExpired
	}
	return s.token, nil
}

// UserID returns the authenticated user's id, empty when signed out.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Active reports whether a non-expired token is installed.
func (s *Session) Active() bool {
	_, err := s.Token()
	return err == nil
}

// Invalidate tears the session down. Called globally on any 401 and on
// explicit logout; idempotent.
func (s *Session) Invalidate() {
	s.mu.Lock()
	hadToken := s.token != ""
	s.token = ""
	s.userID = ""
	s.expiresAt = time.Time{}
	hook := s.onInvalidate
	s.mu.Unlock()

	if hadToken {
		slog.Info("session invalidated")
		if hook != nil {
			hook()
		}
	}
}
