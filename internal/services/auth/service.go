package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mhollis/wakefieldbank/internal/dependencies/clock"
	"github.com/mhollis/wakefieldbank/internal/model"
	"github.com/mhollis/wakefieldbank/internal/storage"
)

// Service verifies credentials against the record store and tracks the
// session of the currently authenticated user.
type Service struct {
	store  storage.AccountStore
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*model.Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(store storage.AccountStore, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		store:           store,
		clock:           clock,
		logger:          logger,
		sessions:        make(map[string]*model.Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// Login authenticates a username/password pair and creates a session.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials
// so a caller cannot enumerate accounts. A store failure surfaces as
// ErrStoreUnavailable, never as a credential failure for a known user.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	acct, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !verifyPassword(acct.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	session := s.createSession(acct.Username)
	s.logger.Info("login", slog.String("username", acct.Username))
	return session, nil
}

// Logout clears the session so it no longer represents an identity.
func (s *Service) Logout(session *model.Session) {
	if session == nil {
		return
	}

	s.mu.Lock()
	delete(s.sessions, session.Token)
	s.mu.Unlock()

	s.logger.Info("logout", slog.String("username", session.Identity))
	session.Identity = ""
	session.Token = ""
}

// ValidateSession checks that a session token is known and unexpired.
func (s *Service) ValidateSession(token string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, model.ErrNotAuthenticated
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, model.ErrSessionExpired
	}

	return session, nil
}

// createSession registers a new session for the authenticated identity
func (s *Service) createSession(identity string) *model.Session {
	now := s.clock.Now()

	session := &model.Session{
		Token:     generateToken(),
		Identity:  identity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// verifyPassword compares a stored credential against the submitted one.
// Stored bcrypt hashes (the "$2" modular crypt prefix) verify as hashes;
// anything else is a plaintext record compared in constant time.
func verifyPassword(stored, submitted string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}

func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}
