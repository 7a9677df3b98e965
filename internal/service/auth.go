// Package service holds the application services that sit between the CLI
// and the gateway: session lifecycle, document browsing, the upload
// pipeline, and reference-data loading.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// AuthService owns the active session. It restores persisted sessions on
// startup, performs credential exchange, and exposes the token and teardown
// hooks the gateway needs.
type AuthService struct {
	provider ports.AuthProvider
	sessions ports.SessionStore
	logger   *slog.Logger

	mu      sync.RWMutex
	current *domainauth.Session
}

// NewAuthService constructs an AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		logger:   logger,
	}
}

// Restore loads the persisted session, if any. Absence is not an error; a
// corrupt or unreadable store resolves to no session. The gateway verifies
// the restored credential on first use, so no upfront validation happens
// here.
func (s *AuthService) Restore(ctx context.Context) error {
	sess, err := s.sessions.Load(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSession) {
			return nil
		}
		s.logger.WarnContext(ctx, "discarding unreadable session", "error", err)
		return nil
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "session restored", "username", sess.Actor.Username)
	return nil
}

// Login exchanges credentials for a session, persists it, and activates it.
// On any failure the previously active session (if any) is left untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (domainauth.Session, error) {
	if username == "" || password == "" {
		return domainauth.Session{}, apperrors.Validation("username and password are required")
	}

	sess, err := s.provider.SignIn(ctx, username, password)
	if err != nil {
		return domainauth.Session{}, err
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist session")
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "signed in", "username", sess.Actor.Username, "admin", sess.IsAdmin())
	return sess, nil
}

// Register creates an account through the signup endpoint. Registration does
// not sign the new account in.
func (s *AuthService) Register(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return model.User{}, apperrors.Validation("username, email and password are required")
	}
	return s.provider.SignUp(ctx, req)
}

// Logout clears the persisted and in-memory session. Calling it with no
// active session is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "clear session")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return nil
}

// Current returns the active session, or nil when signed out. The returned
// pointer is a copy; mutating it does not affect the service.
func (s *AuthService) Current() *domainauth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// IsAdmin reports whether the active session carries the admin role.
func (s *AuthService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil && s.current.IsAdmin()
}

// Token returns the active credential token, or "" when signed out. It
// satisfies the gateway's token source.
func (s *AuthService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Teardown drops the session after the backend rejected its credential. It
// satisfies the gateway's teardown hook; store errors are logged rather than
// surfaced because the rejection itself is already being reported.
func (s *AuthService) Teardown(ctx context.Context) {
	if err := s.sessions.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to clear rejected session", "error", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}
