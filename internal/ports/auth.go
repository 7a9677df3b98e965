// Package ports defines interfaces (hexagonal ports) for backend-facing
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.
package ports

import (
	"context"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
)

// AuthProvider exchanges credentials with the external auth collaborator.
type AuthProvider interface {
	// SignIn exchanges username/password for an authenticated session
	// (token plus actor summary). No retry is attempted on failure.
	SignIn(ctx context.Context, username, password string) (domainauth.Session, error)

	// SignUp creates a new account. The endpoint is reachable without an
	// active session.
	SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error)
}

// SessionStore persists the single active session in durable client storage.
// Implementations hold at most one session per client process, keyed by
// fixed names, and clear token and actor summary together.
type SessionStore interface {
	// Save atomically persists the session, replacing any prior one.
	Save(ctx context.Context, sess domainauth.Session) error

	// Load returns the persisted session. ErrNoSession when absent or
	// unreadable: restore fails closed to "no session".
	Load(ctx context.Context) (domainauth.Session, error)

	// Clear removes the persisted session. Idempotent.
	Clear(ctx context.Context) error
}

// ErrNoSession is returned by SessionStore.Load when no session is persisted.
type noSessionError struct{}

func (noSessionError) Error() string { return "no session" }

var ErrNoSession error = noSessionError{}
