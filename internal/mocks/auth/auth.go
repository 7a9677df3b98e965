// Package auth provides hand-written test doubles for the authentication
// ports. The gateway ports use generated mocks; these stay hand-written
// because tests mostly need simple canned behavior plus call counting.
package auth

import (
	"context"
	"sync"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	"github.com/dms-platform/dms-cli/internal/ports"
)

// MockAuthProvider implements ports.AuthProvider with overridable funcs.
type MockAuthProvider struct {
	SignInFunc func(ctx context.Context, username, password string) (domainauth.Session, error)
	SignUpFunc func(ctx context.Context, req model.SignUpRequest) (model.User, error)

	SignInCalls int
	SignUpCalls int
}

var _ ports.AuthProvider = (*MockAuthProvider)(nil)

func (m *MockAuthProvider) SignIn(ctx context.Context, username, password string) (domainauth.Session, error) {
	m.SignInCalls++
	if m.SignInFunc == nil {
		return domainauth.Session{}, nil
	}
	return m.SignInFunc(ctx, username, password)
}

func (m *MockAuthProvider) SignUp(ctx context.Context, req model.SignUpRequest) (model.User, error) {
	m.SignUpCalls++
	if m.SignUpFunc == nil {
		return model.User{}, nil
	}
	return m.SignUpFunc(ctx, req)
}

// MemorySessionStore implements ports.SessionStore in memory. Error fields
// force failures for specific operations.
type MemorySessionStore struct {
	mu      sync.Mutex
	session *domainauth.Session

	SaveErr  error
	LoadErr  error
	ClearErr error

	SaveCalls  int
	LoadCalls  int
	ClearCalls int
}

var _ ports.SessionStore = (*MemorySessionStore)(nil)

// NewMemorySessionStore returns an empty in-memory store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

// Seed places a session in the store without counting as a Save call.
func (m *MemorySessionStore) Seed(sess domainauth.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = &sess
}

// Stored returns the currently persisted session, or nil.
func (m *MemorySessionStore) Stored() *domainauth.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return nil
	}
	sess := *m.session
	return &sess
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.session = &sess
	return nil
}

func (m *MemorySessionStore) Load(_ context.Context) (domainauth.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LoadCalls++
	if m.LoadErr != nil {
		return domainauth.Session{}, m.LoadErr
	}
	if m.session == nil {
		return domainauth.Session{}, ports.ErrNoSession
	}
	return *m.session, nil
}

func (m *MemorySessionStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.session = nil
	return nil
}
