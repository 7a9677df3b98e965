package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/dms-platform/dms-cli/internal/domain/auth"
	"github.com/dms-platform/dms-cli/internal/domain/model"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
	mockauth "github.com/dms-platform/dms-cli/internal/mocks/auth"
)

func adminSession() domainauth.Session {
	return domainauth.Session{
		Actor: domainauth.Actor{
			ID:       1,
			Username: "admin",
			Email:    "admin@example.com",
			Roles:    []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleUser},
		},
		Token: "admin-token",
	}
}

func userSession() domainauth.Session {
	return domainauth.Session{
		Actor: domainauth.Actor{
			ID:       2,
			Username: "sara",
			Email:    "sara@example.com",
			Roles:    []domainauth.Role{domainauth.RoleUser},
		},
		Token: "user-token",
	}
}

func newAuthService(provider *mockauth.MockAuthProvider, store *mockauth.MemorySessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{Provider: provider, Sessions: store})
}

func TestAuthService_Login(t *testing.T) {
	provider := &mockauth.MockAuthProvider{
		SignInFunc: func(_ context.Context, username, password string) (domainauth.Session, error) {
			assert.Equal(t, "sara", username)
			assert.Equal(t, "secret", password)
			return userSession(), nil
		},
	}
	store := mockauth.NewMemorySessionStore()
	svc := newAuthService(provider, store)

	sess, err := svc.Login(context.Background(), "sara", "secret")
	require.NoError(t, err)

	assert.Equal(t, "user-token", sess.Token)
	assert.Equal(t, "user-token", svc.Token())
	require.NotNil(t, svc.Current())
	assert.Equal(t, int64(2), svc.Current().Actor.ID)
	require.NotNil(t, store.Stored())
	assert.Equal(t, "user-token", store.Stored().Token)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	provider := &mockauth.MockAuthProvider{}
	svc := newAuthService(provider, mockauth.NewMemorySessionStore())

	_, err := svc.Login(context.Background(), "", "secret")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, provider.SignInCalls, "provider must not be consulted")
}

func TestAuthService_Login_SignInFailureKeepsPriorSession(t *testing.T) {
	provider := &mockauth.MockAuthProvider{
		SignInFunc: func(context.Context, string, string) (domainauth.Session, error) {
			return domainauth.Session{}, apperrors.Transport("signin rejected")
		},
	}
	store := mockauth.NewMemorySessionStore()
	store.Seed(adminSession())
	svc := newAuthService(provider, store)
	require.NoError(t, svc.Restore(context.Background()))

	_, err := svc.Login(context.Background(), "sara", "wrong")

	require.Error(t, err)
	require.NotNil(t, svc.Current())
	assert.Equal(t, "admin-token", svc.Token(), "prior session stays active")
	assert.Equal(t, "admin-token", store.Stored().Token, "prior session stays persisted")
}

func TestAuthService_Login_PersistFailureLeavesSessionInactive(t *testing.T) {
	provider := &mockauth.MockAuthProvider{
		SignInFunc: func(context.Context, string, string) (domainauth.Session, error) {
			return userSession(), nil
		},
	}
	store := mockauth.NewMemorySessionStore()
	store.SaveErr = errors.New("disk full")
	svc := newAuthService(provider, store)

	_, err := svc.Login(context.Background(), "sara", "secret")

	require.Error(t, err)
	assert.Nil(t, svc.Current(), "session must not activate when it cannot be persisted")
	assert.Empty(t, svc.Token())
}

func TestAuthService_Restore(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.Seed(userSession())
	svc := newAuthService(&mockauth.MockAuthProvider{}, store)

	require.NoError(t, svc.Restore(context.Background()))

	require.NotNil(t, svc.Current())
	assert.Equal(t, "sara", svc.Current().Actor.Username)
	assert.False(t, svc.IsAdmin())
}

func TestAuthService_Restore_NoSession(t *testing.T) {
	svc := newAuthService(&mockauth.MockAuthProvider{}, mockauth.NewMemorySessionStore())

	require.NoError(t, svc.Restore(context.Background()))

	assert.Nil(t, svc.Current())
	assert.Empty(t, svc.Token())
}

func TestAuthService_Restore_UnreadableStoreFailsClosed(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.LoadErr = errors.New("corrupt payload")
	svc := newAuthService(&mockauth.MockAuthProvider{}, store)

	require.NoError(t, svc.Restore(context.Background()))

	assert.Nil(t, svc.Current(), "unreadable store resolves to signed out")
}

func TestAuthService_Logout(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.Seed(userSession())
	svc := newAuthService(&mockauth.MockAuthProvider{}, store)
	require.NoError(t, svc.Restore(context.Background()))

	require.NoError(t, svc.Logout(context.Background()))

	assert.Nil(t, svc.Current())
	assert.Empty(t, svc.Token())
	assert.Nil(t, store.Stored())
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc := newAuthService(&mockauth.MockAuthProvider{}, mockauth.NewMemorySessionStore())

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
}

func TestAuthService_Teardown(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.Seed(adminSession())
	svc := newAuthService(&mockauth.MockAuthProvider{}, store)
	require.NoError(t, svc.Restore(context.Background()))

	svc.Teardown(context.Background())

	assert.Nil(t, svc.Current())
	assert.Empty(t, svc.Token())
	assert.Nil(t, store.Stored())
}

func TestAuthService_Teardown_SwallowsStoreError(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.Seed(adminSession())
	svc := newAuthService(&mockauth.MockAuthProvider{}, store)
	require.NoError(t, svc.Restore(context.Background()))
	store.ClearErr = errors.New("store offline")

	svc.Teardown(context.Background())

	assert.Nil(t, svc.Current(), "in-memory session drops even when the store fails")
}

func TestAuthService_Register(t *testing.T) {
	provider := &mockauth.MockAuthProvider{
		SignUpFunc: func(_ context.Context, req model.SignUpRequest) (model.User, error) {
			return model.User{ID: 9, Username: req.Username, Email: req.Email}, nil
		},
	}
	svc := newAuthService(provider, mockauth.NewMemorySessionStore())

	user, err := svc.Register(context.Background(), model.SignUpRequest{
		Username: "omar",
		Email:    "omar@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(9), user.ID)
	assert.Nil(t, svc.Current(), "registration does not sign in")
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	provider := &mockauth.MockAuthProvider{}
	svc := newAuthService(provider, mockauth.NewMemorySessionStore())

	_, err := svc.Register(context.Background(), model.SignUpRequest{Username: "omar"})

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, provider.SignUpCalls)
}
