package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func adminSession() *Session {
	return &Session{Actor: Actor{ID: 1, Username: "admin", Roles: []Role{RoleAdmin}}, Token: "t"}
}

func userSession(id int64) *Session {
	return &Session{Actor: Actor{ID: id, Username: "user", Roles: []Role{RoleUser}}, Token: "t"}
}

func TestDocumentScope_NoSession(t *testing.T) {
	scope := DocumentScope(nil, []int64{1, 2})
	assert.Equal(t, ScopeNone, scope.Kind)
}

func TestDocumentScope_AdminIgnoresDepartments(t *testing.T) {
	// Admin scope is global regardless of department memberships.
	for _, depts := range [][]int64{nil, {}, {4, 9}} {
		scope := DocumentScope(adminSession(), depts)
		assert.Equal(t, ScopeAll, scope.Kind)
		assert.Empty(t, scope.DepartmentIDs)
	}
}

func TestDocumentScope_UserWithDepartments(t *testing.T) {
	scope := DocumentScope(userSession(42), []int64{3, 7})

	assert.Equal(t, ScopeDepartments, scope.Kind)
	// Exactly the memberships, never broader.
	assert.Equal(t, []int64{3, 7}, scope.DepartmentIDs)
	assert.Zero(t, scope.UserID)
}

func TestDocumentScope_UserWithoutDepartments(t *testing.T) {
	scope := DocumentScope(userSession(42), nil)

	assert.Equal(t, ScopeOwn, scope.Kind)
	assert.Equal(t, int64(42), scope.UserID)
}

func TestDocumentScope_FirstMatchWins(t *testing.T) {
	// An actor with memberships never additionally sees their own documents
	// outside those departments: the department rule short-circuits.
	scope := DocumentScope(userSession(42), []int64{3})

	assert.Equal(t, ScopeDepartments, scope.Kind)
	assert.Zero(t, scope.UserID)
}

func TestCanManage(t *testing.T) {
	assert.False(t, CanManage(nil))
	assert.False(t, CanManage(userSession(1)))
	assert.True(t, CanManage(adminSession()))
}

func TestCanUpload(t *testing.T) {
	assert.False(t, CanUpload(nil))
	assert.True(t, CanUpload(userSession(1)))
	assert.True(t, CanUpload(adminSession()))
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name      string
		sess      *Session
		createdBy int64
		want      bool
	}{
		{"no session", nil, 1, false},
		{"admin deletes any", adminSession(), 99, true},
		{"owner deletes own", userSession(42), 42, true},
		{"non-owner denied", userSession(42), 43, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.sess, tt.createdBy))
		})
	}
}

func TestScopeKind_String(t *testing.T) {
	assert.Equal(t, "none", ScopeNone.String())
	assert.Equal(t, "all", ScopeAll.String())
	assert.Equal(t, "departments", ScopeDepartments.String())
	assert.Equal(t, "own", ScopeOwn.String())
	assert.Equal(t, "unknown", ScopeKind(99).String())
}
