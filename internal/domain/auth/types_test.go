package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor_HasRole(t *testing.T) {
	actor := Actor{ID: 1, Username: "mohammed", Roles: []Role{RoleUser}}

	assert.True(t, actor.HasRole(RoleUser))
	assert.False(t, actor.HasRole(RoleAdmin))
}

func TestActor_HasRole_UnknownRoleGrantsNothing(t *testing.T) {
	actor := Actor{ID: 2, Roles: []Role{"ROLE_AUDITOR"}}

	assert.False(t, actor.HasRole(RoleAdmin))
	assert.False(t, actor.HasRole(RoleUser))
	assert.True(t, actor.HasRole("ROLE_AUDITOR"))
}

func TestSession_IsAdmin(t *testing.T) {
	admin := Session{Actor: Actor{ID: 1, Roles: []Role{RoleUser, RoleAdmin}}}
	user := Session{Actor: Actor{ID: 2, Roles: []Role{RoleUser}}}
	empty := Session{}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
	assert.False(t, empty.IsAdmin())
}

func TestSession_JSONRoundTrip(t *testing.T) {
	sess := Session{
		Actor: Actor{
			ID:       7,
			Username: "sara",
			Email:    "sara@example.com",
			Roles:    []Role{RoleAdmin},
		},
		Token: "jwt-token",
	}

	data, err := json.Marshal(sess)
	require.NoError(t, err)

	var got Session
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sess, got)
}
