package image

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
)

func TestImageVoterView(t *testing.T) {
	v := Voter{}

	published := &Image{ID: uuid.New()}
	published.Publish(time.Now())

	allowed, err := v.Vote(authz.ActionView, published, nil)
	require.NoError(t, err)
	assert.True(t, allowed)

	draft := &Image{ID: uuid.New()}
	allowed, err = v.Vote(authz.ActionView, draft, &authz.Actor{ID: uuid.New(), Role: authz.RoleModerator})
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = v.Vote(authz.ActionView, draft, &authz.Actor{ID: uuid.New(), Role: authz.RoleSuperAdmin})
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestImageVoterMutationsAdminOnly(t *testing.T) {
	v := Voter{}
	i := &Image{ID: uuid.New()}

	user := &authz.Actor{ID: uuid.New(), Role: authz.RoleUser}
	admin := &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}

	for _, action := range []authz.Action{
		authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete,
	} {
		allowed, err := v.Vote(action, i, user)
		require.NoError(t, err)
		assert.False(t, allowed, "%s denied to plain users", action)

		allowed, err = v.Vote(action, i, admin)
		require.NoError(t, err)
		assert.True(t, allowed, "%s allowed for administrators", action)
	}
}
