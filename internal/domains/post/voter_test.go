package post

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
)

func publishedPost() *Post {
	p := &Post{ID: uuid.New()}
	p.Publish(time.Now())
	return p
}

func TestPostVoterViewPublished(t *testing.T) {
	v := Voter{}

	allowed, err := v.Vote(authz.ActionView, publishedPost(), nil)
	require.NoError(t, err)
	assert.True(t, allowed, "published posts are publicly viewable")

	draft := &Post{ID: uuid.New()}
	allowed, err = v.Vote(authz.ActionView, draft, nil)
	require.NoError(t, err)
	assert.False(t, allowed, "drafts are hidden from anonymous viewers")

	admin := &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}
	allowed, err = v.Vote(authz.ActionView, draft, admin)
	require.NoError(t, err)
	assert.True(t, allowed, "administrators see drafts")
}

func TestPostVoterMutationsAdminOnly(t *testing.T) {
	v := Voter{}
	p := publishedPost()

	commentator := &authz.Actor{ID: uuid.New(), Role: authz.RoleCommentator}
	moderator := &authz.Actor{ID: uuid.New(), Role: authz.RoleModerator}
	admin := &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}

	actions := []authz.Action{
		authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete,
	}

	for _, action := range actions {
		allowed, err := v.Vote(action, p, commentator)
		require.NoError(t, err)
		assert.False(t, allowed, "%s must be denied to commentators", action)

		allowed, err = v.Vote(action, p, moderator)
		require.NoError(t, err)
		assert.False(t, allowed, "%s must be denied to moderators", action)

		allowed, err = v.Vote(action, p, admin)
		require.NoError(t, err)
		assert.True(t, allowed, "%s must be allowed for administrators", action)
	}
}

func TestPostVoterOwnershipDoesNotGrantEdit(t *testing.T) {
	v := Voter{}

	p := publishedPost()
	p.AuthorID = uuid.New()
	owner := &authz.Actor{ID: p.AuthorID, Role: authz.RoleCommentator}

	allowed, err := v.Vote(authz.ActionEdit, p, owner)
	require.NoError(t, err)
	assert.False(t, allowed)
}
