package comment

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
)

func TestCommentVoterViewAlwaysAllowed(t *testing.T) {
	v := Voter{}

	allowed, err := v.Vote(authz.ActionView, &Comment{}, nil)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCommentVoterCreate(t *testing.T) {
	v := Voter{}
	c := &Comment{Kind: KindPost}

	cases := []struct {
		name    string
		actor   *authz.Actor
		allowed bool
	}{
		{"anonymous", nil, false},
		{"plain user below commentator", &authz.Actor{ID: uuid.New(), Role: authz.RoleUser}, false},
		{"muted", &authz.Actor{ID: uuid.New(), Role: authz.RoleMuted}, false},
		{"commentator", &authz.Actor{ID: uuid.New(), Role: authz.RoleCommentator}, true},
		{"moderator", &authz.Actor{ID: uuid.New(), Role: authz.RoleModerator}, true},
		{"administrator", &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := v.Vote(authz.ActionCreate, c, tc.actor)
			require.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

// Actor A authored the comment; actor B holds COMMENTATOR, is not muted and
// is not an administrator. B must be denied EDIT, A must be allowed.
func TestCommentVoterOwnershipEdit(t *testing.T) {
	v := Voter{}

	actorA := &authz.Actor{ID: uuid.New(), Role: authz.RoleCommentator}
	actorB := &authz.Actor{ID: uuid.New(), Role: authz.RoleCommentator}

	c := &Comment{ID: uuid.New(), Kind: KindPost}
	c.AuthorID = actorA.ID

	allowed, err := v.Vote(authz.ActionEdit, c, actorB)
	require.NoError(t, err)
	assert.False(t, allowed, "non-owner non-admin must be denied")

	allowed, err = v.Vote(authz.ActionEdit, c, actorA)
	require.NoError(t, err)
	assert.True(t, allowed, "owner with COMMENTATOR must be allowed")
}

// Ownership alone is not enough: the owner must also still hold COMMENTATOR
// and must not be muted. Administrators bypass unconditionally.
func TestCommentVoterEditPrecedence(t *testing.T) {
	v := Voter{}

	owner := uuid.New()
	c := &Comment{ID: uuid.New(), Kind: KindImage}
	c.AuthorID = owner

	for _, action := range []authz.Action{authz.ActionEdit, authz.ActionDelete} {
		allowed, err := v.Vote(action, c, &authz.Actor{ID: owner, Role: authz.RoleUser})
		require.NoError(t, err)
		assert.False(t, allowed, "%s: owner below COMMENTATOR denied", action)

		allowed, err = v.Vote(action, c, &authz.Actor{ID: owner, Role: authz.RoleMuted})
		require.NoError(t, err)
		assert.False(t, allowed, "%s: muted owner denied", action)

		admin := &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}
		allowed, err = v.Vote(action, c, admin)
		require.NoError(t, err)
		assert.True(t, allowed, "%s: admin bypasses ownership", action)
	}
}

func TestCommentVoterUnsupportedAction(t *testing.T) {
	_, err := Voter{}.Vote(authz.ActionPublish, &Comment{}, nil)
	assert.ErrorIs(t, err, authz.ErrUnsupportedVote)
}
