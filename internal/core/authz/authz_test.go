package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, RoleSuperAdmin.Grants(RoleAdministrator))
	assert.True(t, RoleAdministrator.Grants(RoleCommentator))
	assert.True(t, RoleCommentator.Grants(RoleUser))
	assert.False(t, RoleUser.Grants(RoleCommentator))
	assert.False(t, RoleMuted.Grants(RoleUser))
}

func TestActorChecks(t *testing.T) {
	var anon *Actor
	assert.True(t, anon.IsAnonymous())
	assert.False(t, anon.IsAdmin())
	assert.False(t, anon.IsFullyAuthenticated())

	admin := &Actor{ID: uuid.New(), Role: RoleAdministrator}
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsMuted())

	super := &Actor{ID: uuid.New(), Role: RoleSuperAdmin}
	assert.True(t, super.IsAdmin(), "role hierarchy: super admin inherits admin")

	muted := &Actor{ID: uuid.New(), Role: RoleMuted}
	assert.True(t, muted.IsMuted())
	assert.False(t, muted.HasRole(RoleCommentator))
}

type authoredThing struct{ author uuid.UUID }

func (a authoredThing) AuthoredBy() uuid.UUID { return a.author }

type accountThing struct{ id uuid.UUID }

func (a accountThing) AccountID() uuid.UUID { return a.id }

type profileThing struct{ owner uuid.UUID }

func (p profileThing) OwnerID() uuid.UUID { return p.owner }

func TestIsOwner(t *testing.T) {
	me := &Actor{ID: uuid.New(), Role: RoleUser}

	assert.True(t, IsOwner(authoredThing{author: me.ID}, me))
	assert.False(t, IsOwner(authoredThing{author: uuid.New()}, me))

	assert.True(t, IsOwner(accountThing{id: me.ID}, me))
	assert.True(t, IsOwner(profileThing{owner: me.ID}, me))

	// unrecognized subject kinds default to false
	assert.False(t, IsOwner(struct{}{}, me))
	assert.False(t, IsOwner(nil, me))

	// absent actor never owns anything
	assert.False(t, IsOwner(authoredThing{author: uuid.Nil}, nil))
}

type alwaysVoter struct{ decision bool }

func (v alwaysVoter) Supports(subject interface{}) bool { _, ok := subject.(authoredThing); return ok }
func (v alwaysVoter) Vote(Action, interface{}, *Actor) (bool, error) {
	return v.decision, nil
}

func TestAuthorizerDispatch(t *testing.T) {
	a := NewAuthorizer(alwaysVoter{decision: true})

	ok, err := a.Allow(ActionView, authoredThing{}, nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAuthorizerUnsupportedSubjectFailsLoudly(t *testing.T) {
	a := NewAuthorizer(alwaysVoter{})

	_, err := a.Allow(ActionView, struct{}{}, nil)
	require.ErrorIs(t, err, ErrUnsupportedVote)
}
