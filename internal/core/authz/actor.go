package authz

import "github.com/google/uuid"

// Actor is the resolved current user for a single voting decision. A nil
// *Actor means anonymous.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     Role
}

// IsAnonymous reports whether no authenticated user is present.
func (a *Actor) IsAnonymous() bool {
	return a == nil || a.ID == uuid.Nil
}

// IsFullyAuthenticated reports whether the actor logged in with credentials
// for this session.
func (a *Actor) IsFullyAuthenticated() bool {
	return !a.IsAnonymous()
}

// IsAdmin reports whether the actor holds ADMINISTRATOR or above.
func (a *Actor) IsAdmin() bool {
	return !a.IsAnonymous() && a.Role.Grants(RoleAdministrator)
}

// HasRole reports whether the actor's role inherits the given role's grants.
func (a *Actor) HasRole(r Role) bool {
	return !a.IsAnonymous() && a.Role.Grants(r)
}

// IsMuted reports whether the actor is under the MUTED sanction.
func (a *Actor) IsMuted() bool {
	return !a.IsAnonymous() && a.Role == RoleMuted
}

// Authorable is implemented by entities carrying an author reference
// (posts, images, comments).
type Authorable interface {
	AuthoredBy() uuid.UUID
}

// Account is implemented by the user entity itself; ownership means "this is
// me".
type Account interface {
	AccountID() uuid.UUID
}

// OwnedProfile is implemented by the profile entity, owned by a user.
type OwnedProfile interface {
	OwnerID() uuid.UUID
}

// IsOwner answers whether actor owns subject. The check is polymorphic over
// the subject's capability and defaults to false for unrecognized kinds.
func IsOwner(subject interface{}, actor *Actor) bool {
	if actor.IsAnonymous() {
		return false
	}

	switch s := subject.(type) {
	case Account:
		return s.AccountID() == actor.ID
	case OwnedProfile:
		return s.OwnerID() == actor.ID
	case Authorable:
		return s.AuthoredBy() == actor.ID
	default:
		return false
	}
}
