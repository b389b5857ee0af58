package user

import (
	"fmt"

	"photoblog-backend/internal/core/authz"
)

// Voter decides account actions. Self-service: admins and the subject itself
// may view, edit and delete; CREATE is the registration path and is only
// open to anonymous requests.
type Voter struct{}

func (Voter) Supports(subject interface{}) bool {
	_, ok := subject.(*User)
	return ok
}

func (Voter) Vote(action authz.Action, subject interface{}, actor *authz.Actor) (bool, error) {
	switch action {
	case authz.ActionView, authz.ActionEdit, authz.ActionDelete:
		return actor.IsAdmin() || authz.IsOwner(subject, actor), nil

	case authz.ActionCreate:
		return actor.IsAnonymous(), nil

	default:
		return false, fmt.Errorf("%w: user/%s", authz.ErrUnsupportedVote, action)
	}
}

// ProfileVoter decides profile actions. Profiles exist only as a side effect
// of registration: CREATE, TRASH and RESTORE are always denied.
type ProfileVoter struct{}

func (ProfileVoter) Supports(subject interface{}) bool {
	_, ok := subject.(*Profile)
	return ok
}

func (ProfileVoter) Vote(action authz.Action, subject interface{}, actor *authz.Actor) (bool, error) {
	switch action {
	case authz.ActionView, authz.ActionEdit, authz.ActionDelete:
		return actor.IsAdmin() || authz.IsOwner(subject, actor), nil

	case authz.ActionCreate, authz.ActionTrash, authz.ActionRestore:
		return false, nil

	default:
		return false, fmt.Errorf("%w: profile/%s", authz.ErrUnsupportedVote, action)
	}
}
