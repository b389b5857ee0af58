package category

import (
	"fmt"

	"photoblog-backend/internal/core/authz"
)

// Voter decides category actions: always viewable, administrator-only
// mutations.
type Voter struct{}

func (Voter) Supports(subject interface{}) bool {
	_, ok := subject.(*Category)
	return ok
}

func (Voter) Vote(action authz.Action, subject interface{}, actor *authz.Actor) (bool, error) {
	switch action {
	case authz.ActionView:
		return true, nil

	case authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete:
		return actor.IsAdmin(), nil

	default:
		return false, fmt.Errorf("%w: category/%s", authz.ErrUnsupportedVote, action)
	}
}
