package tag

import (
	"fmt"

	"photoblog-backend/internal/core/authz"
)

// Voter decides tag actions. Tags have no publish state, so VIEW is always
// allowed; every mutation is administrator-only.
type Voter struct{}

func (Voter) Supports(subject interface{}) bool {
	_, ok := subject.(*Tag)
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
		return false, fmt.Errorf("%w: tag/%s", authz.ErrUnsupportedVote, action)
	}
}
