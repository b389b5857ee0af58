package image

import (
	"fmt"

	"photoblog-backend/internal/core/authz"
)

// Voter decides image actions: same table as posts, administrator-only
// mutations with public VIEW once published.
type Voter struct{}

func (Voter) Supports(subject interface{}) bool {
	_, ok := subject.(*Image)
	return ok
}

func (Voter) Vote(action authz.Action, subject interface{}, actor *authz.Actor) (bool, error) {
	i, ok := subject.(*Image)
	if !ok {
		return false, fmt.Errorf("%w: image voter got %T", authz.ErrUnsupportedVote, subject)
	}

	switch action {
	case authz.ActionView:
		return actor.IsAdmin() || i.IsPublished(), nil

	case authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete:
		return actor.IsAdmin(), nil

	default:
		return false, fmt.Errorf("%w: image/%s", authz.ErrUnsupportedVote, action)
	}
}
