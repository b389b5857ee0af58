package post

import (
	"fmt"

	"photoblog-backend/internal/core/authz"
)

// Voter decides post actions. Every mutation is administrator-only; VIEW is
// public once published and unconditional for administrators.
type Voter struct{}

func (Voter) Supports(subject interface{}) bool {
	_, ok := subject.(*Post)
	return ok
}

func (Voter) Vote(action authz.Action, subject interface{}, actor *authz.Actor) (bool, error) {
	p, ok := subject.(*Post)
	if !ok {
		return false, fmt.Errorf("%w: post voter got %T", authz.ErrUnsupportedVote, subject)
	}

	switch action {
	case authz.ActionView:
		return actor.IsAdmin() || p.IsPublished(), nil

	case authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete:
		return actor.IsAdmin(), nil

	default:
		return false, fmt.Errorf("%w: post/%s", authz.ErrUnsupportedVote, action)
	}
}
