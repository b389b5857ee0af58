package comment

import (
	"fmt"

	"photoblog-backend/internal/core/authz"
)

// Voter decides comment actions. Comments have no publish state, so VIEW is
// always allowed. Creation needs a fully authenticated commentator who is
// not muted; editing and deleting belong to administrators or to the owner,
// provided the owner still holds COMMENTATOR and is not muted.
type Voter struct{}

func (Voter) Supports(subject interface{}) bool {
	_, ok := subject.(*Comment)
	return ok
}

func (Voter) Vote(action authz.Action, subject interface{}, actor *authz.Actor) (bool, error) {
	switch action {
	case authz.ActionView:
		return true, nil

	case authz.ActionCreate:
		return actor.IsFullyAuthenticated() &&
			actor.HasRole(authz.RoleCommentator) &&
			!actor.IsMuted(), nil

	case authz.ActionEdit, authz.ActionDelete:
		// && binds tighter than ||: ownership alone is not enough, the
		// owner must also still hold COMMENTATOR and must not be muted.
		return actor.IsAdmin() ||
			authz.IsOwner(subject, actor) &&
				actor.HasRole(authz.RoleCommentator) &&
				!actor.IsMuted(), nil

	default:
		return false, fmt.Errorf("%w: comment/%s", authz.ErrUnsupportedVote, action)
	}
}
