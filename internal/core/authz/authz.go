// Package authz is the permission voting engine: per-entity voters map an
// (action, subject, actor) triple to allow/deny. Unmatched combinations are a
// configuration error and abort loudly — never a silent default decision.
package authz

import (
	"errors"
	"fmt"
)

// Action names an operation on a domain entity.
type Action string

const (
	ActionView    Action = "VIEW"
	ActionCreate  Action = "CREATE"
	ActionEdit    Action = "EDIT"
	ActionPublish Action = "PUBLISH"
	ActionTrash   Action = "TRASH"
	ActionRestore Action = "RESTORE"
	ActionDelete  Action = "DELETE"
)

// ErrUnsupportedVote marks an (entityType, action) pair outside every voter's
// decision table: this code should not run.
var ErrUnsupportedVote = errors.New("authz: no voter matched subject and action")

// Voter decides one entity type's decision table. Supports must be a cheap
// type check; Vote is only called when Supports returned true.
type Voter interface {
	Supports(subject interface{}) bool
	Vote(action Action, subject interface{}, actor *Actor) (bool, error)
}

// Publishable gates VIEW on subjects with a publish-state concept.
type Publishable interface {
	IsPublished() bool
}

// Authorizer dispatches a vote to the voter supporting the subject's type.
type Authorizer struct {
	voters []Voter
}

func NewAuthorizer(voters ...Voter) *Authorizer {
	return &Authorizer{voters: voters}
}

// Allow returns the decision for action on subject. CREATE decisions vote on
// a zero-value entity of the target type so voters can still be selected by
// type. A subject no voter supports fails with ErrUnsupportedVote.
func (a *Authorizer) Allow(action Action, subject interface{}, actor *Actor) (bool, error) {
	for _, v := range a.voters {
		if !v.Supports(subject) {
			continue
		}
		return v.Vote(action, subject, actor)
	}
	return false, fmt.Errorf("%w: %T/%s", ErrUnsupportedVote, subject, action)
}
