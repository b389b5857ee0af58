// Package entity holds the capability mixins shared across domain entities:
// timestamps, authorship, publish gating, soft deletion and likes. Each
// capability is an embeddable struct owning its fields and invariants.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps tracks creation and last mutation.
type Timestamps struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// InitTimestamps sets both timestamps to now.
func (t *Timestamps) InitTimestamps(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Touch records a mutation.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}

// Authored references the user who created the entity.
type Authored struct {
	AuthorID uuid.UUID `db:"author_id" json:"author_id"`
}

// AuthoredBy exposes the author reference for ownership checks.
func (a Authored) AuthoredBy() uuid.UUID {
	return a.AuthorID
}

// Published gates public visibility: a non-nil timestamp means publicly
// viewable.
type Published struct {
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
}

func (p *Published) IsPublished() bool {
	return p.PublishedAt != nil
}

func (p *Published) Publish(now time.Time) {
	p.PublishedAt = &now
}

func (p *Published) Unpublish() {
	p.PublishedAt = nil
}

// Trashed is the soft-delete marker. TrashedAt nil <=> not trashed; hard
// deletion requires the entity to already be trashed.
type Trashed struct {
	TrashedAt *time.Time `db:"trashed_at" json:"trashed_at,omitempty"`
}

func (t *Trashed) IsTrashed() bool {
	return t.TrashedAt != nil
}

func (t *Trashed) Trash(now time.Time) {
	t.TrashedAt = &now
}

func (t *Trashed) Restore() {
	t.TrashedAt = nil
}

// Likes carries a like counter plus the set of likers.
type Likes struct {
	LikeCount int         `db:"like_count" json:"like_count"`
	LikerIDs  []uuid.UUID `db:"liker_ids" json:"-"`
}

// LikedBy reports whether userID already liked the entity.
func (l *Likes) LikedBy(userID uuid.UUID) bool {
	for _, id := range l.LikerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// AddLike records a like; duplicate likes are no-ops.
func (l *Likes) AddLike(userID uuid.UUID) {
	if l.LikedBy(userID) {
		return
	}
	l.LikerIDs = append(l.LikerIDs, userID)
	l.LikeCount++
}

// RemoveLike withdraws a like if present.
func (l *Likes) RemoveLike(userID uuid.UUID) {
	for i, id := range l.LikerIDs {
		if id == userID {
			l.LikerIDs = append(l.LikerIDs[:i], l.LikerIDs[i+1:]...)
			l.LikeCount--
			return
		}
	}
}
