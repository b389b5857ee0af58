package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrashedInvariant(t *testing.T) {
	var tr Trashed
	assert.False(t, tr.IsTrashed())

	tr.Trash(time.Now())
	assert.True(t, tr.IsTrashed())

	tr.Restore()
	assert.False(t, tr.IsTrashed())
	assert.Nil(t, tr.TrashedAt)
}

func TestPublishedInvariant(t *testing.T) {
	var p Published
	assert.False(t, p.IsPublished())

	p.Publish(time.Now())
	assert.True(t, p.IsPublished())

	p.Unpublish()
	assert.False(t, p.IsPublished())
}

func TestLikesAddRemove(t *testing.T) {
	var l Likes
	a, b := uuid.New(), uuid.New()

	l.AddLike(a)
	l.AddLike(a) // duplicate is a no-op
	l.AddLike(b)

	assert.Equal(t, 2, l.LikeCount)
	assert.True(t, l.LikedBy(a))

	l.RemoveLike(a)
	assert.Equal(t, 1, l.LikeCount)
	assert.False(t, l.LikedBy(a))

	l.RemoveLike(a) // absent is a no-op
	assert.Equal(t, 1, l.LikeCount)
}
