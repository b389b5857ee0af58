package category

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/authz"
	"photoblog-backend/internal/core/mapping"
)

type fixedGen struct{ id uuid.UUID }

func (g fixedGen) NewID() uuid.UUID { return g.id }

func testClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestPostCategoryConfigCreate(t *testing.T) {
	id := uuid.New()
	cfg := NewPostCategoryConfig(fixedGen{id}, testClock())

	c, err := mapping.Create(mapping.Payload{
		"title":       "Travel Notes",
		"description": "Writing from the road",
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, KindPost, c.Kind)
	assert.Equal(t, "Travel Notes", c.Title)
	assert.Equal(t, "travel-notes", c.Slug)
	assert.Equal(t, "Writing from the road", c.Description)
}

func TestImageCategoryConfigKind(t *testing.T) {
	cfg := NewImageCategoryConfig(fixedGen{uuid.New()}, testClock())

	c, err := mapping.Create(mapping.Payload{"title": "Landscapes"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, KindImage, c.Kind)
	assert.Empty(t, c.Description)
}

func TestCategoryConfigTitleBounds(t *testing.T) {
	cfg := NewPostCategoryConfig(fixedGen{uuid.New()}, testClock())

	_, err := mapping.Create(mapping.Payload{"title": "ab"}, cfg)
	var vErr *mapping.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
}

func TestCategoryVoter(t *testing.T) {
	v := Voter{}
	c := &Category{ID: uuid.New(), Kind: KindPost}

	allowed, err := v.Vote(authz.ActionView, c, nil)
	require.NoError(t, err)
	assert.True(t, allowed)

	moderator := &authz.Actor{ID: uuid.New(), Role: authz.RoleModerator}
	admin := &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}

	mutations := []authz.Action{
		authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete,
	}
	for _, action := range mutations {
		allowed, err := v.Vote(action, c, moderator)
		require.NoError(t, err, "every enumerated action must decide, not abort")
		assert.False(t, allowed)

		allowed, err = v.Vote(action, c, admin)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
