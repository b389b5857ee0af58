package tag

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

func TestTagConfigCreate(t *testing.T) {
	id := uuid.New()
	cfg := NewTagConfig(fixedGen{id}, testClock())

	tg, err := mapping.Create(mapping.Payload{"title": "Street Photography"}, cfg)
	require.NoError(t, err)

	assert.Equal(t, id, tg.ID)
	assert.Equal(t, "Street Photography", tg.Title)
	assert.Equal(t, "street-photography", tg.Slug)
}

func TestTagConfigTitleBounds(t *testing.T) {
	cfg := NewTagConfig(fixedGen{uuid.New()}, testClock())

	_, err := mapping.Create(mapping.Payload{"title": "x"}, cfg)
	var vErr *mapping.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "title", vErr.Field)
}

func TestTagConfigStripsMarkup(t *testing.T) {
	cfg := NewTagConfig(fixedGen{uuid.New()}, testClock())

	tg, err := mapping.Create(mapping.Payload{"title": "<i>Macro</i>"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Macro", tg.Title)
}

func TestTagVoter(t *testing.T) {
	v := Voter{}
	tg := &Tag{ID: uuid.New()}

	allowed, err := v.Vote(authz.ActionView, tg, nil)
	require.NoError(t, err)
	assert.True(t, allowed, "tags are always viewable")

	user := &authz.Actor{ID: uuid.New(), Role: authz.RoleUser}
	admin := &authz.Actor{ID: uuid.New(), Role: authz.RoleAdministrator}

	mutations := []authz.Action{
		authz.ActionCreate, authz.ActionEdit, authz.ActionPublish,
		authz.ActionTrash, authz.ActionRestore, authz.ActionDelete,
	}
	for _, action := range mutations {
		allowed, err := v.Vote(action, tg, user)
		require.NoError(t, err, "every enumerated action must decide, not abort")
		assert.False(t, allowed)

		allowed, err = v.Vote(action, tg, admin)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
