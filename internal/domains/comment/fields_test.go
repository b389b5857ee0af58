package comment

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/core/mapping"
)

type fixedGen struct{ id uuid.UUID }

func (g fixedGen) NewID() uuid.UUID { return g.id }

func testClock() func() time.Time {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestPostCommentConfigCreate(t *testing.T) {
	id := uuid.New()
	postID := uuid.New()
	cfg := NewPostCommentConfig(fixedGen{id}, testClock())

	c, err := mapping.Create(mapping.Payload{
		"body": "Lovely shot!",
		"post": postID.String(),
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, KindPost, c.Kind)
	assert.Equal(t, postID, c.SubjectID)
	assert.Equal(t, "Lovely shot!", c.Body)
}

func TestImageCommentConfigSubjectKey(t *testing.T) {
	cfg := NewImageCommentConfig(fixedGen{uuid.New()}, testClock())

	// The image config wants "image", not "post".
	_, err := mapping.Create(mapping.Payload{
		"body": "Nice framing",
		"post": uuid.New().String(),
	}, cfg)

	var missing *mapping.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "image", missing.Field)

	c, err := mapping.Create(mapping.Payload{
		"body":  "Nice framing",
		"image": uuid.New().String(),
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, KindImage, c.Kind)
}

func TestCommentBodyBounds(t *testing.T) {
	cfg := NewPostCommentConfig(fixedGen{uuid.New()}, testClock())
	postID := uuid.New().String()

	_, err := mapping.Create(mapping.Payload{"body": "x", "post": postID}, cfg)
	var vErr *mapping.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "body", vErr.Field)

	_, err = mapping.Create(mapping.Payload{
		"body": strings.Repeat("x", 501),
		"post": postID,
	}, cfg)
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "body", vErr.Field)
}

func TestCommentBodyStripped(t *testing.T) {
	cfg := NewPostCommentConfig(fixedGen{uuid.New()}, testClock())

	c, err := mapping.Create(mapping.Payload{
		"body": "So <b>good</b><script>alert(1)</script>",
		"post": uuid.New().String(),
	}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "So good", c.Body)
}
