package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoblog-backend/internal/infrastructure/queue"
)

type fakePurger struct {
	purged int64
	err    error
	cutoff time.Time
	calls  int
}

func (f *fakePurger) PurgeTrashedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.calls++
	f.cutoff = cutoff
	return f.purged, f.err
}

func TestHandlePurgeTrashedCoversAllTargets(t *testing.T) {
	users := &fakePurger{purged: 2}
	posts := &fakePurger{purged: 1}
	images := &fakePurger{}

	task, err := queue.NewPurgeTrashedTask(queue.PurgeTrashedPayload{OlderThanDays: 30})
	require.NoError(t, err)

	handler := handlePurgeTrashed([]purgeTarget{
		{name: "users", purger: users},
		{name: "posts", purger: posts},
		{name: "images", purger: images},
	})
	require.NoError(t, handler(context.Background(), task))

	assert.Equal(t, 1, users.calls)
	assert.Equal(t, 1, posts.calls)
	assert.Equal(t, 1, images.calls)

	// The cutoff lies thirty days in the past.
	expected := time.Now().AddDate(0, 0, -30)
	assert.WithinDuration(t, expected, users.cutoff, time.Minute)
}

func TestHandlePurgeTrashedPropagatesFailure(t *testing.T) {
	boom := errors.New("connection reset")
	task, err := queue.NewPurgeTrashedTask(queue.PurgeTrashedPayload{OlderThanDays: 30})
	require.NoError(t, err)

	handler := handlePurgeTrashed([]purgeTarget{
		{name: "posts", purger: &fakePurger{err: boom}},
	})
	assert.ErrorIs(t, handler(context.Background(), task), boom)
}

func TestHandlePurgeTrashedRejectsBadPayload(t *testing.T) {
	handler := handlePurgeTrashed(nil)
	task := asynq.NewTask(queue.TypePurgeTrashed, []byte("{not json"))
	assert.Error(t, handler(context.Background(), task))
}
