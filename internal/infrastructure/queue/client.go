package queue

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"

	"photoblog-backend/pkg/logger"
)

// Enqueuer is the producer-side contract: services enqueue tasks without
// knowing about Redis or asynq internals.
type Enqueuer interface {
	Enqueue(ctx context.Context, task *asynq.Task) error
}

type asynqEnqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(redisAddr, redisPassword string, redisDB int) Enqueuer {
	return &asynqEnqueuer{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
			DB:       redisDB,
		}),
	}
}

func (e *asynqEnqueuer) Enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", task.Type(), err)
	}

	logger.Info("task enqueued", map[string]interface{}{
		"type":  task.Type(),
		"id":    info.ID,
		"queue": info.Queue,
	})
	return nil
}

// NopEnqueuer drops tasks; used in tests and when the queue is disabled.
type NopEnqueuer struct{}

func (NopEnqueuer) Enqueue(ctx context.Context, task *asynq.Task) error { return nil }
