package queue

import (
	"fmt"

	"github.com/hibiken/asynq"
)

// NewScheduler registers the periodic maintenance jobs. Entities trashed for
// more than 30 days are hard-purged nightly.
func NewScheduler(redisAddr, redisPassword string, redisDB int) (*asynq.Scheduler, error) {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB},
		nil,
	)

	purge, err := NewPurgeTrashedTask(PurgeTrashedPayload{OlderThanDays: 30})
	if err != nil {
		return nil, err
	}

	if _, err := scheduler.Register("@daily", purge); err != nil {
		return nil, fmt.Errorf("register purge job: %w", err)
	}

	return scheduler, nil
}
