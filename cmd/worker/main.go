package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"photoblog-backend/internal/infrastructure/email"
	"photoblog-backend/internal/infrastructure/queue"
	"photoblog-backend/pkg/container"
	"photoblog-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	// The worker reuses the API container for config, database access and
	// repositories. The HTTP layer is simply never started.
	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
	defer c.Cleanup()

	cfg := c.Config
	mailer := email.NewSMTPEmailService(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From)

	// ========================================
	// 2. TASK HANDLERS
	// ========================================
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeWelcomeEmail, handleWelcomeEmail(mailer))
	mux.HandleFunc(queue.TypePasswordChangedEmail, handlePasswordChanged(mailer))
	mux.HandleFunc(queue.TypePurgeTrashed, handlePurgeTrashed([]purgeTarget{
		{name: "users", purger: c.UserRepo},
		{name: "posts", purger: c.PostRepo},
		{name: "images", purger: c.ImageRepo},
	}))

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	// ========================================
	// 3. SCHEDULER
	// ========================================
	scheduler, err := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("failed to build scheduler: %v", err)
	}

	// ========================================
	// 4. RUN UNTIL SIGNALED
	// ========================================
	if err := srv.Start(mux); err != nil {
		log.Fatalf("failed to start worker: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	logger.Info("worker started", map[string]interface{}{
		"redis": cfg.Redis.Host,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down worker", nil)
	scheduler.Shutdown()
	srv.Shutdown()
	logger.Info("worker exited", nil)
}

// ========================================
// HANDLERS
// ========================================

func handleWelcomeEmail(mailer email.EmailService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.WelcomeEmailPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal welcome email payload: %w", err)
		}

		if err := mailer.SendWelcomeEmail(ctx, email.WelcomeEmailData{
			Email:    p.Email,
			Username: p.Username,
		}); err != nil {
			return fmt.Errorf("send welcome email: %w", err)
		}

		logger.Info("welcome email sent", map[string]interface{}{
			"user_id": p.UserID.String(),
		})
		return nil
	}
}

func handlePasswordChanged(mailer email.EmailService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.PasswordChangedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal password changed payload: %w", err)
		}

		if err := mailer.SendPasswordChangedEmail(ctx, email.PasswordChangedData{
			Email:    p.Email,
			Username: p.Username,
		}); err != nil {
			return fmt.Errorf("send password changed email: %w", err)
		}

		logger.Info("password changed email sent", map[string]interface{}{
			"user_id": p.UserID.String(),
		})
		return nil
	}
}

// trashPurger is the one repository method the purge job needs.
type trashPurger interface {
	PurgeTrashedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type purgeTarget struct {
	name   string
	purger trashPurger
}

func handlePurgeTrashed(targets []purgeTarget) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p queue.PurgeTrashedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return fmt.Errorf("unmarshal purge payload: %w", err)
		}

		cutoff := time.Now().AddDate(0, 0, -p.OlderThanDays)
		for _, target := range targets {
			purged, err := target.purger.PurgeTrashedBefore(ctx, cutoff)
			if err != nil {
				return fmt.Errorf("purge trashed %s: %w", target.name, err)
			}

			logger.Info("trashed entities purged", map[string]interface{}{
				"entity": target.name,
				"purged": purged,
				"cutoff": cutoff.Format(time.RFC3339),
			})
		}
		return nil
	}
}
