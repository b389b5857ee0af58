package queue

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/google/uuid"
)

// Task type names shared between the API (producer) and the worker
// (consumer).
const (
	TypeWelcomeEmail         = "email:welcome"
	TypePasswordChangedEmail = "email:password_changed"
	TypePurgeTrashed         = "maintenance:purge_trashed"
)

type WelcomeEmailPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

type PasswordChangedPayload struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
}

type PurgeTrashedPayload struct {
	OlderThanDays int `json:"older_than_days"`
}

func NewWelcomeEmailTask(p WelcomeEmailPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal welcome email payload: %w", err)
	}
	return asynq.NewTask(TypeWelcomeEmail, payload), nil
}

func NewPasswordChangedTask(p PasswordChangedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal password changed payload: %w", err)
	}
	return asynq.NewTask(TypePasswordChangedEmail, payload), nil
}

func NewPurgeTrashedTask(p PurgeTrashedPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal purge payload: %w", err)
	}
	return asynq.NewTask(TypePurgeTrashed, payload), nil
}
