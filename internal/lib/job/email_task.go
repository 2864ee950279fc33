package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome = "email:welcome"
)

type WelcomeEmailPayload struct {
	UserID int    `json:"user_id"`
	To     string `json:"to"`
	Name   string `json:"name"`
}

// NewWelcomeEmailTask builds the welcome email task: default queue,
// three retries, 30s timeout.
func NewWelcomeEmailTask(userID int, to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		UserID: userID,
		To:     to,
		Name:   name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
