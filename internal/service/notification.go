package service

import (
	"context"

	"github.com/deppfellow/health-tracker/internal/middleware"
	"github.com/deppfellow/health-tracker/internal/model"
	"github.com/deppfellow/health-tracker/internal/server"
	"github.com/hibiken/asynq"
)

// WelcomeEnqueuer queues the welcome email task.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, userID int, to, name string) (*asynq.TaskInfo, error)
}

// NotificationService tells users about changes to their account.
type NotificationService struct {
	enabled bool
	jobs    WelcomeEnqueuer
}

// NewNotificationService enables notifications only when the job queue
// runs and a Resend API key is configured.
func NewNotificationService(s *server.Server) *NotificationService {
	svc := &NotificationService{}

	if s.Job != nil && s.Config.Integration.ResendAPIKey != "" {
		svc.enabled = true
		svc.jobs = s.Job
	}

	return svc
}

// WelcomeUser enqueues the welcome email for a freshly created user.
//
// Failures are logged and swallowed: the user exists either way and the
// create response must not depend on Redis being reachable.
func (n *NotificationService) WelcomeUser(ctx context.Context, user model.User) {
	if n == nil || !n.enabled {
		return
	}

	log := middleware.LoggerFromContext(ctx)

	info, err := n.jobs.EnqueueWelcomeEmail(ctx, user.ID, user.Email, user.Name)
	if err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("failed to enqueue welcome email")
		return
	}

	log.Info().
		Int("user_id", user.ID).
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Msg("enqueued welcome email")
}
