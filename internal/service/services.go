package service

import (
	"github.com/deppfellow/health-tracker/internal/server"
)

type Services struct {
	Notification *NotificationService
}

func NewService(s *server.Server) *Services {
	return &Services{
		Notification: NewNotificationService(s),
	}
}
