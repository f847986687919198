package notification

import (
	"context"
	"fmt"

	"seminarly/models"
	"seminarly/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueNotificationService hands notifications to the background worker so
// request handlers never wait on the mail provider.
type QueueNotificationService struct {
	client *asynq.Client
}

func NewQueueNotificationService(client *asynq.Client) *QueueNotificationService {
	return &QueueNotificationService{client: client}
}

func (s *QueueNotificationService) Send(ctx context.Context, n models.Notification) error {
	if !HasTemplate(n.Template) {
		return fmt.Errorf("unknown notification template %q", n.Template)
	}
	task, opts, err := tasks.NewNotificationTask(n)
	if err != nil {
		return fmt.Errorf("build notification task: %w", err)
	}
	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}
	return nil
}
