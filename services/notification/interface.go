package notification

import (
	"context"

	"seminarly/models"

	"go.uber.org/zap"
)

// NotificationService delivers booking emails. Delivery is best effort:
// callers log a returned error and carry on.
type NotificationService interface {
	Send(ctx context.Context, n models.Notification) error
}

// LogNotificationService renders messages and logs them instead of sending.
type LogNotificationService struct {
	Logger *zap.Logger
}

func (s LogNotificationService) Send(_ context.Context, n models.Notification) error {
	msg, err := Render(n)
	if err != nil {
		return err
	}
	s.Logger.Info("notification (not delivered)",
		zap.String("template", string(n.Template)),
		zap.String("recipient", n.Recipient),
		zap.String("subject", msg.Subject))
	return nil
}
