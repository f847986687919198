package tasks

import (
	"encoding/json"
	"time"

	"seminarly/models"

	"github.com/hibiken/asynq"
)

const TypeSendNotification = "notification:send"

// NewNotificationTask wraps a notification for the email worker.
func NewNotificationTask(n models.Notification) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(n)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendNotification, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}

	return task, opts, nil
}

// ParseNotificationTask decodes a task payload built by NewNotificationTask.
func ParseNotificationTask(task *asynq.Task) (models.Notification, error) {
	var n models.Notification
	err := json.Unmarshal(task.Payload(), &n)
	return n, err
}
