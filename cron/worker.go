package cron

import (
	"context"
	"fmt"
	"time"

	"seminarly/config"
	"seminarly/services/notification"
	"seminarly/services/tasks"
	"seminarly/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the Redis connection shared by the notification queue client and worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitNotificationWorker runs the email worker in the background and returns
// the server so the caller can shut it down.
func InitNotificationWorker(sender notification.NotificationService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendNotification, handleNotificationTask(sender))

	go func() {
		logger.Info("[NotificationWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("[NotificationWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[NotificationWorker] max retry attempts reached, emails will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()

	return srv
}

func handleNotificationTask(sender notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		n, err := tasks.ParseNotificationTask(task)
		if err != nil {
			// A payload that cannot be decoded will never succeed.
			return fmt.Errorf("invalid notification payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := sender.Send(ctx, n); err != nil {
			utils.GetLogger().Warn("[NotificationWorker] send failed",
				zap.String("template", string(n.Template)),
				zap.String("bookingID", n.Booking.ID),
				zap.Error(err))
			return err
		}
		return nil
	}
}
