package cron

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"travix/config"
	"travix/services/notification"
	"travix/services/tasks"
	"travix/utils"
)

// QueueRedisOpt is the asynq connection for the booking queue DB.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitConfirmationWorker runs the booking confirmation worker in background
// and returns the server so the caller can shut it down.
func InitConfirmationWorker(notifier notification.Notifier) *asynq.Server {
	logger := utils.GetLogger().Named("ConfirmationWorker")

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirm, HandleConfirmationTask(notifier, logger))

	go func() {
		logger.Info("Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Max retry attempts reached, confirmations are disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleConfirmationTask delivers one queued confirmation. Malformed payloads
// are skipped since retrying cannot fix them.
func HandleConfirmationTask(notifier notification.Notifier, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := tasks.ParseBookingConfirmation(task)
		if err != nil {
			logger.Error("Invalid confirmation payload", zap.Error(err))
			return asynq.SkipRetry
		}

		if err := notifier.SendBookingConfirmation(ctx, p); err != nil {
			logger.Error("Failed to send booking confirmation",
				zap.String("bookingId", p.BookingID),
				zap.Error(err))
			return err
		}
		return nil
	}
}
