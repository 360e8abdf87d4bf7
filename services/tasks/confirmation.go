package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"travix/models"
)

const TypeBookingConfirm = "booking:confirm"

// NewBookingConfirmationTask builds the task that tells a traveler their
// booking went through. The booking id doubles as the task id so a retried
// booking call cannot queue two confirmations.
func NewBookingConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirm, b)
	opts := []asynq.Option{
		asynq.TaskID(payload.BookingID),
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// ParseBookingConfirmation decodes a task built by NewBookingConfirmationTask.
func ParseBookingConfirmation(task *asynq.Task) (models.ConfirmationPayload, error) {
	var p models.ConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid %s payload: %w", TypeBookingConfirm, err)
	}
	return p, nil
}

// Enqueuer is the part of *asynq.Client the queue needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ConfirmationQueue enqueues booking confirmations on asynq.
type ConfirmationQueue struct {
	client Enqueuer
}

func NewConfirmationQueue(client Enqueuer) *ConfirmationQueue {
	return &ConfirmationQueue{client: client}
}

func (q *ConfirmationQueue) EnqueueConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	task, opts, err := NewBookingConfirmationTask(payload)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeBookingConfirm, err)
	}
	return nil
}
