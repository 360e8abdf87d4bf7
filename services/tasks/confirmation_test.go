package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travix/models"
)

var payload = models.ConfirmationPayload{
	BookingID:   "TRX-1A2B3C4D",
	Traveler:    models.Traveler{Name: "Guest Traveler"},
	Origin:      "Delhi",
	Destination: "Mumbai",
	Date:        "2026-12-25",
	Total:       15100,
	Currency:    "INR",
	CreatedAt:   time.Date(2026, 10, 16, 11, 0, 0, 0, time.UTC),
}

func TestBookingConfirmationTask_RoundTrip(t *testing.T) {
	task, opts, err := NewBookingConfirmationTask(payload)
	require.NoError(t, err)
	assert.Equal(t, TypeBookingConfirm, task.Type())
	assert.Len(t, opts, 3)

	got, err := ParseBookingConfirmation(task)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = ParseBookingConfirmation(asynq.NewTask(TypeBookingConfirm, []byte("nope")))
	assert.Error(t, err)
}

type recordingEnqueuer struct {
	tasks []*asynq.Task
	opts  [][]asynq.Option
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	r.opts = append(r.opts, opts)
	return &asynq.TaskInfo{ID: payload.BookingID, Type: task.Type()}, nil
}

func TestConfirmationQueue_Enqueue(t *testing.T) {
	rec := &recordingEnqueuer{}
	queue := NewConfirmationQueue(rec)

	require.NoError(t, queue.EnqueueConfirmation(context.Background(), payload))
	require.Len(t, rec.tasks, 1)
	assert.Equal(t, TypeBookingConfirm, rec.tasks[0].Type())
	assert.Contains(t, rec.opts[0], asynq.TaskID(payload.BookingID))

	rec.err = asynq.ErrTaskIDConflict
	err := queue.EnqueueConfirmation(context.Background(), payload)
	assert.ErrorIs(t, err, asynq.ErrTaskIDConflict)
}
