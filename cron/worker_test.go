package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travix/models"
	"travix/services/tasks"
)

type fakeNotifier struct {
	sent []models.ConfirmationPayload
	err  error
}

func (f *fakeNotifier) SendBookingConfirmation(_ context.Context, p models.ConfirmationPayload) error {
	f.sent = append(f.sent, p)
	return f.err
}

func TestHandleConfirmationTask(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := HandleConfirmationTask(notifier, zap.NewNop())

	task, _, err := tasks.NewBookingConfirmationTask(models.ConfirmationPayload{BookingID: "TRX-1", Destination: "Goa"})
	require.NoError(t, err)
	require.NoError(t, handler.ProcessTask(context.Background(), task))
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "TRX-1", notifier.sent[0].BookingID)

	notifier.err = errors.New("smtp down")
	assert.ErrorIs(t, handler.ProcessTask(context.Background(), task), notifier.err)
}

func TestHandleConfirmationTask_SkipsMalformed(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := HandleConfirmationTask(notifier, zap.NewNop())

	err := handler.ProcessTask(context.Background(), asynq.NewTask(tasks.TypeBookingConfirm, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	assert.Empty(t, notifier.sent)
}
