package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/notify"
)

func notifiedOrder() models.Order {
	return models.Order{
		ID:           "o-42",
		CustomerInfo: completeGuest(),
		Items:        []models.OrderItem{{ServiceType: models.ServiceWash, Weight: 1, PricePerKg: 30, LineTotal: 30}},
		TotalAmount:  30,
	}
}

func TestOrderPlacedSendsSummary(t *testing.T) {
	queue := &fakeQueue{}
	sender := &fakeSender{}
	service := NewNotificationService(queue, sender, time.Second, nil)

	service.OrderPlaced(notifiedOrder())

	assert.Empty(t, sender.sent(), "delivery must not happen on the caller's goroutine")
	require.Len(t, queue.enqueued, 1)

	queue.enqueued[0](context.Background())

	require.Len(t, sender.sent(), 1)
	assert.Equal(t, notify.FormatOrderSummary(notifiedOrder()), sender.sent()[0])
	assert.Empty(t, queue.scheduled)
}

func TestOrderPlacedDropsWhenQueueIsFull(t *testing.T) {
	queue := &fakeQueue{err: ErrJobQueueIsFull}
	sender := &fakeSender{}
	service := NewNotificationService(queue, sender, time.Second, nil)

	assert.NotPanics(t, func() { service.OrderPlaced(notifiedOrder()) })
	assert.Empty(t, sender.sent())
}

func TestNotificationRetries(t *testing.T) {
	queue := &fakeQueue{}
	sender := &fakeSender{errs: []error{errors.New("boom"), errors.New("boom"), errors.New("boom")}}
	service := NewNotificationService(queue, sender, time.Second, nil)

	service.OrderPlaced(notifiedOrder())
	queue.enqueued[0](context.Background())

	require.Len(t, queue.next, 1)
	assert.Equal(t, []time.Duration{notifyRetryDelay}, queue.scheduled)

	queue.next[0](context.Background())
	require.Len(t, queue.next, 2)
	assert.Equal(t, 2*notifyRetryDelay, queue.scheduled[1])

	queue.next[1](context.Background())
	assert.Len(t, queue.next, 2, "gives up after the last attempt")
	assert.Len(t, sender.sent(), notifyMaxAttempts)
}

func TestNotificationPausesQueueWhileChannelIsUnavailable(t *testing.T) {
	queue := &fakeQueue{}
	sender := &fakeSender{errs: []error{notify.ErrUnavailable}}
	service := NewNotificationService(queue, sender, time.Second, nil)

	service.OrderPlaced(notifiedOrder())
	queue.enqueued[0](context.Background())

	assert.Equal(t, []time.Duration{notifyCooldown}, queue.paused)
	assert.Equal(t, []time.Duration{notifyCooldown}, queue.scheduled)

	queue.next[0](context.Background())
	assert.Len(t, sender.sent(), 2)
	assert.Len(t, queue.next, 1)
}

func TestNotificationThroughJobQueue(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := NewJobQueueService(ctx, 4, 1)
	sender := &fakeSender{}
	service := NewNotificationService(queue, sender, time.Second, nil)

	service.OrderPlaced(notifiedOrder())
	queue.Shutdown()

	require.Len(t, sender.sent(), 1)
	assert.Contains(t, sender.sent()[0], "Order ID: o-42")
}
