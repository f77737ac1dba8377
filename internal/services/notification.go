package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Renal37/laundry-service/internal/logger"
	"github.com/Renal37/laundry-service/internal/metrics"
	"github.com/Renal37/laundry-service/internal/models"
	"github.com/Renal37/laundry-service/internal/notify"
)

const (
	DefaultNotifyTimeout = 5 * time.Second

	notifyMaxAttempts = 3
	notifyRetryDelay  = 2 * time.Second
	notifyCooldown    = 10 * time.Second
)

type jobQueue interface {
	Enqueue(job Job) error
	ScheduleJob(job Job, delay time.Duration)
	PauseAndResume(delay time.Duration)
}

// NotificationService tells staff about new orders in the background.
// Callers never wait for delivery and never see its errors.
type NotificationService struct {
	queue      jobQueue
	sender     notify.Sender
	timeout    time.Duration
	retryDelay time.Duration
	cooldown   time.Duration
	metrics    *metrics.Recorder
}

func NewNotificationService(queue jobQueue, sender notify.Sender, timeout time.Duration, recorder *metrics.Recorder) *NotificationService {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}

	return &NotificationService{
		queue:      queue,
		sender:     sender,
		timeout:    timeout,
		retryDelay: notifyRetryDelay,
		cooldown:   notifyCooldown,
		metrics:    recorder,
	}
}

// OrderPlaced queues the order summary for delivery. A full queue drops it.
func (n *NotificationService) OrderPlaced(order models.Order) {
	message := notify.FormatOrderSummary(order)

	if err := n.queue.Enqueue(n.job(order.ID, message, 1)); err != nil {
		n.metrics.Notification(metrics.NotificationDropped)
		logger.Log.Warn("order notification dropped",
			zap.String("orderID", order.ID),
			zap.Error(err),
		)
	}
}

func (n *NotificationService) job(orderID, message string, attempt int) Job {
	return func(ctx context.Context) {
		sendCtx, cancel := context.WithTimeout(ctx, n.timeout)
		defer cancel()

		err := n.sender.Send(sendCtx, message)
		if err == nil {
			n.metrics.Notification(metrics.NotificationSent)
			return
		}

		fields := []zap.Field{
			zap.String("orderID", orderID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		}

		if attempt >= notifyMaxAttempts || ctx.Err() != nil {
			n.metrics.Notification(metrics.NotificationFailed)
			logger.Log.Warn("order notification failed", fields...)
			return
		}

		delay := n.retryDelay * time.Duration(attempt)
		if errors.Is(err, notify.ErrUnavailable) {
			// Every queued message would hit the open breaker too.
			n.queue.PauseAndResume(n.cooldown)
			delay = n.cooldown
		}

		logger.Log.Warn("order notification will be retried", append(fields, zap.Duration("delay", delay))...)
		n.queue.ScheduleJob(n.job(orderID, message, attempt+1), delay)
	}
}
