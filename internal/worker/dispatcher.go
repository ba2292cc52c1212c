package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Amarhadpad/artistgrade/internal/notify"
)

// Dispatcher delivers notification messages in the background. Enqueue never
// blocks the caller: when the queue is full the message is dropped and logged.
type Dispatcher struct {
	sender  notify.Sender
	timeout time.Duration
	workers int
	logger  *slog.Logger

	jobs    chan notify.Message
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.Mutex
	stopped bool
}

// NewDispatcher constructs notification worker pool.
func NewDispatcher(sender notify.Sender, timeout time.Duration, queueSize, workers int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		workers: workers,
		logger:  logger,
		jobs:    make(chan notify.Message, queueSize),
	}
}

// Start launches background delivery.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop drains the queue and waits for in-flight deliveries to finish.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()
}

// Enqueue schedules a message for delivery. Messages enqueued after Stop or
// while the queue is full are dropped.
func (d *Dispatcher) Enqueue(msg notify.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		d.logger.Warn("notification dropped after shutdown", slog.String("to", msg.To))
		return
	}
	select {
	case d.jobs <- msg:
	default:
		d.logger.Warn("notification queue full, message dropped", slog.String("to", msg.To))
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for msg := range d.jobs {
		d.deliver(ctx, msg)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg notify.Message) {
	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, msg); err != nil {
		d.logger.Error("notification delivery failed",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
			slog.String("error", err.Error()))
		return
	}
	d.logger.Info("notification delivered", slog.String("to", msg.To), slog.String("subject", msg.Subject))
}
