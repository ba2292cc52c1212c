package test

import (
	"context"
	"sync"

	"github.com/Amarhadpad/artistgrade/internal/notify"
)

// SenderStub records delivery attempts for tests.
type SenderStub struct {
	SendFn func(context.Context, notify.Message) error
	Err    error

	mu       sync.Mutex
	sent     []notify.Message
	attempts int
}

// Send records the attempt and returns the configured error.
func (s *SenderStub) Send(ctx context.Context, msg notify.Message) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, msg)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.Err != nil {
		return s.Err
	}
	s.sent = append(s.sent, msg)
	return nil
}

// Sent returns successfully delivered messages.
func (s *SenderStub) Sent() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Message, len(s.sent))
	copy(out, s.sent)
	return out
}

// Attempts returns the total number of delivery attempts.
func (s *SenderStub) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// DispatcherStub captures enqueued notification messages.
type DispatcherStub struct {
	mu       sync.Mutex
	Messages []notify.Message
}

// Enqueue stores the message for later inspection.
func (s *DispatcherStub) Enqueue(msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, msg)
}

// Enqueued returns messages captured so far.
func (s *DispatcherStub) Enqueued() []notify.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notify.Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

var _ notify.Sender = &SenderStub{}
