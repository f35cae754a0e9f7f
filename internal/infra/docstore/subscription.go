package docstore

import (
	"context"
	"sync"

	"marketplace/internal/domain/repository"
)

// subscription tracks one listener goroutine. The goroutine must call finish exactly once.
type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu  sync.Mutex
	err error
}

var _ repository.Subscription = (*subscription)(nil)

// newSubscription returns the subscription and the context its listener runs under.
// The listener context is detached from ctx: a subscription lives until Unsubscribe.
func newSubscription(ctx context.Context) (*subscription, context.Context) {
	listenCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	return &subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}, listenCtx
}

// Unsubscribe stops the listener and waits for it to exit.
// It must not be called from inside the subscription's own handler.
func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
	<-s.done
}

func (s *subscription) Done() <-chan struct{} {
	return s.done
}

func (s *subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *subscription) finish(err error) {
	if err == nil {
		err = repository.ErrSubscriptionClosed
	}

	s.mu.Lock()
	s.err = err
	s.mu.Unlock()

	s.once.Do(s.cancel)
	close(s.done)
}
