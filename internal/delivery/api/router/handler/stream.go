package handler

import (
	"context"
	"time"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const keepAliveInterval = 15 * time.Second

// latest is a one-slot mailbox: a pending value is replaced by a newer one.
// put must be called from a single goroutine.
type latest[T any] struct {
	ch chan T
}

func newLatest[T any]() *latest[T] {
	return &latest[T]{ch: make(chan T, 1)}
}

func (l *latest[T]) put(v T) {
	select {
	case <-l.ch:
	default:
	}
	l.ch <- v
}

// streamSubscription relays the snapshots of a store subscription as SSE events
// until the client goes away or the subscription fails.
func streamSubscription[T any](
	c echo.Context,
	subscribe func(ctx context.Context, handler func(T)) (repository.Subscription, error),
) error {
	ctx := c.Request().Context()
	updates := newLatest[T]()

	sub, err := subscribe(ctx, updates.put)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer sub.Unsubscribe()

	stream := response.NewEventStream(c)
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case v := <-updates.ch:
			if err := stream.Send(response.EventSnapshot, v); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := stream.Ping(); err != nil {
				return nil
			}
		case <-sub.Done():
			_ = stream.Send(response.EventError, domainerrors.ToErrorInfo(subscriptionError(sub.Err())))

			return nil
		}
	}
}

// subscriptionError maps the store sentinel that ended a subscription.
func subscriptionError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPermissionDenied):
		return errors.Wrap(domainerrors.ErrPermissionDenied, err.Error())
	case errors.Is(err, repository.ErrUnavailable):
		return errors.Wrap(domainerrors.ErrStoreUnavailable, err.Error())
	default:
		return err
	}
}
