package usecase

import (
	"context"

	"marketplace/internal/domain/service"
)

// ApplicationEventUsecase reacts to application events delivered by the event bus.
type ApplicationEventUsecase interface {
	// HandleApplicationEvent pushes the event to the applicant's devices and,
	// for review decisions, emails the applicant. A returned error means the
	// event should be delivered again.
	HandleApplicationEvent(ctx context.Context, event *service.ApplicationEvent) error
}
