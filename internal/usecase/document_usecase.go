package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
)

// Caller identifies who performs a generic record operation.
type Caller struct {
	UserID string
	Role   entity.Role
}

// DocumentUsecase exposes the generic collections through the role policy.
type DocumentUsecase interface {
	Create(ctx context.Context, caller Caller, collection string, data map[string]any) (*entity.Document, error)
	Get(ctx context.Context, caller Caller, collection, id string) (*entity.Document, error)
	Update(ctx context.Context, caller Caller, collection, id string, partial map[string]any) (*entity.Document, error)
	Delete(ctx context.Context, caller Caller, collection, id string) error
	Query(ctx context.Context, caller Caller, collection string, q entity.Query) ([]*entity.Document, error)
}
