package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxQueryLimit caps the result size of a generic query.
const maxQueryLimit = 500

type documentService struct {
	store  repository.DocumentStore
	logger *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	Store  repository.DocumentStore
	Logger *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	return &documentService{
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *documentService) Create(ctx context.Context, caller usecase.Caller, collection string, data map[string]any) (*entity.Document, error) {
	if err := authorize(caller, collection, entity.AccessWrite); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "document data is required")
	}

	doc, err := srv.store.Create(ctx, collection, data)
	if err != nil {
		return nil, translateStoreError(err, "failed to create document")
	}

	srv.log(ctx).Info("Document created",
		slog.String("collection", collection),
		slog.String("id", doc.ID),
		slog.String("userID", caller.UserID),
	)

	return doc, nil
}

func (srv *documentService) Get(ctx context.Context, caller usecase.Caller, collection, id string) (*entity.Document, error) {
	if err := authorize(caller, collection, entity.AccessRead); err != nil {
		return nil, err
	}

	doc, err := srv.store.Read(ctx, collection, id)
	if err != nil {
		return nil, translateStoreError(err, "failed to read document")
	}

	return doc, nil
}

// Update merges partial into the document and returns the result.
func (srv *documentService) Update(ctx context.Context, caller usecase.Caller, collection, id string, partial map[string]any) (*entity.Document, error) {
	if err := authorize(caller, collection, entity.AccessWrite); err != nil {
		return nil, err
	}
	if len(partial) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "nothing to update")
	}

	if err := srv.store.Update(ctx, collection, id, partial); err != nil {
		return nil, translateStoreError(err, "failed to update document")
	}

	doc, err := srv.store.Read(ctx, collection, id)
	if err != nil {
		return nil, translateStoreError(err, "failed to read updated document")
	}

	return doc, nil
}

func (srv *documentService) Delete(ctx context.Context, caller usecase.Caller, collection, id string) error {
	if err := authorize(caller, collection, entity.AccessWrite); err != nil {
		return err
	}

	if err := srv.store.Delete(ctx, collection, id); err != nil {
		return translateStoreError(err, "failed to delete document")
	}

	srv.log(ctx).Info("Document deleted",
		slog.String("collection", collection),
		slog.String("id", id),
		slog.String("userID", caller.UserID),
	)

	return nil
}

func (srv *documentService) Query(ctx context.Context, caller usecase.Caller, collection string, q entity.Query) ([]*entity.Document, error) {
	if err := authorize(caller, collection, entity.AccessRead); err != nil {
		return nil, err
	}
	if q.OrderBy != nil && q.OrderBy.Direction != entity.SortAscending && q.OrderBy.Direction != entity.SortDescending {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown sort direction %q", q.OrderBy.Direction)
	}
	if q.Limit <= 0 || q.Limit > maxQueryLimit {
		q.Limit = maxQueryLimit
	}

	docs, err := srv.store.Query(ctx, collection, q)
	if err != nil {
		return nil, translateStoreError(err, "failed to query documents")
	}

	return docs, nil
}

func authorize(caller usecase.Caller, collection string, mode entity.AccessMode) error {
	if !entity.IsGenericCollection(collection) {
		return errors.Wrapf(domainerrors.ErrNotFound, "unknown collection %q", collection)
	}
	if !entity.CanAccess(caller.Role, collection, mode) {
		return domainerrors.ErrForbidden.WithDetails("role " + caller.Role.String() + " cannot access " + collection)
	}

	return nil
}

// translateStoreError maps document store sentinels onto application errors.
func translateStoreError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrDocumentNotFound):
		return errors.Wrap(domainerrors.ErrDocumentNotFound, action)
	case errors.Is(err, repository.ErrPermissionDenied):
		return errors.Wrap(domainerrors.ErrPermissionDenied, action)
	case errors.Is(err, repository.ErrUnavailable):
		return errors.Wrap(domainerrors.ErrStoreUnavailable, action)
	default:
		return domainerrors.NewStoreExecuteError(err, action)
	}
}
