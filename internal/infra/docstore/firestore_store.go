package docstore

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestoreStore is the production backend. Timestamps are assigned by the
// Firestore server and subscriptions use native snapshot listeners.
type firestoreStore struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewFirestoreStore creates a document store backed by Cloud Firestore
func NewFirestoreStore(client *firestore.Client, logger *slog.Logger) repository.DocumentStore {
	return &firestoreStore{
		client: client,
		logger: logger,
	}
}

func (s *firestoreStore) Create(ctx context.Context, collection string, data map[string]any) (*entity.Document, error) {
	ref := s.client.Collection(collection).NewDoc()
	if _, err := ref.Set(ctx, serverStamped(data, true)); err != nil {
		return nil, translateFirestoreError(err)
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, translateFirestoreError(err)
	}

	return snapshotToDocument(snap), nil
}

func (s *firestoreStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	_, err := s.client.Collection(collection).Doc(id).Set(ctx, serverStamped(data, true))

	return translateFirestoreError(err)
}

func (s *firestoreStore) Read(ctx context.Context, collection, id string) (*entity.Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		return nil, translateFirestoreError(err)
	}

	return snapshotToDocument(snap), nil
}

func (s *firestoreStore) ReadAll(ctx context.Context, collection string) ([]*entity.Document, error) {
	snaps, err := s.client.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, translateFirestoreError(err)
	}

	return snapshotsToDocuments(snaps), nil
}

func (s *firestoreStore) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	stamped := serverStamped(partial, false)

	updates := make([]firestore.Update, 0, len(stamped))
	for field, value := range stamped {
		// FieldPath keeps dotted keys as a single top-level field.
		updates = append(updates, firestore.Update{FieldPath: firestore.FieldPath{field}, Value: value})
	}

	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)

	return translateFirestoreError(err)
}

func (s *firestoreStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)

	return translateFirestoreError(err)
}

func (s *firestoreStore) Query(ctx context.Context, collection string, q entity.Query) ([]*entity.Document, error) {
	snaps, err := s.buildQuery(collection, q).Documents(ctx).GetAll()
	if err != nil {
		return nil, translateFirestoreError(err)
	}

	return snapshotsToDocuments(snaps), nil
}

func (s *firestoreStore) buildQuery(collection string, q entity.Query) firestore.Query {
	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.WhereEntity(firestore.PropertyPathFilter{
			Path:     firestore.FieldPath{f.Field},
			Operator: "==",
			Value:    f.Value,
		})
	}
	if q.OrderBy != nil && q.OrderBy.Field != "" {
		direction := firestore.Asc
		if q.OrderBy.Direction == entity.SortDescending {
			direction = firestore.Desc
		}
		query = query.OrderByPath(firestore.FieldPath{q.OrderBy.Field}, direction)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	return query
}

func (s *firestoreStore) Subscribe(ctx context.Context, collection string, q entity.Query, handler repository.SnapshotHandler) (repository.Subscription, error) {
	sub, listenCtx := newSubscription(ctx)
	it := s.buildQuery(collection, q).Snapshots(listenCtx)

	go func() {
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				sub.finish(s.listenerError(listenCtx, collection, err))

				return
			}

			snaps, err := snap.Documents.GetAll()
			if err != nil {
				sub.finish(s.listenerError(listenCtx, collection, err))

				return
			}
			handler(snapshotsToDocuments(snaps))
		}
	}()

	return sub, nil
}

func (s *firestoreStore) SubscribeDocument(ctx context.Context, collection, id string, handler repository.DocumentHandler) (repository.Subscription, error) {
	sub, listenCtx := newSubscription(ctx)
	it := s.client.Collection(collection).Doc(id).Snapshots(listenCtx)

	go func() {
		defer it.Stop()

		for {
			snap, err := it.Next()
			if err != nil {
				sub.finish(s.listenerError(listenCtx, collection, err))

				return
			}

			if !snap.Exists() {
				handler(nil)

				continue
			}
			handler(snapshotToDocument(snap))
		}
	}()

	return sub, nil
}

// listenerError maps the error that ended a snapshot listener. Cancellation
// through Unsubscribe is a normal close and yields nil.
func (s *firestoreStore) listenerError(listenCtx context.Context, collection string, err error) error {
	if listenCtx.Err() != nil || errors.Is(err, iterator.Done) || status.Code(err) == codes.Canceled {
		return nil
	}

	s.logger.Warn("[Firestore] Snapshot listener stopped",
		slog.String("collection", collection),
		slog.Any("error", err),
	)

	return translateFirestoreError(err)
}

// serverStamped copies data and adds server timestamps. createdAt is only
// written together with a full document.
func serverStamped(data map[string]any, withCreated bool) map[string]any {
	stamped := cloneData(data)
	stamped[constants.FieldUpdatedAt] = firestore.ServerTimestamp
	if withCreated {
		stamped[constants.FieldCreatedAt] = firestore.ServerTimestamp
	}

	return stamped
}

func snapshotToDocument(snap *firestore.DocumentSnapshot) *entity.Document {
	data := snap.Data()
	if data == nil {
		data = map[string]any{}
	}

	return &entity.Document{ID: snap.Ref.ID, Data: data}
}

func snapshotsToDocuments(snaps []*firestore.DocumentSnapshot) []*entity.Document {
	docs := make([]*entity.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, snapshotToDocument(snap))
	}

	return docs
}

func translateFirestoreError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return repository.ErrDocumentNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		return errors.Wrap(repository.ErrPermissionDenied, err.Error())
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	default:
		return errors.WithStack(err)
	}
}
