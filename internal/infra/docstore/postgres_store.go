package docstore

import (
	"context"
	"hash/fnv"
	"log/slog"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"
	"marketplace/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultPostgresPollInterval = 2 * time.Second

// postgresStore keeps documents in a shared JSONB table. PostgreSQL offers
// no per-row change feed here, so subscriptions poll and deliver when the
// result set fingerprint changes.
type postgresStore struct {
	db           *gorm.DB
	pollInterval time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewPostgresStore creates a document store backed by a PostgreSQL JSONB table
func NewPostgresStore(db *gorm.DB, pollInterval time.Duration, logger *slog.Logger) repository.DocumentStore {
	if pollInterval <= 0 {
		pollInterval = defaultPostgresPollInterval
	}

	return &postgresStore{
		db:           db,
		pollInterval: pollInterval,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *postgresStore) Create(ctx context.Context, collection string, data map[string]any) (*entity.Document, error) {
	id := uuid.New().String()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return nil, err
	}

	return s.Read(ctx, collection, id)
}

func (s *postgresStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	now := s.now()
	raw, err := encodeData(stampCreate(data, now))
	if err != nil {
		return err
	}

	docM := &model.DocumentModel{
		Collection: collection,
		ID:         id,
		Data:       datatypes.JSON(raw),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "created_at", "updated_at"}),
		}).
		Create(docM).Error

	return postgres.TranslateError(err)
}

func (s *postgresStore) Read(ctx context.Context, collection, id string) (*entity.Document, error) {
	var docM model.DocumentModel

	if err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&docM).Error; err != nil {
		return nil, postgres.TranslateError(err)
	}

	return toDocument(&docM)
}

func (s *postgresStore) ReadAll(ctx context.Context, collection string) ([]*entity.Document, error) {
	return s.find(ctx, collection, nil)
}

func (s *postgresStore) find(ctx context.Context, collection string, filters []entity.Filter) ([]*entity.Document, error) {
	var docModels []*model.DocumentModel

	query := s.db.WithContext(ctx).Where("collection = ?", collection)
	for _, f := range filters {
		// Only string equality is pushed down; other types are matched in memory.
		if value, ok := f.Value.(string); ok {
			query = query.Where(datatypes.JSONQuery("data").Equals(value, f.Field))
		}
	}

	if err := query.Order("id").Find(&docModels).Error; err != nil {
		return nil, postgres.TranslateError(err)
	}

	docs := make([]*entity.Document, 0, len(docModels))
	for _, docM := range docModels {
		doc, err := toDocument(docM)
		if err != nil {
			s.logger.Warn("[PostgresStore] Skipping undecodable document",
				slog.String("collection", collection),
				slog.String("id", docM.ID),
				slog.Any("error", err),
			)

			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (s *postgresStore) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	now := s.now()
	raw, err := encodeData(stampUpdate(partial, now))
	if err != nil {
		return err
	}

	// jsonb || jsonb replaces top-level keys, which is the merge semantics of the store.
	result := s.db.WithContext(ctx).
		Model(&model.DocumentModel{}).
		Where("collection = ? AND id = ?", collection, id).
		Updates(map[string]any{
			"data":       gorm.Expr("data || ?::jsonb", string(raw)),
			"updated_at": now,
		})
	if result.Error != nil {
		return postgres.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func (s *postgresStore) Delete(ctx context.Context, collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		Delete(&model.DocumentModel{}).Error

	return postgres.TranslateError(err)
}

func (s *postgresStore) Query(ctx context.Context, collection string, q entity.Query) ([]*entity.Document, error) {
	docs, err := s.find(ctx, collection, q.Filters)
	if err != nil {
		return nil, err
	}

	return applyQuery(docs, q), nil
}

func (s *postgresStore) Subscribe(ctx context.Context, collection string, q entity.Query, handler repository.SnapshotHandler) (repository.Subscription, error) {
	// Fail fast on a broken backend instead of inside the poller.
	initial, err := s.Query(ctx, collection, q)
	if err != nil {
		return nil, err
	}

	return s.poll(ctx, collection, initial, func(pollCtx context.Context) (any, error) {
		return s.Query(pollCtx, collection, q)
	}, func(value any) {
		docs, _ := value.([]*entity.Document)
		handler(docs)
	}), nil
}

func (s *postgresStore) SubscribeDocument(ctx context.Context, collection, id string, handler repository.DocumentHandler) (repository.Subscription, error) {
	read := func(readCtx context.Context) (any, error) {
		doc, err := s.Read(readCtx, collection, id)
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return (*entity.Document)(nil), nil
		}

		return doc, err
	}

	initial, err := read(ctx)
	if err != nil {
		return nil, err
	}

	return s.poll(ctx, collection, initial, read, func(value any) {
		doc, _ := value.(*entity.Document)
		handler(doc)
	}), nil
}

// poll delivers initial, then re-runs fetch every interval and delivers
// whenever the encoded result differs from the last delivered one.
func (s *postgresStore) poll(ctx context.Context, collection string, initial any, fetch func(context.Context) (any, error), deliver func(any)) repository.Subscription {
	sub, pollCtx := newSubscription(ctx)

	go func() {
		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		last := fingerprint(initial)
		deliver(initial)

		for {
			select {
			case <-pollCtx.Done():
				sub.finish(nil)

				return
			case <-ticker.C:
				current, err := fetch(pollCtx)
				if err != nil {
					if pollCtx.Err() != nil {
						sub.finish(nil)

						return
					}
					s.logger.Warn("[PostgresStore] Failed to poll subscription",
						slog.String("collection", collection),
						slog.Any("error", err),
					)

					continue
				}

				if sum := fingerprint(current); sum != last {
					last = sum
					deliver(current)
				}
			}
		}
	}()

	return sub
}

func fingerprint(value any) uint64 {
	hash := fnv.New64a()
	switch v := value.(type) {
	case *entity.Document:
		if v == nil {
			return 0
		}
		writeDocument(hash, v)
	case []*entity.Document:
		for _, doc := range v {
			writeDocument(hash, doc)
		}
	}

	return hash.Sum64()
}

func writeDocument(hash interface{ Write([]byte) (int, error) }, doc *entity.Document) {
	raw, err := encodeData(doc.Data)
	if err != nil {
		return
	}
	_, _ = hash.Write([]byte(doc.ID))
	_, _ = hash.Write(raw)
}

func toDocument(docM *model.DocumentModel) (*entity.Document, error) {
	data, err := decodeData(docM.Data)
	if err != nil {
		return nil, err
	}

	return &entity.Document{ID: docM.ID, Data: data}, nil
}
