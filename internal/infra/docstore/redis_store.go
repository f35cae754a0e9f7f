package docstore

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	docKeyPart        = "doc"     // {prefix}:doc:{collection}:{id} -> JSON payload
	collectionKeyPart = "col"     // {prefix}:col:{collection} -> set of ids
	changeChannelPart = "changes" // {prefix}:changes:{collection} -> id of the changed document

	maxUpdateAttempts = 50
)

// redisStore keeps each document as a JSON string and publishes the id of
// every written document on a per-collection channel that backs subscriptions.
type redisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// NewRedisStore creates a document store on top of a Redis client
func NewRedisStore(client *redis.Client, keyPrefix string, logger *slog.Logger) repository.DocumentStore {
	if keyPrefix == "" {
		keyPrefix = "docstore"
	}

	return &redisStore{
		client: client,
		prefix: keyPrefix,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *redisStore) docKey(collection, id string) string {
	return s.prefix + ":" + docKeyPart + ":" + collection + ":" + id
}

func (s *redisStore) collectionKey(collection string) string {
	return s.prefix + ":" + collectionKeyPart + ":" + collection
}

func (s *redisStore) changeChannel(collection string) string {
	return s.prefix + ":" + changeChannelPart + ":" + collection
}

func (s *redisStore) Create(ctx context.Context, collection string, data map[string]any) (*entity.Document, error) {
	id := uuid.New().String()
	stamped := stampCreate(data, s.now())

	if err := s.write(ctx, collection, id, stamped); err != nil {
		return nil, err
	}

	return s.Read(ctx, collection, id)
}

func (s *redisStore) Set(ctx context.Context, collection, id string, data map[string]any) error {
	return s.write(ctx, collection, id, stampCreate(data, s.now()))
}

func (s *redisStore) write(ctx context.Context, collection, id string, data map[string]any) error {
	raw, err := encodeData(data)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.docKey(collection, id), raw, 0)
	pipe.SAdd(ctx, s.collectionKey(collection), id)
	pipe.Publish(ctx, s.changeChannel(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return translateRedisError(err)
	}

	return nil
}

func (s *redisStore) Read(ctx context.Context, collection, id string) (*entity.Document, error) {
	raw, err := s.client.Get(ctx, s.docKey(collection, id)).Bytes()
	if err != nil {
		return nil, translateRedisError(err)
	}

	data, err := decodeData(raw)
	if err != nil {
		return nil, err
	}

	return &entity.Document{ID: id, Data: data}, nil
}

func (s *redisStore) ReadAll(ctx context.Context, collection string) ([]*entity.Document, error) {
	ids, err := s.client.SMembers(ctx, s.collectionKey(collection)).Result()
	if err != nil {
		return nil, translateRedisError(err)
	}
	if len(ids) == 0 {
		return []*entity.Document{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.docKey(collection, id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, translateRedisError(err)
	}

	docs := make([]*entity.Document, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			// Deleted between SMEMBERS and MGET.
			continue
		}

		data, err := decodeData([]byte(raw))
		if err != nil {
			s.logger.Warn("[RedisStore] Skipping undecodable document",
				slog.String("collection", collection),
				slog.String("id", ids[i]),
				slog.Any("error", err),
			)

			continue
		}
		docs = append(docs, &entity.Document{ID: ids[i], Data: data})
	}

	return docs, nil
}

// Update merges under WATCH on the document key, so a concurrent write or
// delete aborts the transaction and the merge is retried on fresh data.
func (s *redisStore) Update(ctx context.Context, collection, id string, partial map[string]any) error {
	key := s.docKey(collection, id)
	stamped := stampUpdate(partial, s.now())

	merge := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			return err
		}
		stored, err := decodeData(raw)
		if err != nil {
			return err
		}
		merged, err := encodeData(mergeData(stored, stamped))
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, merged, 0)
			pipe.SAdd(ctx, s.collectionKey(collection), id)
			pipe.Publish(ctx, s.changeChannel(collection), id)

			return nil
		})

		return err
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, merge, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}

		return translateRedisError(err)
	}

	return errors.Wrapf(repository.ErrUnavailable, "update of %s/%s kept conflicting", collection, id)
}

func (s *redisStore) Delete(ctx context.Context, collection, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.docKey(collection, id))
	pipe.SRem(ctx, s.collectionKey(collection), id)
	pipe.Publish(ctx, s.changeChannel(collection), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return translateRedisError(err)
	}

	return nil
}

func (s *redisStore) Query(ctx context.Context, collection string, q entity.Query) ([]*entity.Document, error) {
	docs, err := s.ReadAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	return applyQuery(docs, q), nil
}

func (s *redisStore) Subscribe(ctx context.Context, collection string, q entity.Query, handler repository.SnapshotHandler) (repository.Subscription, error) {
	return s.listen(ctx, collection, "", func(listenCtx context.Context) error {
		docs, err := s.Query(listenCtx, collection, q)
		if err != nil {
			return err
		}
		handler(docs)

		return nil
	})
}

func (s *redisStore) SubscribeDocument(ctx context.Context, collection, id string, handler repository.DocumentHandler) (repository.Subscription, error) {
	return s.listen(ctx, collection, id, func(listenCtx context.Context) error {
		doc, err := s.Read(listenCtx, collection, id)
		if errors.Is(err, repository.ErrDocumentNotFound) {
			handler(nil)

			return nil
		}
		if err != nil {
			return err
		}
		handler(doc)

		return nil
	})
}

// listen subscribes to the collection's change channel, delivers once, then
// redelivers on every change. A non-empty onlyID ignores changes to other documents.
func (s *redisStore) listen(ctx context.Context, collection, onlyID string, deliver func(ctx context.Context) error) (repository.Subscription, error) {
	pubsub := s.client.Subscribe(ctx, s.changeChannel(collection))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()

		return nil, translateRedisError(err)
	}

	sub, listenCtx := newSubscription(ctx)
	messages := pubsub.Channel()

	go func() {
		defer pubsub.Close()

		if err := deliver(listenCtx); err != nil {
			sub.finish(err)

			return
		}

		for {
			select {
			case <-listenCtx.Done():
				sub.finish(nil)

				return
			case msg, ok := <-messages:
				if !ok {
					sub.finish(errors.Wrap(repository.ErrUnavailable, "change channel closed"))

					return
				}
				if onlyID != "" && msg.Payload != onlyID {
					continue
				}
				if err := deliver(listenCtx); err != nil {
					if listenCtx.Err() != nil {
						sub.finish(nil)

						return
					}
					s.logger.Warn("[RedisStore] Failed to refresh subscription",
						slog.String("collection", collection),
						slog.Any("error", err),
					)
				}
			}
		}
	}()

	return sub, nil
}

func translateRedisError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, redis.Nil):
		return repository.ErrDocumentNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errors.WithStack(err)
	case errors.Is(err, redis.ErrClosed):
		return errors.Wrap(repository.ErrUnavailable, err.Error())
	default:
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) {
			return errors.Wrap(repository.ErrUnavailable, err.Error())
		}
		if isRedisAuthError(err) {
			return errors.Wrap(repository.ErrPermissionDenied, err.Error())
		}

		return errors.Wrap(repository.ErrUnavailable, err.Error())
	}
}

func isRedisAuthError(err error) bool {
	var redisErr redis.Error
	if !errors.As(err, &redisErr) {
		return false
	}
	msg := redisErr.Error()

	return strings.HasPrefix(msg, "NOAUTH") || strings.HasPrefix(msg, "WRONGPASS") || strings.HasPrefix(msg, "NOPERM")
}
