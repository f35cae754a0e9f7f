package storage

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

// Params holds dependencies for the FileStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFileStorage opens the bucket configured in storage.bucketUrl
func NewFileStorage(params Params) (service.FileStorage, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing upload bucket")

			return bucket.Close()
		},
	})
	params.Logger.Info("Using blob storage for uploads", slog.String("bucket", cfg.BucketURL))

	return NewBlobStorage(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// Module provides the FileStorage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFileStorage),
)
