// Package scheduler runs the periodic jobs of the API process.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/delivery"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// runTimeout bounds a single reconcile run.
const runTimeout = 2 * time.Minute

type reconcileScheduler struct {
	cfg           *config.ReconcilerConfig
	logger        *slog.Logger
	applicationUC usecase.ApplicationUsecase
	cron          *cron.Cron
}

// Params holds dependencies for the scheduler
type Params struct {
	fx.In

	Lc            fx.Lifecycle
	Config        *config.Config
	Logger        *slog.Logger
	ApplicationUC usecase.ApplicationUsecase
}

// NewReconcileScheduler creates the cron delivery repairing unsynced applicant profiles
func NewReconcileScheduler(params Params) (delivery.Delivery, error) {
	cfg := params.Config.Reconciler
	if cfg == nil {
		cfg = &config.ReconcilerConfig{}
	}

	s := &reconcileScheduler{
		cfg:           cfg,
		logger:        params.Logger,
		applicationUC: params.ApplicationUC,
		// A run still in progress makes the next tick a no-op
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}

	if !cfg.Enabled {
		return s, nil
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.reconcile); err != nil {
		return nil, errors.Wrapf(err, "invalid reconciler schedule %q", cfg.Schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop; jobs run on the scheduler's own goroutines.
func (s *reconcileScheduler) Serve(_ context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("[Scheduler] Reconciler disabled")

		return nil
	}

	s.logger.Info("[Scheduler] Starting reconciler",
		slog.String("schedule", s.cfg.Schedule),
		slog.Int("batch_size", s.cfg.BatchSize),
	)
	s.cron.Start()

	return nil
}

func (s *reconcileScheduler) reconcile() {
	s.runOnce(context.Background())
}

func (s *reconcileScheduler) runOnce(ctx context.Context) {
	ctx, logger := deliverycontext.WithRequestScope(ctx, s.logger, uuid.New().String(), slog.String("job", "reconcile_profiles"))

	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	started := time.Now()
	report, err := s.applicationUC.ReconcileProfiles(ctx, s.cfg.BatchSize)
	if err != nil {
		logger.Error("[Scheduler] Reconcile run failed", slog.Any("error", err))

		return
	}

	if report.Scanned == 0 {
		logger.Debug("[Scheduler] Nothing to reconcile")

		return
	}

	logger.Info("[Scheduler] Reconcile run finished",
		slog.Int("scanned", report.Scanned),
		slog.Int("repaired", report.Repaired),
		slog.Int("failed", report.Failed),
		slog.String("elapsed", util.FormatDuration(time.Since(started))),
	)
}

// stop waits for a running job, bounded by the shutdown context.
func (s *reconcileScheduler) stop(ctx context.Context) error {
	s.logger.Info("[Scheduler] Stopping reconciler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}
