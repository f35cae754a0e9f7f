package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestScheduler(t *testing.T, cfg *config.ReconcilerConfig) (*reconcileScheduler, *mockUsecase.MockApplicationUsecase, error) {
	applicationUC := mockUsecase.NewMockApplicationUsecase(t)
	lc := fxtest.NewLifecycle(t)

	d, err := NewReconcileScheduler(Params{
		Lc:            lc,
		Config:        &config.Config{Reconciler: cfg},
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		ApplicationUC: applicationUC,
	})
	if err != nil {
		return nil, applicationUC, err
	}

	return d.(*reconcileScheduler), applicationUC, nil
}

func TestNewReconcileScheduler_InvalidSchedule(t *testing.T) {
	_, _, err := createTestScheduler(t, &config.ReconcilerConfig{Enabled: true, Schedule: "every now and then", BatchSize: 10})
	require.Error(t, err)
}

func TestReconcileScheduler_RegistersJob(t *testing.T) {
	s, _, err := createTestScheduler(t, &config.ReconcilerConfig{Enabled: true, Schedule: "@every 5m", BatchSize: 10})
	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestReconcileScheduler_Disabled(t *testing.T) {
	s, _, err := createTestScheduler(t, &config.ReconcilerConfig{Enabled: false, Schedule: "@every 5m"})
	require.NoError(t, err)
	assert.Empty(t, s.cron.Entries())
	require.NoError(t, s.Serve(context.Background()))
}

func TestReconcileScheduler_RunOnce(t *testing.T) {
	t.Run("uses batch size and a traced context", func(t *testing.T) {
		s, applicationUC, err := createTestScheduler(t, &config.ReconcilerConfig{Enabled: true, Schedule: "@every 5m", BatchSize: 25})
		require.NoError(t, err)

		applicationUC.EXPECT().
			ReconcileProfiles(mock.Anything, 25).
			RunAndReturn(func(ctx context.Context, _ int) (*usecase.ReconcileReport, error) {
				assert.NotEmpty(t, deliverycontext.GetRequestIDFromContext(ctx))
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)

				return &usecase.ReconcileReport{Scanned: 3, Repaired: 2, Failed: 1}, nil
			})

		s.runOnce(context.Background())
	})

	t.Run("failure is logged", func(t *testing.T) {
		s, applicationUC, err := createTestScheduler(t, &config.ReconcilerConfig{Enabled: true, Schedule: "@every 5m", BatchSize: 25})
		require.NoError(t, err)

		applicationUC.EXPECT().ReconcileProfiles(mock.Anything, 25).Return(nil, errors.New("store unavailable"))

		s.runOnce(context.Background())
	})
}
