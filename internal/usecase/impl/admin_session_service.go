package impl

import (
	"context"
	"log/slog"
	"sync"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminSession is the live state of one signed-in admin.
type adminSession struct {
	center *notificationCenter
	subs   []repository.Subscription
}

func (s *adminSession) stop() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
}

type adminSessionService struct {
	mu       sync.Mutex
	sessions map[string]*adminSession
	apps     usecase.ApplicationUsecase
	maxItems int
	logger   *slog.Logger
}

// AdminSessionServiceParams holds dependencies for AdminSessionService, injected by Fx.
type AdminSessionServiceParams struct {
	fx.In

	Config       *config.Config
	Applications usecase.ApplicationUsecase
	Logger       *slog.Logger
}

// NewAdminSessionService is the constructor for adminSessionService.
func NewAdminSessionService(params AdminSessionServiceParams) usecase.AdminSessionUsecase {
	return &adminSessionService{
		sessions: make(map[string]*adminSession),
		apps:     params.Applications,
		maxItems: params.Config.AdminNotifications.MaxItems,
		logger:   params.Logger,
	}
}

func (srv *adminSessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open subscribes the pending applications of every type for the admin.
// The subscriptions outlive ctx and end with Close.
func (srv *adminSessionService) Open(ctx context.Context, adminID string) (usecase.NotificationCenter, error) {
	if center, ok := srv.lookup(adminID); ok {
		return center, nil
	}

	// Built unlocked: waiting for baselines must not stall other admins.
	session, err := srv.newSession(ctx)
	if err != nil {
		return nil, err
	}

	srv.mu.Lock()
	if existing, ok := srv.sessions[adminID]; ok {
		srv.mu.Unlock()
		session.stop()

		return existing.center, nil
	}
	srv.sessions[adminID] = session
	srv.mu.Unlock()

	srv.log(ctx).Info("Admin session opened", slog.String("adminID", adminID))

	return session.center, nil
}

func (srv *adminSessionService) lookup(adminID string) (usecase.NotificationCenter, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	session, ok := srv.sessions[adminID]
	if !ok {
		return nil, false
	}

	return session.center, true
}

// newSession watches every application type and returns once each has delivered its baseline.
func (srv *adminSessionService) newSession(ctx context.Context) (*adminSession, error) {
	session := &adminSession{center: newNotificationCenter(srv.maxItems)}
	for _, appType := range entity.ApplicationTypes {
		detector := newPendingDeltaDetector(appType)
		center := session.center
		baseline := make(chan struct{})
		var once sync.Once

		sub, err := srv.apps.WatchPending(ctx, appType, func(apps []*entity.Application) {
			for _, notification := range detector.Observe(apps) {
				center.Add(notification)
			}
			once.Do(func() { close(baseline) })
		})
		if err != nil {
			session.stop()

			return nil, errors.Wrapf(err, "failed to watch pending %s applications", appType)
		}
		session.subs = append(session.subs, sub)

		// Wait for the first snapshot so that later submissions count as new.
		select {
		case <-baseline:
		case <-sub.Done():
			session.stop()

			return nil, errors.Wrapf(sub.Err(), "pending %s applications subscription ended", appType)
		case <-ctx.Done():
			session.stop()

			return nil, errors.WithStack(ctx.Err())
		}
	}

	return session, nil
}

func (srv *adminSessionService) Get(adminID string) (usecase.NotificationCenter, error) {
	center, ok := srv.lookup(adminID)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrAdminSessionNotFound, adminID)
	}

	return center, nil
}

// Close is a no-op for admins without a session.
func (srv *adminSessionService) Close(adminID string) {
	srv.mu.Lock()
	session, ok := srv.sessions[adminID]
	delete(srv.sessions, adminID)
	srv.mu.Unlock()

	if !ok {
		return
	}

	session.stop()
	srv.logger.Info("Admin session closed", slog.String("adminID", adminID))
}

func (srv *adminSessionService) CloseAll() {
	srv.mu.Lock()
	sessions := srv.sessions
	srv.sessions = make(map[string]*adminSession)
	srv.mu.Unlock()

	for _, session := range sessions {
		session.stop()
	}

	if len(sessions) > 0 {
		srv.logger.Info("Admin sessions closed", slog.Int("count", len(sessions)))
	}
}
