package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// applicationService implements the ApplicationUsecase interface.
type applicationService struct {
	appRepo     repository.ApplicationRepository
	userRepo    repository.UserRepository
	partnerRepo repository.PartnerRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// ApplicationServiceParams holds dependencies for ApplicationService, injected by Fx.
type ApplicationServiceParams struct {
	fx.In

	AppRepo     repository.ApplicationRepository
	UserRepo    repository.UserRepository
	PartnerRepo repository.PartnerRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewApplicationService is the constructor for applicationService.
func NewApplicationService(params ApplicationServiceParams) usecase.ApplicationUsecase {
	return &applicationService{
		appRepo:     params.AppRepo,
		userRepo:    params.UserRepo,
		partnerRepo: params.PartnerRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *applicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit writes the application and then promotes the applicant's profile.
// The two writes are not atomic: profileSync records whether the second one
// happened so the reconciler can finish it later.
func (srv *applicationService) Submit(ctx context.Context, appType entity.ApplicationType, userID string, submission *entity.ApplicationSubmission) (*entity.Application, error) {
	if err := validateSubmission(appType, submission); err != nil {
		return nil, err
	}

	existing, err := srv.appRepo.Find(ctx, appType, userID)
	switch {
	case err == nil && !existing.IsPending():
		return nil, errors.Wrapf(domainerrors.ErrApplicationAlreadyProcessed, "application is %s", existing.Status)
	case err != nil && !errors.Is(err, repository.ErrApplicationNotFound):
		return nil, errors.Wrap(err, "failed to check existing application")
	}

	app := &entity.Application{
		UserID:      userID,
		Type:        appType,
		Status:      entity.ApplicationStatusPending,
		Applicant:   submission.Applicant,
		SubmittedAt: srv.now(),
		ProfileSync: entity.ProfileSyncPending,
	}
	switch appType {
	case entity.ApplicationTypeRestaurant:
		app.Restaurant = submission.Restaurant
	case entity.ApplicationTypeDelivery:
		app.Delivery = submission.Delivery
	}

	if err := srv.appRepo.Put(ctx, app); err != nil {
		return nil, errors.Wrap(err, "failed to store application")
	}

	srv.log(ctx).Info("Application submitted",
		slog.String("type", string(appType)),
		slog.String("userID", userID),
		slog.Bool("resubmission", existing != nil),
	)

	promoteErr := srv.promoteProfile(ctx, app)
	srv.publish(ctx, service.EventApplicationSubmitted, app, nil)

	if promoteErr != nil {
		return app, domainerrors.ErrProfilePromotionFailed.WithDetails(promoteErr.Error())
	}

	return app, nil
}

// promoteProfile runs the second saga step and records its outcome on the application.
func (srv *applicationService) promoteProfile(ctx context.Context, app *entity.Application) error {
	logger := srv.log(ctx)

	if err := srv.userRepo.PromoteRole(ctx, app.UserID, app.Type.TargetRole()); err != nil {
		app.SyncError = err.Error()
		logger.Warn("Profile promotion failed, application left unsynced",
			slog.String("type", string(app.Type)),
			slog.String("userID", app.UserID),
			slog.Any("error", err),
		)

		if syncErr := srv.appRepo.UpdateProfileSync(ctx, app.Type, app.UserID, entity.ProfileSyncPending, app.SyncError); syncErr != nil {
			logger.Error("Failed to record profile sync error",
				slog.String("userID", app.UserID),
				slog.Any("error", syncErr),
			)
		}

		return err
	}

	if err := srv.appRepo.UpdateProfileSync(ctx, app.Type, app.UserID, entity.ProfileSyncDone, ""); err != nil {
		// The profile is promoted; the reconciler will mark the application later.
		logger.Warn("Failed to mark application synced",
			slog.String("userID", app.UserID),
			slog.Any("error", err),
		)

		return nil
	}

	app.ProfileSync = entity.ProfileSyncDone
	app.SyncError = ""

	return nil
}

// Get returns the caller's application, or nil when none exists.
func (srv *applicationService) Get(ctx context.Context, appType entity.ApplicationType, userID string) (*entity.Application, error) {
	if !appType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown application type %q", appType)
	}

	app, err := srv.appRepo.Find(ctx, appType, userID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to get application")
	}

	return app, nil
}

// Watch streams the caller's application.
func (srv *applicationService) Watch(ctx context.Context, appType entity.ApplicationType, userID string, handler func(*entity.Application)) (repository.Subscription, error) {
	if !appType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown application type %q", appType)
	}

	sub, err := srv.appRepo.Watch(ctx, appType, userID, handler)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch application")
	}

	return sub, nil
}

// SetStatus applies an admin decision. Approval provisions the partner record
// before the status is written, so a failed provisioning leaves the
// application pending and the review can simply be repeated.
func (srv *applicationService) SetStatus(ctx context.Context, appType entity.ApplicationType, userID string, input *usecase.SetStatusInput) (*entity.Application, error) {
	if !appType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown application type %q", appType)
	}
	if !input.Status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", input.Status)
	}

	app, err := srv.appRepo.Find(ctx, appType, userID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrApplicationNotFound, userID)
		}

		return nil, errors.Wrap(err, "failed to load application")
	}

	if !entity.CanTransition(app.Status, input.Status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(entity.DescribeTransition(app.Status, input.Status))
	}

	now := srv.now()
	if input.Status == entity.ApplicationStatusApproved {
		if err := srv.provisionPartner(ctx, app, now); err != nil {
			return nil, err
		}
	}

	change := &entity.StatusChange{
		Status:     input.Status,
		ReviewerID: input.ReviewerID,
		Notes:      input.Notes,
		At:         now,
	}
	if err := srv.appRepo.UpdateStatus(ctx, appType, userID, change); err != nil {
		return nil, errors.Wrap(err, "failed to update application status")
	}

	app.Status = change.Status
	app.AdminNotes = change.Notes
	app.ProcessedAt = &now
	app.ProcessedBy = change.ReviewerID

	srv.log(ctx).Info("Application reviewed",
		slog.String("type", string(appType)),
		slog.String("userID", userID),
		slog.String("status", string(change.Status)),
		slog.String("reviewerID", change.ReviewerID),
	)
	srv.publish(ctx, service.EventApplicationStatusChanged, app, change)

	return app, nil
}

func (srv *applicationService) provisionPartner(ctx context.Context, app *entity.Application, now time.Time) error {
	switch app.Type {
	case entity.ApplicationTypeRestaurant:
		if err := srv.partnerRepo.PutRestaurant(ctx, entity.NewRestaurantFromApplication(app, now)); err != nil {
			return errors.Wrap(err, "failed to provision restaurant")
		}
	case entity.ApplicationTypeDelivery:
		if err := srv.partnerRepo.PutDriver(ctx, entity.NewDriverFromApplication(app, now)); err != nil {
			return errors.Wrap(err, "failed to provision driver")
		}
	}

	return nil
}

// ListByStatus lists applications in a status, most recently submitted first.
func (srv *applicationService) ListByStatus(ctx context.Context, appType entity.ApplicationType, status entity.ApplicationStatus) ([]*entity.Application, error) {
	if !appType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown application type %q", appType)
	}
	if !status.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown status %q", status)
	}

	apps, err := srv.appRepo.FindByStatus(ctx, appType, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return apps, nil
}

// ListPending lists the applications awaiting review.
func (srv *applicationService) ListPending(ctx context.Context, appType entity.ApplicationType) ([]*entity.Application, error) {
	return srv.ListByStatus(ctx, appType, entity.ApplicationStatusPending)
}

// WatchPending streams the applications awaiting review.
func (srv *applicationService) WatchPending(ctx context.Context, appType entity.ApplicationType, handler func([]*entity.Application)) (repository.Subscription, error) {
	if !appType.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown application type %q", appType)
	}

	sub, err := srv.appRepo.WatchByStatus(ctx, appType, entity.ApplicationStatusPending, handler)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch pending applications")
	}

	return sub, nil
}

// ReconcileProfiles retries the profile promotion of applications left unsynced.
// limit bounds the number of applications scanned per type.
func (srv *applicationService) ReconcileProfiles(ctx context.Context, limit int) (*usecase.ReconcileReport, error) {
	report := &usecase.ReconcileReport{}

	for _, appType := range entity.ApplicationTypes {
		apps, err := srv.appRepo.FindUnsynced(ctx, appType, limit)
		if err != nil {
			return report, errors.Wrapf(err, "failed to list unsynced %s applications", appType)
		}

		for _, app := range apps {
			if err := ctx.Err(); err != nil {
				return report, errors.WithStack(err)
			}

			report.Scanned++
			if err := srv.promoteProfile(ctx, app); err != nil {
				report.Failed++

				continue
			}
			report.Repaired++
		}
	}

	if report.Scanned > 0 {
		srv.log(ctx).Info("Application profiles reconciled",
			slog.Int("scanned", report.Scanned),
			slog.Int("repaired", report.Repaired),
			slog.Int("failed", report.Failed),
		)
	}

	return report, nil
}

// publish emits an application event. A lost event only delays pushes and
// emails, so failures are logged rather than returned.
func (srv *applicationService) publish(ctx context.Context, eventType string, app *entity.Application, change *entity.StatusChange) {
	event := &service.ApplicationEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		EventID:         uuid.New().String(),
		EventType:       eventType,
		ApplicationType: string(app.Type),
		UserID:          app.UserID,
		ApplicantName:   app.Applicant.Name,
		ApplicantEmail:  app.Applicant.Email,
		Status:          string(app.Status),
		OccurredAt:      srv.now().Format(time.RFC3339),
	}
	if change != nil {
		event.ReviewerID = change.ReviewerID
		event.AdminNotes = change.Notes
		event.OccurredAt = change.At.Format(time.RFC3339)
	}

	if err := srv.publisher.PublishApplicationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish application event",
			slog.String("eventType", eventType),
			slog.String("userID", app.UserID),
			slog.Any("error", err),
		)
	}
}

func validateSubmission(appType entity.ApplicationType, submission *entity.ApplicationSubmission) error {
	if !appType.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown application type %q", appType)
	}
	if submission == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "application payload is required")
	}
	if appType == entity.ApplicationTypeRestaurant && submission.Restaurant == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "restaurant details are required")
	}
	if appType == entity.ApplicationTypeDelivery && submission.Delivery == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "delivery details are required")
	}

	return nil
}
