package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type applicationEventService struct {
	serviceName     string
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	mailer          service.Mailer
	logger          *slog.Logger
}

// ApplicationEventServiceParams holds dependencies for ApplicationEventService, injected by Fx.
type ApplicationEventServiceParams struct {
	fx.In

	Config          *config.Config
	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Mailer          service.Mailer
	Logger          *slog.Logger
}

// NewApplicationEventService is the constructor for applicationEventService.
func NewApplicationEventService(params ApplicationEventServiceParams) usecase.ApplicationEventUsecase {
	return &applicationEventService{
		serviceName:     params.Config.Env.ServiceName,
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		mailer:          params.Mailer,
		logger:          params.Logger,
	}
}

func (s *applicationEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleApplicationEvent delivers pushes before the email, so a redelivery
// caused by a mail failure may repeat the push.
func (s *applicationEventService) HandleApplicationEvent(ctx context.Context, event *service.ApplicationEvent) error {
	if event.UserID == "" {
		s.log(ctx).Warn("Dropping application event without user", slog.String("eventID", event.EventID))

		return nil
	}

	if err := s.push(ctx, event); err != nil {
		return err
	}

	if event.EventType != service.EventApplicationStatusChanged || event.ApplicantEmail == "" {
		return nil
	}

	msg, err := applicationStatusEmail(s.serviceName, event)
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to email applicant")
	}

	return nil
}

func (s *applicationEventService) push(ctx context.Context, event *service.ApplicationEvent) error {
	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, event.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to fetch devices")
	}
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	deviceByToken := make(map[string]*entity.UserDevice, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		deviceByToken[device.FCMToken] = device
	}

	title, body := pushContent(event)
	msg := &service.PushMessage{
		Title: title,
		Body:  body,
		Data: map[string]string{
			"event_id":         event.EventID,
			"event_type":       event.EventType,
			"application_type": event.ApplicationType,
			"status":           event.Status,
		},
	}

	var totalSent, totalFailed int
	for start := 0; start < len(tokens); start += service.MaxMulticastTokens {
		end := min(start+service.MaxMulticastTokens, len(tokens))

		result, err := s.notificationSvc.SendMulticast(ctx, tokens[start:end], msg)
		if err != nil {
			s.log(ctx).Warn("Failed to send push batch", slog.Any("error", err))
			totalFailed += end - start

			continue
		}
		totalSent += result.SuccessCount
		totalFailed += result.FailureCount

		for _, token := range result.InvalidTokens {
			device, ok := deviceByToken[token]
			if !ok {
				continue
			}
			if err := s.deviceRepo.DeactivateDevice(ctx, device.ID); err != nil {
				s.log(ctx).Warn("Failed to deactivate device",
					slog.String("deviceID", device.ID),
					slog.Any("error", err),
				)
			}
		}
	}

	s.log(ctx).Info("Application event pushed",
		slog.String("eventID", event.EventID),
		slog.String("userID", event.UserID),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return nil
}

func pushContent(event *service.ApplicationEvent) (title, body string) {
	program := "外送員"
	if entity.ApplicationType(event.ApplicationType) == entity.ApplicationTypeRestaurant {
		program = "餐廳"
	}

	if event.EventType == service.EventApplicationSubmitted {
		return program + "申請已送出", "我們已收到您的申請，審核結果將另行通知。"
	}

	switch entity.ApplicationStatus(event.Status) {
	case entity.ApplicationStatusApproved:
		return program + "申請已通過", "恭喜！您的申請已通過審核。"
	case entity.ApplicationStatusRejected:
		return program + "申請未通過", "您的申請未通過審核，詳情請查看電子郵件。"
	default:
		return program + "申請狀態更新", "您的申請狀態已更新。"
	}
}
