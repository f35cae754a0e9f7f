package impl

import (
	"context"
	"fmt"
	"testing"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type applicationEventMocks struct {
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockService.MockNotificationService
	mailer          *mockService.MockMailer
}

func createTestApplicationEventService(t *testing.T) (usecase.ApplicationEventUsecase, applicationEventMocks) {
	m := applicationEventMocks{
		deviceRepo:      mockRepo.NewMockDeviceRepository(t),
		notificationSvc: mockService.NewMockNotificationService(t),
		mailer:          mockService.NewMockMailer(t),
	}

	svc := NewApplicationEventService(ApplicationEventServiceParams{
		Config:          newTestConfig(),
		DeviceRepo:      m.deviceRepo,
		NotificationSvc: m.notificationSvc,
		Mailer:          m.mailer,
		Logger:          newDiscardLogger(),
	})

	return svc, m
}

func approvedEvent() *service.ApplicationEvent {
	return &service.ApplicationEvent{
		EventID:         "evt-1",
		EventType:       service.EventApplicationStatusChanged,
		ApplicationType: string(entity.ApplicationTypeRestaurant),
		UserID:          "user-1",
		ApplicantName:   "Mei",
		ApplicantEmail:  "mei@example.com",
		Status:          string(entity.ApplicationStatusApproved),
		AdminNotes:      "welcome aboard",
	}
}

func TestApplicationEventService_StatusChangePushesAndEmails(t *testing.T) {
	svc, m := createTestApplicationEventService(t)
	ctx := context.Background()

	devices := []*entity.UserDevice{
		{ID: "d1", UserID: "user-1", FCMToken: "tok-1", IsActive: true},
		{ID: "d2", UserID: "user-1", FCMToken: "tok-2", IsActive: true},
	}
	m.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(devices, nil)
	m.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"tok-1", "tok-2"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "餐廳申請已通過" && msg.Data["event_id"] == "evt-1" && msg.Data["status"] == "approved"
		})).
		Return(&service.MulticastResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"tok-2"}}, nil)
	m.deviceRepo.EXPECT().DeactivateDevice(ctx, "d2").Return(nil)
	m.mailer.EXPECT().Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
		return e.To == "mei@example.com" && e.Tag == mailTagApplication &&
			containsAll(e.HTMLBody, "Mei", "welcome aboard") && e.TextBody != ""
	})).Return(nil)

	require.NoError(t, svc.HandleApplicationEvent(ctx, approvedEvent()))
}

func TestApplicationEventService_SubmittedEventSkipsEmail(t *testing.T) {
	svc, m := createTestApplicationEventService(t)
	ctx := context.Background()

	event := approvedEvent()
	event.EventType = service.EventApplicationSubmitted
	event.Status = string(entity.ApplicationStatusPending)

	m.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").
		Return([]*entity.UserDevice{{ID: "d1", FCMToken: "tok-1"}}, nil)
	m.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"tok-1"}, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return msg.Title == "餐廳申請已送出"
		})).
		Return(&service.MulticastResult{SuccessCount: 1}, nil)

	require.NoError(t, svc.HandleApplicationEvent(ctx, event))
}

func TestApplicationEventService_NoDevicesStillEmails(t *testing.T) {
	svc, m := createTestApplicationEventService(t)
	ctx := context.Background()

	m.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(nil, nil)
	m.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil)

	require.NoError(t, svc.HandleApplicationEvent(ctx, approvedEvent()))
}

func TestApplicationEventService_BatchesLargeDeviceSets(t *testing.T) {
	svc, m := createTestApplicationEventService(t)
	ctx := context.Background()

	event := approvedEvent()
	event.ApplicantEmail = ""

	devices := make([]*entity.UserDevice, service.MaxMulticastTokens+1)
	for i := range devices {
		devices[i] = &entity.UserDevice{ID: fmt.Sprintf("d%d", i), FCMToken: fmt.Sprintf("tok-%d", i)}
	}
	m.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(devices, nil)

	var batchSizes []int
	m.notificationSvc.EXPECT().
		SendMulticast(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tokens []string, _ *service.PushMessage) (*service.MulticastResult, error) {
			batchSizes = append(batchSizes, len(tokens))
			if len(batchSizes) == 1 {
				return nil, errors.New("quota exceeded")
			}

			return &service.MulticastResult{SuccessCount: len(tokens)}, nil
		}).
		Times(2)

	require.NoError(t, svc.HandleApplicationEvent(ctx, event))
	assert.Equal(t, []int{service.MaxMulticastTokens, 1}, batchSizes)
}

func TestApplicationEventService_Errors(t *testing.T) {
	t.Run("device lookup failure is retryable", func(t *testing.T) {
		svc, m := createTestApplicationEventService(t)
		ctx := context.Background()

		m.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(nil, errors.New("store down"))

		assert.Error(t, svc.HandleApplicationEvent(ctx, approvedEvent()))
	})

	t.Run("mail failure is retryable", func(t *testing.T) {
		svc, m := createTestApplicationEventService(t)
		ctx := context.Background()

		m.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, "user-1").Return(nil, nil)
		m.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp refused"))

		err := svc.HandleApplicationEvent(ctx, approvedEvent())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "smtp refused")
	})

	t.Run("event without user is dropped", func(t *testing.T) {
		svc, _ := createTestApplicationEventService(t)

		event := approvedEvent()
		event.UserID = ""

		assert.NoError(t, svc.HandleApplicationEvent(context.Background(), event))
	})
}
