// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"marketplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the push service, injected by Fx
type Params struct {
	fx.In

	Ctx         context.Context
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// multicastSender is the part of the FCM client used here.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates the FCM notification service from the shared Firebase app
func NewFirebaseService(params Params) (service.NotificationService, error) {
	if params.FirebaseApp == nil {
		params.Logger.Warn("[FCM] Firebase not configured, push notifications disabled")

		return &disabledService{logger: params.Logger}, nil
	}

	client, err := params.FirebaseApp.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendMulticast delivers msg to every token in one FCM request
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.MulticastResult, error) {
	if len(tokens) == 0 {
		return &service.MulticastResult{}, nil
	}
	if len(tokens) > service.MaxMulticastTokens {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), service.MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
	}

	// Responses are in token order
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

// disabledService drops notifications when no Firebase project is configured.
type disabledService struct {
	logger *slog.Logger
}

func (s *disabledService) SendMulticast(_ context.Context, tokens []string, msg *service.PushMessage) (*service.MulticastResult, error) {
	s.logger.Debug("[FCM] Push disabled, dropping notification",
		slog.String("title", msg.Title),
		slog.Int("token_count", len(tokens)),
	)

	return &service.MulticastResult{}, nil
}
