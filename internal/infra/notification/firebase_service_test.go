package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"marketplace/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent     []*messaging.MulticastMessage
	response *messaging.BatchResponse
	err      error
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.sent = append(f.sent, message)

	return f.response, f.err
}

func TestFirebaseService_SendMulticast(t *testing.T) {
	msg := &service.PushMessage{
		Title: "外送員申請已通過",
		Body:  "恭喜！您的申請已通過審核。",
		Data:  map[string]string{"event_type": "application.status_changed"},
	}

	t.Run("maps the batch response", func(t *testing.T) {
		sender := &fakeSender{response: &messaging.BatchResponse{
			SuccessCount: 1,
			FailureCount: 1,
			Responses: []*messaging.SendResponse{
				{Success: true, MessageID: "m-1"},
				{Error: errors.New("quota exceeded")},
			},
		}}
		svc := &firebaseService{client: sender}

		result, err := svc.SendMulticast(context.Background(), []string{"tok-1", "tok-2"}, msg)
		require.NoError(t, err)

		assert.Equal(t, 1, result.SuccessCount)
		assert.Equal(t, 1, result.FailureCount)
		// Only unregistered or malformed tokens are reported for deactivation
		assert.Empty(t, result.InvalidTokens)

		require.Len(t, sender.sent, 1)
		assert.Equal(t, []string{"tok-1", "tok-2"}, sender.sent[0].Tokens)
		assert.Equal(t, msg.Title, sender.sent[0].Notification.Title)
		assert.Equal(t, msg.Data, sender.sent[0].Data)
	})

	t.Run("no tokens skips the request", func(t *testing.T) {
		sender := &fakeSender{}
		svc := &firebaseService{client: sender}

		result, err := svc.SendMulticast(context.Background(), nil, msg)
		require.NoError(t, err)
		assert.Zero(t, result.SuccessCount)
		assert.Empty(t, sender.sent)
	})

	t.Run("too many tokens", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{}}

		_, err := svc.SendMulticast(context.Background(), make([]string, service.MaxMulticastTokens+1), msg)
		require.Error(t, err)
	})

	t.Run("request failure", func(t *testing.T) {
		svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

		_, err := svc.SendMulticast(context.Background(), []string{"tok-1"}, msg)
		require.Error(t, err)
	})
}

func TestNewFirebaseService_Disabled(t *testing.T) {
	svc, err := NewFirebaseService(Params{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	result, err := svc.SendMulticast(context.Background(), []string{"tok-1"}, &service.PushMessage{Title: "t"})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
}
