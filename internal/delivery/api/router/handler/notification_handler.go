package handler

import (
	"log/slog"
	"net/http"
	"time"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	SessionUC usecase.AdminSessionUsecase
	Logger    *slog.Logger
}

// NotificationHandler serves the notification center of an open admin session.
type NotificationHandler struct {
	sessionUC usecase.AdminSessionUsecase
	logger    *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

type notificationList struct {
	UnreadCount   int                        `json:"unread_count"`
	Notifications []entity.AdminNotification `json:"notifications"`
}

func snapshotOf(center usecase.NotificationCenter) notificationList {
	return notificationList{
		UnreadCount:   center.UnreadCount(),
		Notifications: center.List(),
	}
}

func (h *NotificationHandler) center(c echo.Context) (usecase.NotificationCenter, error) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return h.sessionUC.Get(adminID)
}

// List returns the notifications, newest first.
func (h *NotificationHandler) List(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshotOf(center))
}

// Stream pushes the notification list after every change.
func (h *NotificationHandler) Stream(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	changes, release := center.Changes()
	defer release()

	ctx := c.Request().Context()
	stream := response.NewEventStream(c)
	if err := stream.Send(response.EventSnapshot, snapshotOf(center)); err != nil {
		return nil
	}

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, open := <-changes:
			if !open {
				return nil
			}
			if err := stream.Send(response.EventSnapshot, snapshotOf(center)); err != nil {
				return nil
			}
		case <-ticker.C:
			if err := stream.Ping(); err != nil {
				return nil
			}
		}
	}
}

// MarkAsRead flags one notification as read.
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !center.MarkAsRead(c.Param("id")) {
		return response.HandleAppError(c, domainerrors.ErrNotificationNotFound)
	}

	return response.Success(c, http.StatusOK, snapshotOf(center))
}

// MarkAllAsRead flags every notification as read.
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	center.MarkAllAsRead()

	return response.Success(c, http.StatusOK, snapshotOf(center))
}

// Remove deletes one notification.
func (h *NotificationHandler) Remove(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !center.Remove(c.Param("id")) {
		return response.HandleAppError(c, domainerrors.ErrNotificationNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}

// ClearAll empties the notification list.
func (h *NotificationHandler) ClearAll(c echo.Context) error {
	center, err := h.center(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	center.ClearAll()

	return c.NoContent(http.StatusNoContent)
}
