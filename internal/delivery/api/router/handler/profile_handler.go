package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile edits the caller's self-service fields.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	var req usecase.UpdateProfileInput
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// StreamProfile pushes the caller's profile on every change.
func (h *ProfileHandler) StreamProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	return streamSubscription(c, func(ctx context.Context, handler func(*entity.UserProfile)) (repository.Subscription, error) {
		return h.profileUC.WatchProfile(ctx, userID, handler)
	})
}
