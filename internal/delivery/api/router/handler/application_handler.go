package handler

import (
	"context"
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ApplicationHandlerParams holds dependencies for ApplicationHandler, injected by Fx.
type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	Logger        *slog.Logger
}

// ApplicationHandler serves the applicant side of the partner programs.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler.
func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

// SubmitApplicationRequest is the body of an application submission.
// Exactly the details matching the path type are required.
type SubmitApplicationRequest struct {
	Applicant  entity.Applicant          `json:"applicant" validate:"required"`
	Restaurant *entity.RestaurantDetails `json:"restaurant,omitempty"`
	Delivery   *entity.DeliveryDetails   `json:"delivery,omitempty"`
}

// Submit stores the caller's application and promotes their profile.
// A stored application whose promotion failed is answered with 202 and a warning.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	appType, ok := applicationTypeParam(c)
	if !ok {
		return invalidApplicationType(c)
	}

	var req SubmitApplicationRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	app, err := h.applicationUC.Submit(c.Request().Context(), appType, userID, &entity.ApplicationSubmission{
		Applicant:  req.Applicant,
		Restaurant: req.Restaurant,
		Delivery:   req.Delivery,
	})
	if err != nil {
		if app != nil && errors.Is(err, domainerrors.ErrProfilePromotionFailed) {
			return response.PartialSuccess(c, app, err)
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, app)
}

// GetMine returns the caller's application, or null when none exists.
func (h *ApplicationHandler) GetMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	appType, ok := applicationTypeParam(c)
	if !ok {
		return invalidApplicationType(c)
	}

	app, err := h.applicationUC.Get(c.Request().Context(), appType, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, app)
}

// StreamMine pushes the caller's application on every change.
func (h *ApplicationHandler) StreamMine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	appType, ok := applicationTypeParam(c)
	if !ok {
		return invalidApplicationType(c)
	}

	return streamSubscription(c, func(ctx context.Context, handler func(*entity.Application)) (repository.Subscription, error) {
		return h.applicationUC.Watch(ctx, appType, userID, handler)
	})
}
