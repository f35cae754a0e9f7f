package handler

import (
	"log/slog"
	"net/http"

	"marketplace/config"
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Config        *config.Config
	ApplicationUC usecase.ApplicationUsecase
	ProfileUC     usecase.ProfileUsecase
	SessionUC     usecase.AdminSessionUsecase
	Logger        *slog.Logger
}

// AdminHandler serves application review and user management.
type AdminHandler struct {
	applicationUC  usecase.ApplicationUsecase
	profileUC      usecase.ProfileUsecase
	sessionUC      usecase.AdminSessionUsecase
	reconcileLimit int
	logger         *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		applicationUC:  params.ApplicationUC,
		profileUC:      params.ProfileUC,
		sessionUC:      params.SessionUC,
		reconcileLimit: params.Config.Reconciler.BatchSize,
		logger:         params.Logger,
	}
}

// SetRoleRequest is the body of a role change.
type SetRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=customer restaurant_owner delivery_rider admin"`
}

// SetUserStatusRequest is the body of an account status change.
type SetUserStatusRequest struct {
	Status entity.UserStatus `json:"status" validate:"required,oneof=active suspended"`
}

type sessionResponse struct {
	UnreadCount   int                        `json:"unread_count"`
	Notifications []entity.AdminNotification `json:"notifications"`
}

// OpenSession starts the admin's live notification session.
func (h *AdminHandler) OpenSession(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	center, err := h.sessionUC.Open(c.Request().Context(), adminID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessionResponse{
		UnreadCount:   center.UnreadCount(),
		Notifications: center.List(),
	})
}

// CloseSession ends the admin's session and discards its notifications.
func (h *AdminHandler) CloseSession(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	h.sessionUC.Close(adminID)

	return c.NoContent(http.StatusNoContent)
}

// ListApplications lists applications of a type by status, pending by default.
func (h *AdminHandler) ListApplications(c echo.Context) error {
	appType, ok := applicationTypeParam(c)
	if !ok {
		return invalidApplicationType(c)
	}

	status := entity.ApplicationStatus(c.QueryParam("status"))
	if status == "" {
		status = entity.ApplicationStatusPending
	}

	apps, err := h.applicationUC.ListByStatus(c.Request().Context(), appType, status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, apps)
}

// SetApplicationStatus records the admin's review decision.
func (h *AdminHandler) SetApplicationStatus(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	appType, ok := applicationTypeParam(c)
	if !ok {
		return invalidApplicationType(c)
	}

	var req usecase.SetStatusInput
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	req.ReviewerID = adminID

	app, err := h.applicationUC.SetStatus(c.Request().Context(), appType, c.Param("userId"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, app)
}

// Reconcile repairs applications whose profile promotion did not complete.
func (h *AdminHandler) Reconcile(c echo.Context) error {
	report, err := h.applicationUC.ReconcileProfiles(c.Request().Context(), h.reconcileLimit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// ListUsers lists profiles, optionally filtered by ?role=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.profileUC.ListUsers(c.Request().Context(), entity.Role(c.QueryParam("role")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// SetUserRole changes a user's role.
func (h *AdminHandler) SetUserRole(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	var req SetRoleRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.profileUC.SetRole(c.Request().Context(), adminID, c.Param("id"), req.Role); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Role updated"})
}

// SetUserStatus suspends or reactivates a user.
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	var req SetUserStatusRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.profileUC.SetStatus(c.Request().Context(), adminID, c.Param("id"), req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Status updated"})
}

// DeleteUser removes a user's profile and identity.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	if err := h.profileUC.DeleteUser(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
