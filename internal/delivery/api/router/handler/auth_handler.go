package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// AuthHandler exposes registration and sign-in.
type AuthHandler struct {
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

// EmailRequest carries the address of an email action.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Register creates an account and its customer profile.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	profile, err := h.identityUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// Login signs in with email and password.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.SignInInput
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	session, err := h.identityUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// Federated signs in with a third-party ID token, creating the profile on first use.
func (h *AuthHandler) Federated(c echo.Context) error {
	var req usecase.FederatedSignInInput
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	session, err := h.identityUC.SignInWithProvider(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if session.IsNewUser {
		status = http.StatusCreated
	}

	return response.Success(c, status, session)
}

// Logout revokes the caller's sessions.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingUser(c)
	}

	if err := h.identityUC.SignOut(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Signed out"})
}

// PasswordReset emails a reset link. The response does not reveal whether the address exists.
func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req EmailRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.identityUC.SendPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, messageResponse{Message: "If the address is registered, a reset link has been sent"})
}

// ResendVerification emails a new verification link.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req EmailRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	if err := h.identityUC.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, messageResponse{Message: "Verification email sent"})
}
