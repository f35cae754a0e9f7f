package handler

import (
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/delivery/api/validator"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindRequest binds and validates req, writing the 400 response on failure.
func bindRequest(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		return false, response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validator.FieldErrors(err),
		)
	}

	return true, nil
}

// applicationTypeParam reads the :type path parameter.
func applicationTypeParam(c echo.Context) (entity.ApplicationType, bool) {
	appType := entity.ApplicationType(c.Param("type"))

	return appType, appType.IsValid()
}

func invalidApplicationType(c echo.Context) error {
	return response.BadRequest(c, "INVALID_APPLICATION_TYPE", "Application type must be restaurant or delivery")
}

func missingUser(c echo.Context) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthorized.ErrorCode(), "User not found in context")
}

type messageResponse struct {
	Message string `json:"message"`
}
