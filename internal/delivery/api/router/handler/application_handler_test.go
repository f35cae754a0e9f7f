package handler

import (
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUsecase "marketplace/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const restaurantSubmission = `{
	"applicant": {"name": "Mei", "email": "mei@example.com", "phone": "0912"},
	"restaurant": {"restaurant_name": "Mei's Kitchen", "cuisine": "thai", "address": "1 Main St"}
}`

func createTestApplicationHandler(t *testing.T) (*ApplicationHandler, *mockUsecase.MockApplicationUsecase) {
	apps := mockUsecase.NewMockApplicationUsecase(t)

	return NewApplicationHandler(ApplicationHandlerParams{ApplicationUC: apps, Logger: newDiscardLogger()}), apps
}

func TestApplicationHandler_Submit(t *testing.T) {
	stored := &entity.Application{
		UserID: "user-1",
		Type:   entity.ApplicationTypeRestaurant,
		Status: entity.ApplicationStatusPending,
	}

	t.Run("stored and promoted", func(t *testing.T) {
		h, apps := createTestApplicationHandler(t)
		apps.EXPECT().
			Submit(mock.Anything, entity.ApplicationTypeRestaurant, "user-1", mock.MatchedBy(func(s *entity.ApplicationSubmission) bool {
				return s.Applicant.Name == "Mei" && s.Restaurant != nil && s.Restaurant.Cuisine == "thai" && s.Delivery == nil
			})).
			Return(stored, nil)

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodPost,
			path:    "/api/v1/applications/restaurant",
			params:  map[string]string{"type": "restaurant"},
			body:    restaurantSubmission,
			profile: customer,
		})
		require.NoError(t, h.Submit(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("stored but promotion deferred", func(t *testing.T) {
		h, apps := createTestApplicationHandler(t)
		apps.EXPECT().Submit(mock.Anything, entity.ApplicationTypeRestaurant, "user-1", mock.Anything).
			Return(stored, domainerrors.ErrProfilePromotionFailed.WithDetails("users/user-1 unavailable"))

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodPost,
			path:    "/api/v1/applications/restaurant",
			params:  map[string]string{"type": "restaurant"},
			body:    restaurantSubmission,
			profile: customer,
		})
		require.NoError(t, h.Submit(c))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Warning)
		assert.Equal(t, "PROFILE_PROMOTION_FAILED", env.Warning.Code)
		assert.Contains(t, string(env.Data), `"status":"pending"`)
	})

	t.Run("already processed", func(t *testing.T) {
		h, apps := createTestApplicationHandler(t)
		apps.EXPECT().Submit(mock.Anything, entity.ApplicationTypeRestaurant, "user-1", mock.Anything).
			Return(nil, domainerrors.ErrApplicationAlreadyProcessed)

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodPost,
			path:    "/api/v1/applications/restaurant",
			params:  map[string]string{"type": "restaurant"},
			body:    restaurantSubmission,
			profile: customer,
		})
		require.NoError(t, h.Submit(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		h, _ := createTestApplicationHandler(t)

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodPost,
			path:    "/api/v1/applications/florist",
			params:  map[string]string{"type": "florist"},
			body:    restaurantSubmission,
			profile: customer,
		})
		require.NoError(t, h.Submit(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_APPLICATION_TYPE", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("missing applicant contact", func(t *testing.T) {
		h, _ := createTestApplicationHandler(t)

		c, rec := newTestContext(t, testRequest{
			method:  http.MethodPost,
			path:    "/api/v1/applications/restaurant",
			params:  map[string]string{"type": "restaurant"},
			body:    `{"applicant": {"name": "Mei", "email": "bad"}, "restaurant": {"restaurant_name": "x", "cuisine": "y", "address": "z"}}`,
			profile: customer,
		})
		require.NoError(t, h.Submit(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "email", env.Error.Details["applicant.email"])
		assert.Equal(t, "required", env.Error.Details["applicant.phone"])
	})
}

func TestApplicationHandler_GetMineWithoutApplication(t *testing.T) {
	h, apps := createTestApplicationHandler(t)
	apps.EXPECT().Get(mock.Anything, entity.ApplicationTypeDelivery, "user-1").Return(nil, nil)

	c, rec := newTestContext(t, testRequest{
		method:  http.MethodGet,
		path:    "/api/v1/applications/delivery/me",
		params:  map[string]string{"type": "delivery"},
		profile: customer,
	})
	require.NoError(t, h.GetMine(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", string(decodeEnvelope(t, rec).Data))
}
