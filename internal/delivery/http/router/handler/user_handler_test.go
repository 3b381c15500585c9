package handler

import (
	"net/http"
	"testing"

	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	mockUsecase "ecowave/internal/mocks/usecase"
	"ecowave/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetImpact_EmitsSnakeCaseLedger(t *testing.T) {
	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(userUC, testHandlerLogger())

	userUC.On("GetImpact", mock.Anything, "seller@example.com").Return(&usecase.ImpactOutput{
		Impact: entity.ImpactStats{CO2Saved: 50, WaterSaved: 100, WasteSaved: 1.5, ItemsRecycled: 1},
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/user/impact", "")
	authenticateAs(c, "seller@example.com")

	require.NoError(t, h.GetImpact(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"co2_saved":50`)
	assert.Contains(t, rec.Body.String(), `"items_recycled":1`)
	assert.Contains(t, rec.Body.String(), `"items_purchased":0`)
}

func TestUserHandler_GetImpact_Unauthenticated(t *testing.T) {
	h := NewUserHandler(mockUsecase.NewMockUserUsecase(t), testHandlerLogger())

	c, _ := newTestContext(t, http.MethodGet, "/api/user/impact", "")

	err := h.GetImpact(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredential)
}
