package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecowave/internal/delivery/http/middleware"
	"ecowave/internal/delivery/http/validator"
	"ecowave/internal/domain/entity"
	domainerrors "ecowave/internal/domain/errors"
	mockUsecase "ecowave/internal/mocks/usecase"
	"ecowave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testHandlerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestContext(t *testing.T, method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticateAs(c echo.Context, email string) {
	c.Set(middleware.ContextKeyUser, &entity.User{Email: email, Name: "Test User"})
}

func TestProductHandler_Search(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(productUC, mockUsecase.NewMockSaleUsecase(t), testHandlerLogger())

	productUC.On("Search", mock.Anything, &usecase.SearchProductsInput{Category: "books", Search: "go"}).
		Return([]*entity.Product{{ID: "prod-1", Title: "Gopher Guide"}}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/products?category=books&search=go", "")

	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Gopher Guide")
}

func TestProductHandler_Create_Success(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(productUC, mockUsecase.NewMockSaleUsecase(t), testHandlerLogger())

	productUC.On("Create", mock.Anything, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
		return input.Title == "Denim Jacket" && input.SellerEmail == "seller@example.com"
	})).Return(&entity.Product{ID: "prod-1", Title: "Denim Jacket", SellerEmail: "seller@example.com"}, nil)

	body := `{"title":"Denim Jacket","price":40,"category":"clothing"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/products", body)
	authenticateAs(c, "seller@example.com")

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
}

func TestProductHandler_Get_EmitsSnakeCaseFields(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(productUC, mockUsecase.NewMockSaleUsecase(t), testHandlerLogger())

	productUC.On("Get", mock.Anything, "prod-1").Return(&entity.Product{
		ID:          "prod-1",
		Title:       "Denim Jacket",
		Category:    "clothing",
		EcoImpact:   entity.ImpactForCategory("clothing"),
		SellerEmail: "seller@example.com",
		Status:      entity.ProductStatusActive,
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/api/products/prod-1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod-1")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"prod-1"`)
	assert.Contains(t, rec.Body.String(), `"seller_email":"seller@example.com"`)
	assert.Contains(t, rec.Body.String(), `"eco_impact":{"co2":15,"water":2000,"waste":0.5}`)
	assert.NotContains(t, rec.Body.String(), `"SellerEmail"`)
}

func TestProductHandler_Create_MissingTitleFailsValidation(t *testing.T) {
	h := NewProductHandler(mockUsecase.NewMockProductUsecase(t), mockUsecase.NewMockSaleUsecase(t), testHandlerLogger())

	c, _ := newTestContext(t, http.MethodPost, "/api/products", `{"price":40,"category":"clothing"}`)
	authenticateAs(c, "seller@example.com")

	err := h.Create(c)
	assert.ErrorContains(t, err, "validation")
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	h := NewProductHandler(mockUsecase.NewMockProductUsecase(t), mockUsecase.NewMockSaleUsecase(t), testHandlerLogger())

	c, _ := newTestContext(t, http.MethodPost, "/api/products", `{"title":"x","category":"other"}`)

	err := h.Create(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingCredential)
}

func TestProductHandler_MarkSold_UsesAuthenticatedSeller(t *testing.T) {
	saleUC := mockUsecase.NewMockSaleUsecase(t)
	h := NewProductHandler(mockUsecase.NewMockProductUsecase(t), saleUC, testHandlerLogger())

	saleUC.On("MarkSold", mock.Anything, &usecase.MarkSoldInput{
		ProductID:   "prod-1",
		SellerEmail: "seller@example.com",
		BuyerEmail:  "buyer@example.com",
	}).Return(&usecase.MarkSoldOutput{
		Product:       &entity.Product{ID: "prod-1", Status: entity.ProductStatusSold},
		BuyerCredited: true,
	}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/api/products/prod-1/sold", `{"buyer_email":"buyer@example.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("prod-1")
	authenticateAs(c, "seller@example.com")

	require.NoError(t, h.MarkSold(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"buyer_credited":true`)
}

func TestProductHandler_MarkSold_PropagatesAlreadySold(t *testing.T) {
	saleUC := mockUsecase.NewMockSaleUsecase(t)
	h := NewProductHandler(mockUsecase.NewMockProductUsecase(t), saleUC, testHandlerLogger())

	saleUC.On("MarkSold", mock.Anything, mock.AnythingOfType("*usecase.MarkSoldInput")).
		Return(nil, domainerrors.ErrAlreadySold)

	c, _ := newTestContext(t, http.MethodPost, "/api/products/prod-1/sold", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("prod-1")
	authenticateAs(c, "seller@example.com")

	err := h.MarkSold(c)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadySold)
}

func TestProductHandler_Delete_PropagatesForbidden(t *testing.T) {
	productUC := mockUsecase.NewMockProductUsecase(t)
	h := NewProductHandler(productUC, mockUsecase.NewMockSaleUsecase(t), testHandlerLogger())

	productUC.On("Delete", mock.Anything, "prod-1", "intruder@example.com").Return(domainerrors.ErrForbidden)

	c, _ := newTestContext(t, http.MethodDelete, "/api/products/prod-1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod-1")
	authenticateAs(c, "intruder@example.com")

	err := h.Delete(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
