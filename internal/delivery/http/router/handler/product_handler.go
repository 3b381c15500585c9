package handler

import (
	"log/slog"
	"net/http"

	"ecowave/internal/delivery/http/middleware"
	"ecowave/internal/delivery/http/response"
	domainerrors "ecowave/internal/domain/errors"
	"ecowave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for listing and sale endpoints.
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	saleUsecase    usecase.SaleUsecase
	logger         *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(productUsecase usecase.ProductUsecase, saleUsecase usecase.SaleUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		saleUsecase:    saleUsecase,
		logger:         logger,
	}
}

type createProductRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" validate:"gte=0"`
	Badge          string  `json:"badge"`
	Image          string  `json:"image"`
	Category       string  `json:"category" validate:"required"`
	Material       string  `json:"material"`
	SellerLocation string  `json:"seller_location"`
	SellerPhone    string  `json:"seller_phone"`
}

type updateProductRequest struct {
	Title          string  `json:"title" validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price" validate:"gte=0"`
	Badge          string  `json:"badge"`
	Image          string  `json:"image"`
	Category       string  `json:"category"`
	SellerLocation string  `json:"seller_location"`
	SellerPhone    string  `json:"seller_phone"`
}

type markSoldRequest struct {
	BuyerEmail string `json:"buyer_email" validate:"omitempty,email"`
}

// Search lists products with optional category and text filters.
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.productUsecase.Search(c.Request().Context(), &usecase.SearchProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Get retrieves a single listing.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUsecase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// ListBySeller lists all products published under a seller email.
func (h *ProductHandler) ListBySeller(c echo.Context) error {
	products, err := h.productUsecase.ListBySeller(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// Create publishes a new listing under the authenticated user.
func (h *ProductHandler) Create(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrMissingCredential
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productUsecase.Create(c.Request().Context(), &usecase.CreateProductInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Badge:          req.Badge,
		Image:          req.Image,
		Category:       req.Category,
		Material:       req.Material,
		SellerEmail:    user.Email,
		SellerLocation: req.SellerLocation,
		SellerPhone:    req.SellerPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update modifies a listing owned by the authenticated user.
func (h *ProductHandler) Update(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrMissingCredential
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.productUsecase.Update(c.Request().Context(), c.Param("id"), user.Email, &usecase.UpdateProductInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		Badge:          req.Badge,
		Image:          req.Image,
		Category:       req.Category,
		SellerLocation: req.SellerLocation,
		SellerPhone:    req.SellerPhone,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete removes a listing owned by the authenticated user.
func (h *ProductHandler) Delete(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrMissingCredential
	}

	if err := h.productUsecase.Delete(c.Request().Context(), c.Param("id"), user.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": c.Param("id")}, "Product deleted successfully")
}

// MarkSold records a completed sale of a listing owned by the authenticated
// user, crediting the eco-impact ledgers.
func (h *ProductHandler) MarkSold(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrMissingCredential
	}

	var req markSoldRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.saleUsecase.MarkSold(c.Request().Context(), &usecase.MarkSoldInput{
		ProductID:   c.Param("id"),
		SellerEmail: user.Email,
		BuyerEmail:  req.BuyerEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"product":        output.Product,
		"buyer_credited": output.BuyerCredited,
	}, "Product marked as sold")
}
