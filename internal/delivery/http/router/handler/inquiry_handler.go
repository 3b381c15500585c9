package handler

import (
	"log/slog"
	"net/http"

	"ecowave/internal/delivery/http/response"
	"ecowave/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InquiryHandler holds dependencies for buyer inquiry endpoints.
type InquiryHandler struct {
	inquiryUsecase usecase.InquiryUsecase
	logger         *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler, injected by Fx.
func NewInquiryHandler(inquiryUsecase usecase.InquiryUsecase, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{
		inquiryUsecase: inquiryUsecase,
		logger:         logger,
	}
}

type submitInquiryRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	BuyerName    string `json:"buyer_name" validate:"required"`
	BuyerEmail   string `json:"buyer_email" validate:"required,email"`
	BuyerMessage string `json:"buyer_message" validate:"required"`
}

// Submit records a buyer inquiry and reports whether the seller notification
// went out.
func (h *InquiryHandler) Submit(c echo.Context) error {
	var req submitInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.inquiryUsecase.SubmitInquiry(c.Request().Context(), &usecase.SubmitInquiryInput{
		ProductID:  req.ProductID,
		BuyerName:  req.BuyerName,
		BuyerEmail: req.BuyerEmail,
		Message:    req.BuyerMessage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"inquiry":    output.Inquiry,
		"email_sent": output.EmailSent,
	}, "Inquiry submitted successfully")
}
