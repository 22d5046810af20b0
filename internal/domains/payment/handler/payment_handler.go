package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/payment/service"
	"sportcenter-backend/internal/shared/middleware"
	"sportcenter-backend/internal/shared/response"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListMine returns the authenticated user's payments.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	payments, err := h.paymentService.ListUserPayments(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, "Failed to list payments")
		return
	}

	response.Success(c, http.StatusOK, payments)
}

// GetDetail returns a payment joined with its booking context. Admin only.
func (h *PaymentHandler) GetDetail(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	detail, err := h.paymentService.GetPaymentDetail(c.Request.Context(), paymentID)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}
