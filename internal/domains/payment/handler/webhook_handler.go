package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/payment/model"
	"sportcenter-backend/internal/domains/payment/service"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

// =====================================================
// WEBHOOK HANDLER
// =====================================================

type WebhookHandler struct {
	webhookService service.WebhookService
}

func NewWebhookHandler(webhookService service.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// HandleMidtransNotification receives payment notifications from the
// gateway. The gateway retries on any non-2xx, so the status codes here
// drive its redelivery behavior: contention returns 409 to provoke a
// retry, while a malformed body returns 400 so a broken payload is not
// retried forever.
func (h *WebhookHandler) HandleMidtransNotification(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Unable to read notification body")
		return
	}

	result, err := h.webhookService.HandleNotification(c.Request.Context(), raw)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	if result.Test {
		c.JSON(http.StatusOK, model.WebhookResponse{
			Message: "Test notification acknowledged",
		})
		return
	}

	c.JSON(http.StatusOK, model.WebhookResponse{
		Message:       "Payment notification processed",
		PaymentID:     result.PaymentID,
		PaymentStatus: result.Status,
	})
}

// UpdateStatus lets an admin correct a payment whose webhook was missed.
func (h *WebhookHandler) UpdateStatus(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	var req model.AdminSetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	result, err := h.webhookService.AdminSetStatus(c.Request.Context(), paymentID, model.PaymentStatus(req.Status))
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"paymentId":     result.PaymentID,
		"bookingId":     result.BookingID,
		"paymentStatus": result.Status,
		"applied":       result.Applied,
	})
}

// MarkPaid is a shortcut for the common manual correction.
func (h *WebhookHandler) MarkPaid(c *gin.Context) {
	paymentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid payment ID")
		return
	}

	result, err := h.webhookService.AdminSetStatus(c.Request.Context(), paymentID, model.PaymentStatusPaid)
	if err != nil {
		respondPaymentError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"paymentId":     result.PaymentID,
		"bookingId":     result.BookingID,
		"paymentStatus": result.Status,
		"applied":       result.Applied,
	})
}

// respondPaymentError maps the payment error taxonomy onto HTTP statuses.
func respondPaymentError(c *gin.Context, err error) {
	var payErr *model.PaymentError
	code := model.ErrCodeTransactionFailure
	message := "Failed to process payment notification"
	if errors.As(err, &payErr) {
		code = payErr.Code
		message = payErr.Message
	}

	switch {
	case errors.Is(err, model.ErrMalformedNotification):
		response.ErrorResponse(c, http.StatusBadRequest, code, message)
	case errors.Is(err, model.ErrPaymentNotFound):
		response.ErrorResponse(c, http.StatusNotFound, code, message)
	case errors.Is(err, model.ErrLockContention):
		response.ErrorResponse(c, http.StatusConflict, code, message)
	default:
		logger.Error("Payment reconciliation failed", err)
		response.ErrorResponse(c, http.StatusInternalServerError, code, message)
	}
}
