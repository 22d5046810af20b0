package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/payment/model"
	"sportcenter-backend/internal/domains/payment/service"
)

type stubWebhookService struct {
	result *service.ReconcileResult
	err    error

	lastStatus model.PaymentStatus
}

func (s *stubWebhookService) HandleNotification(ctx context.Context, raw []byte) (*service.ReconcileResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubWebhookService) AdminSetStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) (*service.ReconcileResult, error) {
	s.lastStatus = status
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func setupRouter(svc service.WebhookService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWebhookHandler(svc)
	r := gin.New()
	r.POST("/api/v1/webhooks/midtrans", h.HandleMidtransNotification)
	r.PATCH("/api/v1/admin/payments/:id/status", h.UpdateStatus)
	r.POST("/api/v1/admin/payments/:id/mark-paid", h.MarkPaid)
	return r
}

func TestHandleMidtransNotification_Success(t *testing.T) {
	svc := &stubWebhookService{result: &service.ReconcileResult{
		PaymentID: 42,
		BookingID: 7,
		UserID:    11,
		Status:    model.PaymentStatusPaid,
		Applied:   true,
	}}
	r := setupRouter(svc)

	body := `{"order_id":"PAY-42","transaction_status":"settlement","gross_amount":"300000.00"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/midtrans", strings.NewReader(body))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment notification processed", resp.Message)
	assert.Equal(t, int64(42), resp.PaymentID)
	assert.Equal(t, model.PaymentStatusPaid, resp.PaymentStatus)
}

func TestHandleMidtransNotification_TestNotification(t *testing.T) {
	svc := &stubWebhookService{result: &service.ReconcileResult{Test: true}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/midtrans", strings.NewReader(`{}`))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp model.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test notification acknowledged", resp.Message)
	assert.Zero(t, resp.PaymentID)
}

func TestHandleMidtransNotification_ErrorMapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"malformed", model.NewMalformedNotificationError("order_id missing"), http.StatusBadRequest, model.ErrCodeMalformedNotification},
		{"not found", model.NewPaymentNotFoundError(42), http.StatusNotFound, model.ErrCodePaymentNotFound},
		{"contention", model.NewLockContentionError(42), http.StatusConflict, model.ErrCodeLockContention},
		{"unknown status", model.NewUnknownTransactionStatusError("refund"), http.StatusInternalServerError, model.ErrCodeUnknownTransactionStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouter(&stubWebhookService{err: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/webhooks/midtrans", strings.NewReader(`{}`))
			r.ServeHTTP(w, req)

			require.Equal(t, tc.wantCode, w.Code)

			var resp struct {
				Success bool `json:"success"`
				Error   struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tc.wantErr, resp.Error.Code)
		})
	}
}

func TestUpdateStatus_ValidatesBody(t *testing.T) {
	r := setupRouter(&stubWebhookService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/payments/42/status", strings.NewReader(`{"status":"refunded"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_Success(t *testing.T) {
	svc := &stubWebhookService{result: &service.ReconcileResult{
		PaymentID: 42,
		BookingID: 7,
		Status:    model.PaymentStatusFailed,
		Applied:   true,
	}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/payments/42/status", strings.NewReader(`{"status":"failed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.PaymentStatusFailed, svc.lastStatus)
}

func TestMarkPaid(t *testing.T) {
	svc := &stubWebhookService{result: &service.ReconcileResult{
		PaymentID: 42,
		BookingID: 7,
		Status:    model.PaymentStatusPaid,
		Applied:   true,
	}}
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/payments/42/mark-paid", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.PaymentStatusPaid, svc.lastStatus)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/payments/notanid/mark-paid", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
