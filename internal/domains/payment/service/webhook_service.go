package service

import (
	"context"
	"fmt"

	"sportcenter-backend/internal/domains/payment/midtrans"
	"sportcenter-backend/internal/domains/payment/model"
	repo "sportcenter-backend/internal/domains/payment/repository"
	"sportcenter-backend/internal/infrastructure/realtime"
	"sportcenter-backend/pkg/lock"
	"sportcenter-backend/pkg/logger"
)

// =====================================================
// WEBHOOK SERVICE IMPLEMENTATION
// =====================================================

type webhookService struct {
	paymentRepo repo.PaymentRepository
	store       repo.ReconcileStore
	locks       lock.KeyLock
	broadcaster realtime.Broadcaster
	serverKey   string
}

func NewWebhookService(
	paymentRepo repo.PaymentRepository,
	store repo.ReconcileStore,
	locks lock.KeyLock,
	broadcaster realtime.Broadcaster,
	serverKey string,
) WebhookService {
	if broadcaster == nil {
		broadcaster = realtime.NopBroadcaster{}
	}
	return &webhookService{
		paymentRepo: paymentRepo,
		store:       store,
		locks:       locks,
		broadcaster: broadcaster,
		serverKey:   serverKey,
	}
}

// HandleNotification reconciles one gateway delivery.
//
// Flow: parse -> lock -> load payment with booking context -> resolve
// status -> atomic write -> best-effort fan-out. The per-payment lock
// serializes concurrent deliveries of the same notification; a contended
// delivery is rejected with ErrLockContention and the gateway's own retry
// finds the lock free later. The lock is advisory - the transaction in the
// reconcile store is the actual correctness boundary.
func (s *webhookService) HandleNotification(ctx context.Context, raw []byte) (*ReconcileResult, error) {
	parsed, err := midtrans.ParseNotification(raw)
	if err != nil {
		return nil, err
	}

	if parsed.IsTest {
		logger.Info("Acknowledged gateway test notification", map[string]interface{}{
			"order_id": parsed.OrderID,
		})
		return &ReconcileResult{Test: true}, nil
	}

	// Sandbox deliveries and the dashboard test tool are not always signed,
	// so a signature mismatch is surfaced in the logs without rejecting; the
	// payment lookup and the conditional update bound what a forged
	// delivery can do.
	if s.serverKey != "" && parsed.SignatureKey != "" && !parsed.SignatureValid(s.serverKey) {
		logger.Warn("Notification signature mismatch", map[string]interface{}{
			"payment_id": parsed.PaymentID,
			"order_id":   parsed.OrderID,
		})
	}

	lockKey := fmt.Sprintf("payment:%d", parsed.PaymentID)

	lockToken, acquired, err := s.locks.TryAcquire(ctx, lockKey)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire reconcile lock: %w", err)
	}
	if !acquired {
		return nil, model.NewLockContentionError(parsed.PaymentID)
	}
	// Released on every exit path; releasing is idempotent, and the token
	// keeps a delivery that outlived the hold TTL from freeing a lock that
	// a newer delivery holds.
	defer func() {
		if err := s.locks.Release(ctx, lockKey, lockToken); err != nil {
			logger.ErrorWith("Failed to release reconcile lock", err, map[string]interface{}{
				"payment_id": parsed.PaymentID,
			})
		}
	}()

	detail, err := s.paymentRepo.GetDetail(ctx, parsed.PaymentID)
	if err != nil {
		return nil, err
	}

	status, err := midtrans.ResolveStatus(parsed.TransactionStatus, parsed.GrossAmount, detail.FieldNightPrice)
	if err != nil {
		logger.ErrorWith("Unhandled transaction status in notification", err, map[string]interface{}{
			"payment_id":         parsed.PaymentID,
			"order_id":           parsed.OrderID,
			"transaction_status": parsed.TransactionStatus,
		})
		return nil, err
	}

	applied, err := s.store.Apply(ctx, model.ReconcileUpdate{
		PaymentID:         detail.ID,
		BookingID:         detail.BookingID,
		UserID:            detail.UserID,
		NewStatus:         status,
		TransactionStatus: parsed.TransactionStatus,
		Amount:            parsed.GrossAmount,
	})
	if err != nil {
		return nil, fmt.Errorf("reconcile transaction failed for payment %d: %w", detail.ID, err)
	}

	result := &ReconcileResult{
		PaymentID: detail.ID,
		BookingID: detail.BookingID,
		UserID:    detail.UserID,
		Status:    status,
		Applied:   applied,
	}

	if applied {
		s.fanOut(ctx, result)
	}

	logger.Info("Payment reconciled", map[string]interface{}{
		"payment_id": detail.ID,
		"booking_id": detail.BookingID,
		"status":     status,
		"applied":    applied,
	})

	return result, nil
}

// AdminSetStatus writes an admin-verified status through the reconcile
// transaction. Used when a webhook was missed but the payment is confirmed
// on the gateway dashboard.
func (s *webhookService) AdminSetStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) (*ReconcileResult, error) {
	detail, err := s.paymentRepo.GetDetail(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	applied, err := s.store.Apply(ctx, model.ReconcileUpdate{
		PaymentID:         detail.ID,
		BookingID:         detail.BookingID,
		UserID:            detail.UserID,
		NewStatus:         status,
		TransactionStatus: "manual",
		Amount:            detail.Amount,
	})
	if err != nil {
		return nil, fmt.Errorf("manual reconcile failed for payment %d: %w", paymentID, err)
	}

	result := &ReconcileResult{
		PaymentID: detail.ID,
		BookingID: detail.BookingID,
		UserID:    detail.UserID,
		Status:    status,
		Applied:   applied,
	}

	if applied {
		s.fanOut(ctx, result)
	}

	return result, nil
}

// fanOut emits the outcome to the user's private channel and the admin
// dashboard channel. Best-effort: the reconciliation is already durably
// committed, so emission failures are logged and swallowed and never change
// the HTTP response.
func (s *webhookService) fanOut(ctx context.Context, r *ReconcileResult) {
	err := s.broadcaster.Emit(ctx, realtime.UserChannel(r.UserID), realtime.EventPaymentUpdate, map[string]interface{}{
		"paymentId": r.PaymentID,
		"bookingId": r.BookingID,
		"status":    r.Status,
		"message":   fmt.Sprintf("Your payment status is now %s", r.Status),
	})
	if err != nil {
		logger.ErrorWith("Failed to emit payment update to user channel", err, map[string]interface{}{
			"payment_id": r.PaymentID,
			"user_id":    r.UserID,
		})
	}

	err = s.broadcaster.Emit(ctx, realtime.ChannelAdminPayments, realtime.EventStatusChange, map[string]interface{}{
		"paymentId": r.PaymentID,
		"bookingId": r.BookingID,
		"status":    r.Status,
		"userId":    r.UserID,
	})
	if err != nil {
		logger.ErrorWith("Failed to emit payment update to admin channel", err, map[string]interface{}{
			"payment_id": r.PaymentID,
		})
	}
}
