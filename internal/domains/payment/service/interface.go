package service

import (
	"context"

	"sportcenter-backend/internal/domains/payment/model"
)

// ReconcileResult is what a processed notification yields: the applied
// status plus enough context for the HTTP response and the fan-out.
type ReconcileResult struct {
	PaymentID int64
	BookingID int64
	UserID    int64
	Status    model.PaymentStatus

	// Applied is false when the payment was already at the target status
	// and the delivery was a no-op.
	Applied bool

	// Test marks a gateway test notification that was acknowledged without
	// touching any state.
	Test bool
}

// WebhookService reconciles gateway payment notifications with internal
// payment state.
type WebhookService interface {
	// HandleNotification processes one raw notification delivery.
	// Error taxonomy (all typed in the payment model package):
	// ErrMalformedNotification, ErrPaymentNotFound, ErrLockContention,
	// ErrUnknownTransactionStatus; anything else is a transaction failure.
	HandleNotification(ctx context.Context, raw []byte) (*ReconcileResult, error)

	// AdminSetStatus applies a manually verified status through the same
	// reconcile transaction, so audit and notification rows stay consistent
	// with the webhook path.
	AdminSetStatus(ctx context.Context, paymentID int64, status model.PaymentStatus) (*ReconcileResult, error)
}
