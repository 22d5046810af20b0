package repository

import (
	"context"

	"sportcenter-backend/internal/domains/payment/model"
)

// PaymentRepository provides point lookups of payment records.
type PaymentRepository interface {
	// GetByID fetches a bare payment record.
	GetByID(ctx context.Context, paymentID int64) (*model.Payment, error)

	// GetDetail fetches a payment joined with its booking, field and user.
	// Returns model.ErrPaymentNotFound when the id does not resolve.
	GetDetail(ctx context.Context, paymentID int64) (*model.PaymentDetail, error)

	// ListByUser returns the payments belonging to a user's bookings.
	ListByUser(ctx context.Context, userID int64) ([]model.Payment, error)
}

// ReconcileStore applies one reconciliation as a single all-or-nothing
// transaction: the payment status update, an activity log entry and a user
// notification, plus the booking confirmation when the payment settles.
type ReconcileStore interface {
	// Apply returns applied=false when the payment was already at the target
	// status; in that case no rows were written (true idempotence - a repeat
	// delivery does not duplicate audit or notification rows).
	Apply(ctx context.Context, update model.ReconcileUpdate) (applied bool, err error)
}
