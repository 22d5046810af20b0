package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sportcenter-backend/internal/domains/payment/model"
	"sportcenter-backend/pkg/database"
)

// =====================================================
// RECONCILE STORE IMPLEMENTATION
// =====================================================

type reconcileStore struct {
	pool *pgxpool.Pool
}

func NewReconcileStore(pool *pgxpool.Pool) ReconcileStore {
	return &reconcileStore{pool: pool}
}

// Apply performs the reconciliation write as one transaction:
//
//  1. conditional payment status update - a payment already at the target
//     status short-circuits the whole write (no duplicate audit rows),
//  2. booking confirmation when the payment settled,
//  3. activity log insert,
//  4. user notification insert.
//
// A failure at any step rolls everything back, leaving the payment at its
// pre-transaction status with no partial rows.
func (s *reconcileStore) Apply(ctx context.Context, u model.ReconcileUpdate) (bool, error) {
	return database.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (bool, error) {
		tag, err := tx.Exec(ctx, `
			UPDATE payments
			SET status = $1, updated_at = NOW()
			WHERE id = $2 AND status <> $1
		`, u.NewStatus, u.PaymentID)
		if err != nil {
			return false, fmt.Errorf("failed to update payment %d status: %w", u.PaymentID, err)
		}

		if tag.RowsAffected() == 0 {
			// Already at the target status: repeat delivery, nothing to do.
			return false, nil
		}

		if u.NewStatus == model.PaymentStatusPaid || u.NewStatus == model.PaymentStatusDPPaid {
			// A booking that settled concurrently with the expiry sweep must
			// win, so confirmation too is status-guarded.
			if _, err := tx.Exec(ctx, `
				UPDATE bookings
				SET status = 'confirmed', updated_at = NOW()
				WHERE id = $1 AND status = 'pending'
			`, u.BookingID); err != nil {
				return false, fmt.Errorf("failed to confirm booking %d: %w", u.BookingID, err)
			}
		}

		details, err := json.Marshal(map[string]interface{}{
			"bookingId":         u.BookingID,
			"paymentId":         u.PaymentID,
			"transactionStatus": u.TransactionStatus,
			"amount":            u.Amount,
		})
		if err != nil {
			return false, fmt.Errorf("failed to marshal activity details: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO activity_logs (user_id, action, details, created_at)
			VALUES ($1, $2, $3, NOW())
		`, u.UserID, fmt.Sprintf("Payment %s for booking %d", u.NewStatus, u.BookingID), details); err != nil {
			return false, fmt.Errorf("failed to insert activity log: %w", err)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO notifications (user_id, title, message, is_read, type, link_id, created_at)
			VALUES ($1, $2, $3, FALSE, $4, $5, NOW())
		`,
			u.UserID,
			"Payment Status Updated",
			fmt.Sprintf("Your payment for booking #%d status is now %s.", u.BookingID, u.NewStatus),
			model.NotificationTypePayment,
			strconv.FormatInt(u.PaymentID, 10),
		); err != nil {
			return false, fmt.Errorf("failed to insert notification: %w", err)
		}

		return true, nil
	})
}
