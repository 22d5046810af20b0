package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sportcenter-backend/internal/domains/payment/model"
)

// =====================================================
// PAYMENT REPOSITORY IMPLEMENTATION
// =====================================================

type paymentRepository struct {
	pool *pgxpool.Pool
}

func NewPaymentRepository(pool *pgxpool.Pool) PaymentRepository {
	return &paymentRepository{pool: pool}
}

func (r *paymentRepository) GetByID(ctx context.Context, paymentID int64) (*model.Payment, error) {
	query := `
		SELECT id, booking_id, amount, status, payment_method, transaction_id,
		       created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var p model.Payment
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&p.ID, &p.BookingID, &p.Amount, &p.Status, &p.PaymentMethod,
		&p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewPaymentNotFoundError(paymentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %d: %w", paymentID, err)
	}

	return &p, nil
}

// GetDetail loads the payment with its booking, the booked field and the
// owning user in one round trip. The field night price is read here, at
// reconciliation time, so later price changes never retroactively affect an
// in-flight payment.
func (r *paymentRepository) GetDetail(ctx context.Context, paymentID int64) (*model.PaymentDetail, error) {
	query := `
		SELECT p.id, p.booking_id, p.amount, p.status, p.payment_method,
		       p.transaction_id, p.created_at, p.updated_at,
		       b.status,
		       f.id, f.name, f.price_night,
		       u.id, u.name, u.email
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		JOIN fields f ON f.id = b.field_id
		JOIN users u ON u.id = b.user_id
		WHERE p.id = $1
	`

	var d model.PaymentDetail
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&d.ID, &d.BookingID, &d.Amount, &d.Status, &d.PaymentMethod,
		&d.TransactionID, &d.CreatedAt, &d.UpdatedAt,
		&d.BookingStatus,
		&d.FieldID, &d.FieldName, &d.FieldNightPrice,
		&d.UserID, &d.UserName, &d.UserEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewPaymentNotFoundError(paymentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment detail %d: %w", paymentID, err)
	}

	return &d, nil
}

func (r *paymentRepository) ListByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	query := `
		SELECT p.id, p.booking_id, p.amount, p.status, p.payment_method,
		       p.transaction_id, p.created_at, p.updated_at
		FROM payments p
		JOIN bookings b ON b.id = p.booking_id
		WHERE b.user_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for user %d: %w", userID, err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(
			&p.ID, &p.BookingID, &p.Amount, &p.Status, &p.PaymentMethod,
			&p.TransactionID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}
