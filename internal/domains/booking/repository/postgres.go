package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"sportcenter-backend/internal/domains/booking/model"
	"sportcenter-backend/pkg/database"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresBookingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &postgresBookingRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresBookingRepository) CreateWithPayment(ctx context.Context, booking *model.Booking, amount decimal.Decimal) (int64, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		// The conflict check and insert run in the same transaction so two
		// concurrent requests for the same slot cannot both pass the check.
		var conflicts int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*)
			FROM bookings
			WHERE field_id = $1
			  AND booking_date = $2
			  AND status IN ('pending', 'confirmed')
			  AND start_time < $4
			  AND end_time > $3
		`, booking.FieldID, booking.BookingDate, booking.StartTime, booking.EndTime).Scan(&conflicts)
		if err != nil {
			return 0, fmt.Errorf("failed to check slot availability: %w", err)
		}
		if conflicts > 0 {
			return 0, model.NewSlotTakenError(booking.FieldID)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO bookings (user_id, field_id, booking_date, start_time, end_time, status, payment_deadline)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at
		`, booking.UserID, booking.FieldID, booking.BookingDate, booking.StartTime, booking.EndTime,
			booking.Status, booking.PaymentDeadline,
		).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
		if err != nil {
			return 0, fmt.Errorf("failed to create booking: %w", err)
		}

		var paymentID int64
		err = tx.QueryRow(ctx, `
			INSERT INTO payments (booking_id, amount, status)
			VALUES ($1, $2, 'pending')
			RETURNING id
		`, booking.ID, amount).Scan(&paymentID)
		if err != nil {
			return 0, fmt.Errorf("failed to create payment for booking %d: %w", booking.ID, err)
		}

		return paymentID, nil
	})
}

// =====================================================
// READS
// =====================================================

func (r *postgresBookingRepository) GetByID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	var b model.Booking
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, field_id, booking_date, start_time, end_time, status, payment_deadline, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`, bookingID).Scan(
		&b.ID, &b.UserID, &b.FieldID, &b.BookingDate, &b.StartTime, &b.EndTime,
		&b.Status, &b.PaymentDeadline, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBookingNotFoundError(bookingID)
		}
		return nil, fmt.Errorf("failed to get booking %d: %w", bookingID, err)
	}
	return &b, nil
}

const bookingDetailQuery = `
	SELECT b.id, b.user_id, b.field_id, b.booking_date, b.start_time, b.end_time,
	       b.status, b.payment_deadline, b.created_at, b.updated_at,
	       f.name, br.id, br.name, u.name,
	       p.id, p.status, p.amount
	FROM bookings b
	JOIN fields f ON f.id = b.field_id
	JOIN branches br ON br.id = f.branch_id
	JOIN users u ON u.id = b.user_id
	LEFT JOIN payments p ON p.booking_id = b.id
`

func scanBookingDetail(row pgx.Row) (*model.BookingDetail, error) {
	var d model.BookingDetail
	err := row.Scan(
		&d.ID, &d.UserID, &d.FieldID, &d.BookingDate, &d.StartTime, &d.EndTime,
		&d.Status, &d.PaymentDeadline, &d.CreatedAt, &d.UpdatedAt,
		&d.FieldName, &d.BranchID, &d.BranchName, &d.UserName,
		&d.PaymentID, &d.PaymentStatus, &d.PaymentAmount,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *postgresBookingRepository) GetDetail(ctx context.Context, bookingID int64) (*model.BookingDetail, error) {
	row := r.pool.QueryRow(ctx, bookingDetailQuery+` WHERE b.id = $1`, bookingID)
	detail, err := scanBookingDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBookingNotFoundError(bookingID)
		}
		return nil, fmt.Errorf("failed to get booking detail %d: %w", bookingID, err)
	}
	return detail, nil
}

func (r *postgresBookingRepository) ListByUser(ctx context.Context, userID int64, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	where := ` WHERE b.user_id = $1`
	args := []interface{}{userID}
	if q.Status != "" {
		where += ` AND b.status = $2`
		args = append(args, q.Status)
	}
	return r.listDetails(ctx, where, args, q)
}

func (r *postgresBookingRepository) ListAll(ctx context.Context, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	where := ``
	args := []interface{}{}
	if q.Status != "" {
		where = ` WHERE b.status = $1`
		args = append(args, q.Status)
	}
	return r.listDetails(ctx, where, args, q)
}

func (r *postgresBookingRepository) listDetails(ctx context.Context, where string, args []interface{}, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	countQuery := `SELECT COUNT(*) FROM bookings b` + where
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	offset := (q.Page - 1) * q.Limit
	query := fmt.Sprintf("%s%s ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d",
		bookingDetailQuery, where, len(args)+1, len(args)+2)
	args = append(args, q.Limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	details := make([]model.BookingDetail, 0, q.Limit)
	for rows.Next() {
		d, err := scanBookingDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking row: %w", err)
		}
		details = append(details, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate booking rows: %w", err)
	}

	return details, total, nil
}

// =====================================================
// CANCEL
// =====================================================

func (r *postgresBookingRepository) Cancel(ctx context.Context, bookingID int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE bookings
			SET status = 'cancelled', updated_at = NOW()
			WHERE id = $1 AND status = 'pending'
		`, bookingID)
		if err != nil {
			return fmt.Errorf("failed to cancel booking %d: %w", bookingID, err)
		}
		if tag.RowsAffected() == 0 {
			b, err := r.GetByID(ctx, bookingID)
			if err != nil {
				return err
			}
			return model.NewNotCancellableError(bookingID, b.Status)
		}

		_, err = tx.Exec(ctx, `
			UPDATE payments
			SET status = 'failed', updated_at = NOW()
			WHERE booking_id = $1 AND status = 'pending'
		`, bookingID)
		if err != nil {
			return fmt.Errorf("failed to fail payment for booking %d: %w", bookingID, err)
		}
		return nil
	})
}

// =====================================================
// EXPIRY SWEEP
// =====================================================

func (r *postgresBookingRepository) ExpireOverdue(ctx context.Context, now time.Time, limit int) ([]int64, error) {
	// The subquery bounds one sweep; the status guard makes the sweep
	// re-run safe and lets a concurrent payment confirmation win.
	rows, err := r.pool.Query(ctx, `
		UPDATE bookings
		SET status = 'expired', updated_at = NOW()
		WHERE id IN (
			SELECT id FROM bookings
			WHERE status = 'pending' AND payment_deadline < $1
			ORDER BY payment_deadline
			LIMIT $2
		) AND status = 'pending'
		RETURNING id
	`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to expire overdue bookings: %w", err)
	}
	defer rows.Close()

	var expired []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan expired booking id: %w", err)
		}
		expired = append(expired, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expired bookings: %w", err)
	}

	return expired, nil
}

// =====================================================
// REPORTS
// =====================================================

func (r *postgresBookingRepository) GetStats(ctx context.Context) (*model.BookingStats, error) {
	var s model.BookingStats
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COUNT(*) FILTER (WHERE status = 'confirmed'),
		       COUNT(*) FILTER (WHERE status = 'cancelled'),
		       COUNT(*) FILTER (WHERE status = 'completed'),
		       COUNT(*) FILTER (WHERE status = 'expired')
		FROM bookings
	`).Scan(&s.Total, &s.Pending, &s.Confirmed, &s.Cancelled, &s.Completed, &s.Expired)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}
	return &s, nil
}

func (r *postgresBookingRepository) GetBranchRevenue(ctx context.Context, from, to time.Time) ([]model.BranchRevenue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT br.id, br.name, COUNT(DISTINCT b.id), COALESCE(SUM(p.amount), 0)
		FROM branches br
		JOIN fields f ON f.branch_id = br.id
		JOIN bookings b ON b.field_id = f.id
		JOIN payments p ON p.booking_id = b.id
		WHERE p.status IN ('paid', 'dp_paid')
		  AND b.booking_date >= $1 AND b.booking_date <= $2
		GROUP BY br.id, br.name
		ORDER BY SUM(p.amount) DESC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch revenue: %w", err)
	}
	defer rows.Close()

	var report []model.BranchRevenue
	for rows.Next() {
		var row model.BranchRevenue
		if err := rows.Scan(&row.BranchID, &row.BranchName, &row.BookingCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate revenue rows: %w", err)
	}

	return report, nil
}
