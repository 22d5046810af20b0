package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persistent payment record. Its status is mutated only by
// the reconciliation transaction or an explicit admin action, and the record
// is never deleted while its booking exists.
type Payment struct {
	ID            int64           `json:"id" db:"id"`
	BookingID     int64           `json:"booking_id" db:"booking_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Status        PaymentStatus   `json:"status" db:"status"`
	PaymentMethod *string         `json:"payment_method,omitempty" db:"payment_method"`
	TransactionID *string         `json:"transaction_id,omitempty" db:"transaction_id"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// PaymentDetail is a payment joined with the booking context the
// reconciliation needs: the owning user and the field whose night price is
// the authoritative expected amount at settlement time.
type PaymentDetail struct {
	Payment

	BookingStatus  string          `json:"booking_status" db:"booking_status"`
	FieldID        int64           `json:"field_id" db:"field_id"`
	FieldName      string          `json:"field_name" db:"field_name"`
	FieldNightPrice decimal.Decimal `json:"field_night_price" db:"field_night_price"`
	UserID         int64           `json:"user_id" db:"user_id"`
	UserName       string          `json:"user_name" db:"user_name"`
	UserEmail      string          `json:"user_email" db:"user_email"`
}

// ReconcileUpdate describes one atomic reconciliation write: the payment
// status transition plus its audit log entry and user notification. All
// three rows become visible together or not at all.
type ReconcileUpdate struct {
	PaymentID int64
	BookingID int64
	UserID    int64

	NewStatus         PaymentStatus
	TransactionStatus string
	Amount            decimal.Decimal
}
