package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateBookingRequest struct {
	FieldID     int64  `json:"fieldId"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
}

func (r CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FieldID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.BookingDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&r.StartTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&r.EndTime, validation.Required, validation.Date(time.RFC3339)),
	)
}

type ListBookingsQuery struct {
	Status string `form:"status"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
}

func (q *ListBookingsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// CreateBookingResponse carries the order reference the client passes to
// the payment gateway checkout.
type CreateBookingResponse struct {
	Booking        *Booking        `json:"booking"`
	PaymentID      int64           `json:"paymentId"`
	OrderReference string          `json:"orderReference"`
	Amount         decimal.Decimal `json:"amount"`
}
