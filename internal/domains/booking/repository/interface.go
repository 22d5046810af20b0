package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sportcenter-backend/internal/domains/booking/model"
)

// BookingRepository persists bookings and their companion payment rows.
type BookingRepository interface {
	// CreateWithPayment inserts the booking and its pending payment in one
	// transaction. Returns model.ErrSlotTaken when an overlapping booking
	// already holds the slot.
	CreateWithPayment(ctx context.Context, booking *model.Booking, amount decimal.Decimal) (paymentID int64, err error)

	GetByID(ctx context.Context, bookingID int64) (*model.Booking, error)
	GetDetail(ctx context.Context, bookingID int64) (*model.BookingDetail, error)

	ListByUser(ctx context.Context, userID int64, q model.ListBookingsQuery) ([]model.BookingDetail, int, error)
	ListAll(ctx context.Context, q model.ListBookingsQuery) ([]model.BookingDetail, int, error)

	// Cancel moves a pending booking to cancelled and fails its payment.
	// Status-guarded: returns model.ErrNotCancellable if the booking
	// already left the pending state.
	Cancel(ctx context.Context, bookingID int64) error

	// ExpireOverdue releases pending bookings whose payment deadline has
	// passed. Returns the ids of every booking it expired, up to limit.
	// Concurrent confirmation wins: the guard only matches status pending.
	ExpireOverdue(ctx context.Context, now time.Time, limit int) ([]int64, error)

	GetStats(ctx context.Context) (*model.BookingStats, error)
	GetBranchRevenue(ctx context.Context, from, to time.Time) ([]model.BranchRevenue, error)
}
