package service

import (
	"context"
	"time"

	"sportcenter-backend/internal/domains/booking/model"
)

// BookingService covers the customer booking flow and the admin surfaces.
type BookingService interface {
	CreateBooking(ctx context.Context, userID int64, req model.CreateBookingRequest) (*model.CreateBookingResponse, error)
	GetBooking(ctx context.Context, userID, bookingID int64, isAdmin bool) (*model.BookingDetail, error)
	ListUserBookings(ctx context.Context, userID int64, q model.ListBookingsQuery) ([]model.BookingDetail, int, error)
	ListAllBookings(ctx context.Context, q model.ListBookingsQuery) ([]model.BookingDetail, int, error)
	CancelBooking(ctx context.Context, userID, bookingID int64, isAdmin bool) error

	GetStats(ctx context.Context) (*model.BookingStats, error)
	GetBranchRevenue(ctx context.Context, from, to time.Time) ([]model.BranchRevenue, error)
}
