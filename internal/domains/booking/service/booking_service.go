package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"sportcenter-backend/internal/domains/booking/model"
	"sportcenter-backend/internal/domains/booking/repository"
	paymodel "sportcenter-backend/internal/domains/payment/model"
	"sportcenter-backend/pkg/logger"
)

// FieldPricing is the slice of field state the booking flow needs. The
// field domain provides the implementation; the indirection keeps the two
// domains decoupled.
type FieldPricing struct {
	FieldID    int64
	PriceDay   decimal.Decimal
	PriceNight decimal.Decimal
	Active     bool
}

type FieldPricingProvider interface {
	GetFieldPricing(ctx context.Context, fieldID int64) (*FieldPricing, error)
}

// =====================================================
// BOOKING SERVICE IMPLEMENTATION
// =====================================================

type bookingService struct {
	bookingRepo repository.BookingRepository
	pricing     FieldPricingProvider
	now         func() time.Time
}

func NewBookingService(bookingRepo repository.BookingRepository, pricing FieldPricingProvider) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		pricing:     pricing,
		now:         time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req model.CreateBookingRequest) (*model.CreateBookingResponse, error) {
	bookingDate, err := time.Parse("2006-01-02", req.BookingDate)
	if err != nil {
		return nil, model.NewInvalidTimeRangeError("bookingDate must be YYYY-MM-DD")
	}
	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, model.NewInvalidTimeRangeError("startTime must be RFC3339")
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, model.NewInvalidTimeRangeError("endTime must be RFC3339")
	}
	if !endTime.After(startTime) {
		return nil, model.NewInvalidTimeRangeError("endTime must be after startTime")
	}
	if startTime.Before(s.now()) {
		return nil, model.NewInvalidTimeRangeError("booking must be in the future")
	}

	pricing, err := s.pricing.GetFieldPricing(ctx, req.FieldID)
	if err != nil {
		return nil, err
	}
	if !pricing.Active {
		return nil, model.NewInvalidTimeRangeError(fmt.Sprintf("field %d is not open for booking", req.FieldID))
	}

	amount := bookingAmount(pricing, startTime, endTime)

	booking := &model.Booking{
		UserID:          userID,
		FieldID:         req.FieldID,
		BookingDate:     bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		Status:          model.BookingStatusPending,
		PaymentDeadline: s.now().Add(model.PaymentDeadlineMinutes * time.Minute),
	}

	paymentID, err := s.bookingRepo.CreateWithPayment(ctx, booking, amount)
	if err != nil {
		return nil, err
	}

	logger.Info("Booking created", map[string]interface{}{
		"booking_id": booking.ID,
		"payment_id": paymentID,
		"user_id":    userID,
		"field_id":   req.FieldID,
	})

	return &model.CreateBookingResponse{
		Booking:        booking,
		PaymentID:      paymentID,
		OrderReference: fmt.Sprintf("%s%d", paymodel.OrderIDPrefix, paymentID),
		Amount:         amount,
	}, nil
}

// bookingAmount prices a slot by the hour. Hours starting at or after the
// night cutoff bill at the night rate, earlier hours at the day rate.
func bookingAmount(pricing *FieldPricing, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		hourEnd := t.Add(time.Hour)
		if hourEnd.After(end) {
			hourEnd = end
		}
		fraction := decimal.NewFromFloat(hourEnd.Sub(t).Hours())

		rate := pricing.PriceDay
		if t.Hour() >= model.NightRateStartHour {
			rate = pricing.PriceNight
		}
		total = total.Add(rate.Mul(fraction))
	}
	return total
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int64, isAdmin bool) (*model.BookingDetail, error) {
	detail, err := s.bookingRepo.GetDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && detail.UserID != userID {
		return nil, model.NewForbiddenBookingError(bookingID)
	}
	return detail, nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID int64, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	q.Normalize()
	return s.bookingRepo.ListByUser(ctx, userID, q)
}

func (s *bookingService) ListAllBookings(ctx context.Context, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	q.Normalize()
	return s.bookingRepo.ListAll(ctx, q)
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID int64, isAdmin bool) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !isAdmin && booking.UserID != userID {
		return model.NewForbiddenBookingError(bookingID)
	}
	return s.bookingRepo.Cancel(ctx, bookingID)
}

func (s *bookingService) GetStats(ctx context.Context) (*model.BookingStats, error) {
	return s.bookingRepo.GetStats(ctx)
}

func (s *bookingService) GetBranchRevenue(ctx context.Context, from, to time.Time) ([]model.BranchRevenue, error) {
	return s.bookingRepo.GetBranchRevenue(ctx, from, to)
}
