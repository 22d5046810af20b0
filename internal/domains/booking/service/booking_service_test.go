package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/booking/model"
)

type fakeBookingRepo struct {
	createErr error
	paymentID int64
	created   *model.Booking

	byID      *model.Booking
	cancelErr error
	cancelled []int64
}

func (f *fakeBookingRepo) CreateWithPayment(ctx context.Context, booking *model.Booking, amount decimal.Decimal) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	booking.ID = 101
	f.created = booking
	return f.paymentID, nil
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	if f.byID == nil || f.byID.ID != bookingID {
		return nil, model.NewBookingNotFoundError(bookingID)
	}
	return f.byID, nil
}

func (f *fakeBookingRepo) GetDetail(ctx context.Context, bookingID int64) (*model.BookingDetail, error) {
	if f.byID == nil || f.byID.ID != bookingID {
		return nil, model.NewBookingNotFoundError(bookingID)
	}
	return &model.BookingDetail{Booking: *f.byID}, nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID int64, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) ListAll(ctx context.Context, q model.ListBookingsQuery) ([]model.BookingDetail, int, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, bookingID int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, bookingID)
	return nil
}

func (f *fakeBookingRepo) ExpireOverdue(ctx context.Context, now time.Time, limit int) ([]int64, error) {
	return nil, nil
}

func (f *fakeBookingRepo) GetStats(ctx context.Context) (*model.BookingStats, error) {
	return &model.BookingStats{}, nil
}

func (f *fakeBookingRepo) GetBranchRevenue(ctx context.Context, from, to time.Time) ([]model.BranchRevenue, error) {
	return nil, nil
}

type fakePricing struct {
	pricing *FieldPricing
	err     error
}

func (f *fakePricing) GetFieldPricing(ctx context.Context, fieldID int64) (*FieldPricing, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pricing, nil
}

func activePricing() *fakePricing {
	return &fakePricing{pricing: &FieldPricing{
		FieldID:    3,
		PriceDay:   decimal.NewFromInt(200000),
		PriceNight: decimal.NewFromInt(300000),
		Active:     true,
	}}
}

func newTestService(repo *fakeBookingRepo, pricing FieldPricingProvider, now time.Time) *bookingService {
	svc := NewBookingService(repo, pricing).(*bookingService)
	svc.now = func() time.Time { return now }
	return svc
}

func createRequest(start, end time.Time) model.CreateBookingRequest {
	return model.CreateBookingRequest{
		FieldID:     3,
		BookingDate: start.Format("2006-01-02"),
		StartTime:   start.Format(time.RFC3339),
		EndTime:     end.Format(time.RFC3339),
	}
}

func TestCreateBooking_DayRate(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{paymentID: 55}
	svc := newTestService(repo, activePricing(), now)

	resp, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(2*time.Hour)))
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.PaymentID)
	assert.Equal(t, "PAY-55", resp.OrderReference)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(400000)), "2h at day rate, got %s", resp.Amount)
	assert.Equal(t, model.BookingStatusPending, repo.created.Status)
	assert.Equal(t, now.Add(60*time.Minute), repo.created.PaymentDeadline)
}

func TestCreateBooking_NightRate(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{paymentID: 56}, activePricing(), now)

	resp, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(2*time.Hour)))
	require.NoError(t, err)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(600000)), "2h at night rate, got %s", resp.Amount)
}

func TestCreateBooking_MixedRateAcrossCutoff(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{paymentID: 57}, activePricing(), now)

	resp, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(2*time.Hour)))
	require.NoError(t, err)
	// 17:00-18:00 at day rate, 18:00-19:00 at night rate.
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(500000)), "got %s", resp.Amount)
}

func TestCreateBooking_RejectsPastStart(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, activePricing(), now)

	_, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(time.Hour)))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidTimeRange)
}

func TestCreateBooking_RejectsInvertedRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeBookingRepo{}, activePricing(), now)

	_, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(-time.Hour)))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidTimeRange)
}

func TestCreateBooking_InactiveField(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	pricing := activePricing()
	pricing.pricing.Active = false
	svc := newTestService(&fakeBookingRepo{}, pricing, now)

	_, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(time.Hour)))
	require.Error(t, err)
}

func TestCreateBooking_SlotConflictPropagates(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{createErr: model.NewSlotTakenError(3)}
	svc := newTestService(repo, activePricing(), now)

	_, err := svc.CreateBooking(context.Background(), 11, createRequest(start, start.Add(time.Hour)))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrSlotTaken)
}

func TestGetBooking_OwnershipCheck(t *testing.T) {
	repo := &fakeBookingRepo{byID: &model.Booking{ID: 101, UserID: 11, Status: model.BookingStatusPending}}
	svc := newTestService(repo, activePricing(), time.Now())

	_, err := svc.GetBooking(context.Background(), 22, 101, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbiddenBooking)

	detail, err := svc.GetBooking(context.Background(), 22, 101, true)
	require.NoError(t, err)
	assert.Equal(t, int64(101), detail.ID)
}

func TestCancelBooking(t *testing.T) {
	repo := &fakeBookingRepo{byID: &model.Booking{ID: 101, UserID: 11, Status: model.BookingStatusPending}}
	svc := newTestService(repo, activePricing(), time.Now())

	require.NoError(t, svc.CancelBooking(context.Background(), 11, 101, false))
	assert.Equal(t, []int64{101}, repo.cancelled)

	err := svc.CancelBooking(context.Background(), 22, 101, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrForbiddenBooking)
}
