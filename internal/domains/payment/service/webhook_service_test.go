package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/payment/model"
)

// =====================================================
// FAKES
// =====================================================

type fakePaymentRepo struct {
	detail *model.PaymentDetail
	err    error
}

func (f *fakePaymentRepo) GetByID(ctx context.Context, paymentID int64) (*model.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.detail.Payment, nil
}

func (f *fakePaymentRepo) GetDetail(ctx context.Context, paymentID int64) (*model.PaymentDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.detail == nil || f.detail.ID != paymentID {
		return nil, model.NewPaymentNotFoundError(paymentID)
	}
	return f.detail, nil
}

func (f *fakePaymentRepo) ListByUser(ctx context.Context, userID int64) ([]model.Payment, error) {
	return nil, nil
}

type fakeStore struct {
	applied bool
	err     error
	updates []model.ReconcileUpdate
}

func (f *fakeStore) Apply(ctx context.Context, update model.ReconcileUpdate) (bool, error) {
	f.updates = append(f.updates, update)
	if f.err != nil {
		return false, f.err
	}
	return f.applied, nil
}

type fakeLock struct {
	denied         bool
	acquireErr     error
	acquired       []string
	released       []string
	releasedTokens []string
}

func (f *fakeLock) TryAcquire(ctx context.Context, key string) (string, bool, error) {
	if f.acquireErr != nil {
		return "", false, f.acquireErr
	}
	if f.denied {
		return "", false, nil
	}
	f.acquired = append(f.acquired, key)
	return fmt.Sprintf("token-%d", len(f.acquired)), true, nil
}

func (f *fakeLock) Release(ctx context.Context, key, token string) error {
	f.released = append(f.released, key)
	f.releasedTokens = append(f.releasedTokens, token)
	return nil
}

type emission struct {
	channel string
	event   string
	payload interface{}
}

type fakeBroadcaster struct {
	err       error
	emissions []emission
}

func (f *fakeBroadcaster) Emit(ctx context.Context, channel, event string, payload interface{}) error {
	f.emissions = append(f.emissions, emission{channel: channel, event: event, payload: payload})
	return f.err
}

func testDetail() *model.PaymentDetail {
	return &model.PaymentDetail{
		Payment: model.Payment{
			ID:        42,
			BookingID: 7,
			Amount:    decimal.NewFromInt(150000),
			Status:    model.PaymentStatusPending,
		},
		BookingStatus:   "pending",
		FieldID:         3,
		FieldName:       "Court A",
		FieldNightPrice: decimal.NewFromInt(300000),
		UserID:          11,
		UserName:        "Andi",
		UserEmail:       "andi@example.com",
	}
}

func notification(orderID, txStatus, amount string) []byte {
	return []byte(fmt.Sprintf(`{"order_id":%q,"transaction_status":%q,"gross_amount":%q}`, orderID, txStatus, amount))
}

// =====================================================
// TESTS
// =====================================================

func TestHandleNotification_SettlementBelowNightPriceIsDownPayment(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: true}
	locks := &fakeLock{}
	bc := &fakeBroadcaster{}
	svc := NewWebhookService(repo, store, locks, bc, "")

	result, err := svc.HandleNotification(context.Background(), notification("PAY-42-abc123", "settlement", "150000.00"))
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.PaymentID)
	assert.Equal(t, int64(7), result.BookingID)
	assert.Equal(t, int64(11), result.UserID)
	assert.Equal(t, model.PaymentStatusDPPaid, result.Status)
	assert.True(t, result.Applied)

	require.Len(t, store.updates, 1)
	assert.Equal(t, "settlement", store.updates[0].TransactionStatus)
	assert.True(t, store.updates[0].Amount.Equal(decimal.NewFromInt(150000)))

	assert.Equal(t, []string{"payment:42"}, locks.acquired)
	assert.Equal(t, []string{"payment:42"}, locks.released)
	assert.Equal(t, []string{"token-1"}, locks.releasedTokens, "release must carry the acquisition token")
}

func TestHandleNotification_FullAmountIsPaid(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: true}
	svc := NewWebhookService(repo, store, &fakeLock{}, &fakeBroadcaster{}, "")

	result, err := svc.HandleNotification(context.Background(), notification("PAY-42", "capture", "300000.00"))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, result.Status)
}

func TestHandleNotification_CancelIsFailed(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: true}
	svc := NewWebhookService(repo, store, &fakeLock{}, &fakeBroadcaster{}, "")

	result, err := svc.HandleNotification(context.Background(), notification("PAY-42", "cancel", "150000.00"))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusFailed, result.Status)
}

func TestHandleNotification_TestNotificationSkipsEverything(t *testing.T) {
	repo := &fakePaymentRepo{}
	store := &fakeStore{}
	locks := &fakeLock{}
	bc := &fakeBroadcaster{}
	svc := NewWebhookService(repo, store, locks, bc, "")

	result, err := svc.HandleNotification(context.Background(), notification("payment_notif_test_G123_currency", "settlement", "10000.00"))
	require.NoError(t, err)

	assert.True(t, result.Test)
	assert.Empty(t, store.updates)
	assert.Empty(t, locks.acquired)
	assert.Empty(t, bc.emissions)
}

func TestHandleNotification_LockContention(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{}
	locks := &fakeLock{denied: true}
	svc := NewWebhookService(repo, store, locks, &fakeBroadcaster{}, "")

	_, err := svc.HandleNotification(context.Background(), notification("PAY-42", "settlement", "150000.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrLockContention)
	assert.Empty(t, store.updates)
}

func TestHandleNotification_UnknownPaymentReleasesLock(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{}
	locks := &fakeLock{}
	svc := NewWebhookService(repo, store, locks, &fakeBroadcaster{}, "")

	_, err := svc.HandleNotification(context.Background(), notification("PAY-999", "settlement", "150000.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrPaymentNotFound)
	assert.Equal(t, []string{"payment:999"}, locks.released)
	assert.Empty(t, store.updates)
}

func TestHandleNotification_UnknownStatusReleasesLock(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{}
	locks := &fakeLock{}
	svc := NewWebhookService(repo, store, locks, &fakeBroadcaster{}, "")

	_, err := svc.HandleNotification(context.Background(), notification("PAY-42", "refund", "150000.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownTransactionStatus)
	assert.Equal(t, []string{"payment:42"}, locks.released)
	assert.Empty(t, store.updates)
}

func TestHandleNotification_MalformedOrderID(t *testing.T) {
	svc := NewWebhookService(&fakePaymentRepo{}, &fakeStore{}, &fakeLock{}, &fakeBroadcaster{}, "")

	_, err := svc.HandleNotification(context.Background(), notification("PAY-abc", "settlement", "150000.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMalformedNotification)
}

func TestHandleNotification_RepeatDeliveryIsNoOp(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: false}
	bc := &fakeBroadcaster{}
	svc := NewWebhookService(repo, store, &fakeLock{}, bc, "")

	result, err := svc.HandleNotification(context.Background(), notification("PAY-42", "settlement", "150000.00"))
	require.NoError(t, err)

	assert.False(t, result.Applied)
	assert.Equal(t, model.PaymentStatusDPPaid, result.Status)
	assert.Empty(t, bc.emissions, "a no-op reconcile must not fan out")
}

func TestHandleNotification_FanOutTargets(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: true}
	bc := &fakeBroadcaster{}
	svc := NewWebhookService(repo, store, &fakeLock{}, bc, "")

	_, err := svc.HandleNotification(context.Background(), notification("PAY-42", "settlement", "300000.00"))
	require.NoError(t, err)

	require.Len(t, bc.emissions, 2)
	assert.Equal(t, "user:11", bc.emissions[0].channel)
	assert.Equal(t, "payment_update", bc.emissions[0].event)
	assert.Equal(t, "payments:admin", bc.emissions[1].channel)
	assert.Equal(t, "status_change", bc.emissions[1].event)
}

func TestHandleNotification_BroadcastFailureDoesNotFailReconcile(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: true}
	bc := &fakeBroadcaster{err: errors.New("redis down")}
	svc := NewWebhookService(repo, store, &fakeLock{}, bc, "")

	result, err := svc.HandleNotification(context.Background(), notification("PAY-42", "settlement", "150000.00"))
	require.NoError(t, err)
	assert.True(t, result.Applied)
}

func TestHandleNotification_StoreFailurePropagates(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{err: errors.New("deadlock detected")}
	locks := &fakeLock{}
	bc := &fakeBroadcaster{}
	svc := NewWebhookService(repo, store, locks, bc, "")

	_, err := svc.HandleNotification(context.Background(), notification("PAY-42", "settlement", "150000.00"))
	require.Error(t, err)
	assert.Empty(t, bc.emissions)
	assert.Equal(t, []string{"payment:42"}, locks.released)
}

func TestAdminSetStatus(t *testing.T) {
	repo := &fakePaymentRepo{detail: testDetail()}
	store := &fakeStore{applied: true}
	bc := &fakeBroadcaster{}
	svc := NewWebhookService(repo, store, &fakeLock{}, bc, "")

	result, err := svc.AdminSetStatus(context.Background(), 42, model.PaymentStatusPaid)
	require.NoError(t, err)

	assert.Equal(t, model.PaymentStatusPaid, result.Status)
	require.Len(t, store.updates, 1)
	assert.Equal(t, "manual", store.updates[0].TransactionStatus)
	assert.Len(t, bc.emissions, 2)
}
