package midtrans

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/payment/model"
)

func TestResolveStatus(t *testing.T) {
	price := decimal.NewFromInt(300000)

	tests := []struct {
		name              string
		transactionStatus string
		amount            decimal.Decimal
		want              model.PaymentStatus
	}{
		{"settlement below price is down payment", "settlement", decimal.NewFromInt(150000), model.PaymentStatusDPPaid},
		{"settlement at price is full payment", "settlement", decimal.NewFromInt(300000), model.PaymentStatusPaid},
		{"settlement above price is full payment", "settlement", decimal.NewFromInt(350000), model.PaymentStatusPaid},
		{"capture below price is down payment", "capture", decimal.NewFromInt(100000), model.PaymentStatusDPPaid},
		{"capture at price is full payment", "capture", decimal.NewFromInt(300000), model.PaymentStatusPaid},
		{"pending stays pending", "pending", decimal.NewFromInt(300000), model.PaymentStatusPending},
		{"expire fails", "expire", decimal.NewFromInt(300000), model.PaymentStatusFailed},
		{"cancel fails", "cancel", decimal.Zero, model.PaymentStatusFailed},
		{"deny fails", "deny", decimal.NewFromInt(300000), model.PaymentStatusFailed},
		{"failure fails", "failure", decimal.NewFromInt(300000), model.PaymentStatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveStatus(tt.transactionStatus, tt.amount, price)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveStatus_UnknownStatusIsAnError(t *testing.T) {
	for _, status := range []string{"refund", "chargeback", "", "SETTLEMENT"} {
		_, err := ResolveStatus(status, decimal.NewFromInt(10), decimal.NewFromInt(10))
		require.Error(t, err, "status %q", status)
		assert.True(t, errors.Is(err, model.ErrUnknownTransactionStatus))
	}
}
