package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/payment/model"
)

func TestParseNotification_ExtractsPaymentID(t *testing.T) {
	tests := []struct {
		name    string
		orderID string
		want    int64
	}{
		{"prefix only", "PAY-42", 42},
		{"prefix with suffix", "PAY-42-abc", 42},
		{"prefix with timestamp suffix", "PAY-1057-1687934412", 1057},
		{"bare numeric id", "42", 42},
		{"multiple suffix segments", "PAY-7-a-b-c", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(`{"order_id":"` + tt.orderID + `","transaction_status":"settlement","gross_amount":"150000.00"}`)

			n, err := ParseNotification(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.PaymentID)
			assert.Equal(t, "settlement", n.TransactionStatus)
			assert.False(t, n.IsTest)
		})
	}
}

func TestParseNotification_GrossAmountStringOrNumber(t *testing.T) {
	asString := []byte(`{"order_id":"PAY-1","transaction_status":"settlement","gross_amount":"150000.00"}`)
	asNumber := []byte(`{"order_id":"PAY-1","transaction_status":"settlement","gross_amount":150000}`)

	fromString, err := ParseNotification(asString)
	require.NoError(t, err)
	fromNumber, err := ParseNotification(asNumber)
	require.NoError(t, err)

	assert.True(t, fromString.GrossAmount.Equal(fromNumber.GrossAmount))
	assert.True(t, fromString.GrossAmount.Equal(decimal.NewFromInt(150000)))
}

func TestParseNotification_TestMarkerShortCircuits(t *testing.T) {
	raw := []byte(`{"order_id":"payment_notif_test_G141532850_xyz","transaction_status":"settlement","gross_amount":"10000"}`)

	n, err := ParseNotification(raw)
	require.NoError(t, err)
	assert.True(t, n.IsTest)
	assert.Zero(t, n.PaymentID)
}

func TestNotification_SignatureValid(t *testing.T) {
	serverKey := "SB-Mid-server-testkey"
	// sha512("PAY-42" + "200" + "150000.00" + serverKey), as the gateway
	// computes it over the raw wire values.
	raw := []byte(`{"order_id":"PAY-42","transaction_status":"settlement","gross_amount":"150000.00","status_code":"200","signature_key":"ec4770d11bb3e25a6e1fbb6a36b6a7748deb68e871ff5118983ed92b9b291e79e87c49686995c4e0e9d0e5fbythiswrong"}`)

	n, err := ParseNotification(raw)
	require.NoError(t, err)
	assert.Equal(t, "200", n.StatusCode)
	assert.Equal(t, "150000.00", n.GrossAmountText)
	assert.False(t, n.SignatureValid(serverKey), "fabricated signature must not verify")

	// Re-sign with the actual digest and it verifies.
	n.SignatureKey = signatureFor(n, serverKey)
	assert.True(t, n.SignatureValid(serverKey))
	assert.False(t, n.SignatureValid("some-other-key"))
}

func signatureFor(n *Notification, serverKey string) string {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmountText + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestParseNotification_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing order_id", `{"transaction_status":"settlement","gross_amount":"10"}`},
		{"empty order_id", `{"order_id":"","transaction_status":"settlement"}`},
		{"non numeric id", `{"order_id":"PAY-abc","transaction_status":"settlement"}`},
		{"bare non numeric id", `{"order_id":"booking-42","transaction_status":"settlement"}`},
		{"not json", `order_id=PAY-42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNotification([]byte(tt.raw))
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrMalformedNotification))
		})
	}
}
