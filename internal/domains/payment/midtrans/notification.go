package midtrans

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"sportcenter-backend/internal/domains/payment/model"
)

// Notification is the parsed, typed form of a Midtrans payment notification.
type Notification struct {
	OrderID           string
	TransactionStatus string
	GrossAmount       decimal.Decimal

	// StatusCode, SignatureKey and the verbatim gross_amount text feed the
	// signature check; the gateway signs the raw wire values, not our
	// normalized ones.
	StatusCode      string
	SignatureKey    string
	GrossAmountText string

	// PaymentID is the internal payment identifier extracted from OrderID.
	// Zero when IsTest is set.
	PaymentID int64

	// IsTest marks a gateway test notification, acknowledged without any
	// state change.
	IsTest bool
}

// SignatureValid reports whether signature_key matches
// sha512(order_id + status_code + gross_amount + serverKey).
func (n *Notification) SignatureValid(serverKey string) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmountText + serverKey))
	return hex.EncodeToString(sum[:]) == n.SignatureKey
}

// rawNotification mirrors the wire payload. gross_amount arrives either as a
// JSON string or a number, so it is kept raw and parsed explicitly.
type rawNotification struct {
	OrderID           string          `json:"order_id"`
	TransactionStatus string          `json:"transaction_status"`
	GrossAmount       json.RawMessage `json:"gross_amount"`
	StatusCode        string          `json:"status_code"`
	SignatureKey      string          `json:"signature_key"`
}

// ParseNotification validates and extracts the (paymentId, transactionStatus,
// amount) triple from a raw notification body.
//
// Order id formats accepted:
//   - PAY-{paymentId}            e.g. "PAY-42"
//   - PAY-{paymentId}-{suffix}   e.g. "PAY-42-1687934"
//   - {paymentId}                bare numeric id
//
// Anything else fails with ErrMalformedNotification.
func ParseNotification(raw []byte) (*Notification, error) {
	var payload rawNotification
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, model.NewMalformedNotificationError("invalid notification body: " + err.Error())
	}

	if payload.OrderID == "" {
		return nil, model.NewMalformedNotificationError("missing order_id")
	}

	n := &Notification{
		OrderID:           payload.OrderID,
		TransactionStatus: payload.TransactionStatus,
		StatusCode:        payload.StatusCode,
		SignatureKey:      payload.SignatureKey,
	}

	if len(payload.GrossAmount) > 0 && string(payload.GrossAmount) != "null" {
		n.GrossAmountText = strings.Trim(string(payload.GrossAmount), `"`)
		amount, err := decimal.NewFromString(n.GrossAmountText)
		if err != nil {
			return nil, model.NewMalformedNotificationError("invalid gross_amount: " + n.GrossAmountText)
		}
		n.GrossAmount = amount
	}

	if strings.Contains(payload.OrderID, model.TestOrderMarker) {
		n.IsTest = true
		return n, nil
	}

	idPart := payload.OrderID
	if rest, ok := strings.CutPrefix(payload.OrderID, model.OrderIDPrefix); ok {
		idPart, _, _ = strings.Cut(rest, "-")
	}

	paymentID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return nil, model.NewMalformedNotificationError("invalid payment id in order_id: " + payload.OrderID)
	}

	n.PaymentID = paymentID
	return n, nil
}
