package model

// PaymentStatus is the internal lifecycle status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusDPPaid  PaymentStatus = "dp_paid"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Gateway transaction statuses reported by Midtrans.
const (
	TransactionStatusCapture    = "capture"
	TransactionStatusSettlement = "settlement"
	TransactionStatusPending    = "pending"
	TransactionStatusExpire     = "expire"
	TransactionStatusCancel     = "cancel"
	TransactionStatusDeny       = "deny"
	TransactionStatusFailure    = "failure"
)

const (
	// OrderIDPrefix prefixes the gateway order reference:
	// PAY-{paymentId} or PAY-{paymentId}-{suffix}.
	OrderIDPrefix = "PAY-"

	// TestOrderMarker appears in order ids of Midtrans test notifications.
	// Those are acknowledged without touching any state.
	TestOrderMarker = "payment_notif_test"

	// NotificationTypePayment tags user notifications created by the
	// reconciliation path.
	NotificationTypePayment = "PAYMENT"
)
