package midtrans

import (
	"github.com/shopspring/decimal"

	"sportcenter-backend/internal/domains/payment/model"
)

// ResolveStatus maps a gateway transaction status onto the internal payment
// status. Pure and deterministic, no I/O.
//
// expected is the field's night price read at reconciliation time: a
// captured amount below it is a down payment, at or above it full payment.
// Unknown statuses are surfaced as errors rather than mapped to a default,
// so new gateway behaviors are noticed instead of silently absorbed.
func ResolveStatus(transactionStatus string, amount, expected decimal.Decimal) (model.PaymentStatus, error) {
	switch transactionStatus {
	case model.TransactionStatusCapture, model.TransactionStatusSettlement:
		if amount.LessThan(expected) {
			return model.PaymentStatusDPPaid, nil
		}
		return model.PaymentStatusPaid, nil

	case model.TransactionStatusPending:
		return model.PaymentStatusPending, nil

	case model.TransactionStatusExpire,
		model.TransactionStatusCancel,
		model.TransactionStatusDeny,
		model.TransactionStatusFailure:
		return model.PaymentStatusFailed, nil

	default:
		return "", model.NewUnknownTransactionStatusError(transactionStatus)
	}
}
