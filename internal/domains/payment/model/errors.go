package model

import (
	"errors"
	"fmt"
)

// =====================================================
// PREDEFINED ERRORS
// =====================================================

var (
	ErrMalformedNotification    = errors.New("malformed gateway notification")
	ErrUnknownTransactionStatus = errors.New("unknown transaction status")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrLockContention           = errors.New("payment reconciliation already in progress")
)

// Error codes used in HTTP responses.
const (
	ErrCodeMalformedNotification    = "PAY_MALFORMED_NOTIFICATION"
	ErrCodeUnknownTransactionStatus = "PAY_UNKNOWN_TX_STATUS"
	ErrCodePaymentNotFound          = "PAY_NOT_FOUND"
	ErrCodeLockContention           = "PAY_IN_PROGRESS"
	ErrCodeTransactionFailure       = "PAY_TX_FAILURE"
)

// =====================================================
// CUSTOM PAYMENT ERROR
// =====================================================

type PaymentError struct {
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PaymentError) Unwrap() error {
	return e.Err
}

func NewPaymentError(code, message string, err error) *PaymentError {
	return &PaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// =====================================================
// ERROR CONSTRUCTORS
// =====================================================

func NewMalformedNotificationError(detail string) *PaymentError {
	return NewPaymentError(
		ErrCodeMalformedNotification,
		detail,
		ErrMalformedNotification,
	)
}

func NewUnknownTransactionStatusError(status string) *PaymentError {
	return NewPaymentError(
		ErrCodeUnknownTransactionStatus,
		fmt.Sprintf("unhandled transaction status %q", status),
		ErrUnknownTransactionStatus,
	)
}

func NewPaymentNotFoundError(paymentID int64) *PaymentError {
	return NewPaymentError(
		ErrCodePaymentNotFound,
		fmt.Sprintf("payment %d not found", paymentID),
		ErrPaymentNotFound,
	)
}

func NewLockContentionError(paymentID int64) *PaymentError {
	return NewPaymentError(
		ErrCodeLockContention,
		fmt.Sprintf("payment %d is already being reconciled", paymentID),
		ErrLockContention,
	)
}
