package model

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrSlotTaken        = errors.New("time slot already booked")
	ErrInvalidTimeRange = errors.New("invalid booking time range")
	ErrNotCancellable   = errors.New("booking can no longer be cancelled")
	ErrForbiddenBooking = errors.New("booking belongs to another user")
)

const (
	ErrCodeBookingNotFound  = "BOOKING_NOT_FOUND"
	ErrCodeSlotTaken        = "BOOKING_SLOT_TAKEN"
	ErrCodeInvalidTimeRange = "BOOKING_INVALID_TIME_RANGE"
	ErrCodeNotCancellable   = "BOOKING_NOT_CANCELLABLE"
	ErrCodeForbidden        = "BOOKING_FORBIDDEN"
)

type BookingError struct {
	Code    string
	Message string
	Err     error
}

func (e *BookingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BookingError) Unwrap() error {
	return e.Err
}

func NewBookingNotFoundError(bookingID int64) *BookingError {
	return &BookingError{
		Code:    ErrCodeBookingNotFound,
		Message: fmt.Sprintf("booking %d not found", bookingID),
		Err:     ErrBookingNotFound,
	}
}

func NewSlotTakenError(fieldID int64) *BookingError {
	return &BookingError{
		Code:    ErrCodeSlotTaken,
		Message: fmt.Sprintf("the requested slot on field %d is already booked", fieldID),
		Err:     ErrSlotTaken,
	}
}

func NewInvalidTimeRangeError(detail string) *BookingError {
	return &BookingError{
		Code:    ErrCodeInvalidTimeRange,
		Message: detail,
		Err:     ErrInvalidTimeRange,
	}
}

func NewNotCancellableError(bookingID int64, status BookingStatus) *BookingError {
	return &BookingError{
		Code:    ErrCodeNotCancellable,
		Message: fmt.Sprintf("booking %d is %s and cannot be cancelled", bookingID, status),
		Err:     ErrNotCancellable,
	}
}

func NewForbiddenBookingError(bookingID int64) *BookingError {
	return &BookingError{
		Code:    ErrCodeForbidden,
		Message: fmt.Sprintf("booking %d does not belong to the requesting user", bookingID),
		Err:     ErrForbiddenBooking,
	}
}
