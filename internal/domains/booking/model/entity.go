package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// BOOKING ENTITIES
// =====================================================

type Booking struct {
	ID              int64         `json:"id"`
	UserID          int64         `json:"userId"`
	FieldID         int64         `json:"fieldId"`
	BookingDate     time.Time     `json:"bookingDate"`
	StartTime       time.Time     `json:"startTime"`
	EndTime         time.Time     `json:"endTime"`
	Status          BookingStatus `json:"status"`
	PaymentDeadline time.Time     `json:"paymentDeadline"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

// BookingDetail joins the booking with its field, branch and payment.
type BookingDetail struct {
	Booking
	FieldName     string           `json:"fieldName"`
	BranchID      int64            `json:"branchId"`
	BranchName    string           `json:"branchName"`
	UserName      string           `json:"userName"`
	PaymentID     *int64           `json:"paymentId,omitempty"`
	PaymentStatus *string          `json:"paymentStatus,omitempty"`
	PaymentAmount *decimal.Decimal `json:"paymentAmount,omitempty"`
}

// BookingStats aggregates counts per status for the admin dashboard.
type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
	Completed int64 `json:"completed"`
	Expired   int64 `json:"expired"`
}

// BranchRevenue is one row of the revenue report: settled payment volume
// grouped by branch.
type BranchRevenue struct {
	BranchID     int64           `json:"branchId"`
	BranchName   string          `json:"branchName"`
	BookingCount int64           `json:"bookingCount"`
	Revenue      decimal.Decimal `json:"revenue"`
}
