package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// FieldStatus marks whether a field accepts bookings.
type FieldStatus string

const (
	FieldStatusActive      FieldStatus = "active"
	FieldStatusMaintenance FieldStatus = "maintenance"
	FieldStatusInactive    FieldStatus = "inactive"
)

// Opening hours used when computing free slots.
const (
	OpenHour  = 6
	CloseHour = 23
)

type Field struct {
	ID         int64           `json:"id"`
	BranchID   int64           `json:"branchId"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	PriceDay   decimal.Decimal `json:"priceDay"`
	PriceNight decimal.Decimal `json:"priceNight"`
	Facilities []string        `json:"facilities"`
	ImageURL   *string         `json:"imageUrl,omitempty"`
	Status     FieldStatus     `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// BookedSlot is one occupied interval on a field for a given date.
type BookedSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilitySlot is one bookable hour with its price.
type AvailabilitySlot struct {
	Start time.Time       `json:"start"`
	End   time.Time       `json:"end"`
	Price decimal.Decimal `json:"price"`
}

// FieldAvailability is the computed free-slot view for one field and date.
type FieldAvailability struct {
	FieldID    int64              `json:"fieldId"`
	Date       string             `json:"date"`
	Slots      []AvailabilitySlot `json:"slots"`
	ComputedAt time.Time          `json:"computedAt"`
}
