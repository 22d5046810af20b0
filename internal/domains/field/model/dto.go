package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST DTOs
// =====================================================

type CreateFieldRequest struct {
	BranchID   int64           `json:"branchId"`
	Name       string          `json:"name"`
	Type       string          `json:"type"`
	PriceDay   decimal.Decimal `json:"priceDay"`
	PriceNight decimal.Decimal `json:"priceNight"`
	Facilities []string        `json:"facilities"`
}

func (r CreateFieldRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BranchID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Type, validation.Required, validation.Length(2, 50)),
		validation.Field(&r.PriceDay, validation.Required, validation.By(positiveDecimal)),
		validation.Field(&r.PriceNight, validation.Required, validation.By(positiveDecimal)),
	)
}

type UpdateFieldRequest struct {
	Name       *string          `json:"name"`
	Type       *string          `json:"type"`
	PriceDay   *decimal.Decimal `json:"priceDay"`
	PriceNight *decimal.Decimal `json:"priceNight"`
	Facilities []string         `json:"facilities"`
	Status     *string          `json:"status"`
}

func (r UpdateFieldRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&r.Type, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&r.Status, validation.In(
			string(FieldStatusActive),
			string(FieldStatusMaintenance),
			string(FieldStatusInactive),
		)),
	)
}

func positiveDecimal(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.Sign() <= 0 {
		return validation.NewError("validation_positive", "must be a positive amount")
	}
	return nil
}

type ListFieldsQuery struct {
	Search   string `form:"search"`
	BranchID int64  `form:"branchId"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

func (q *ListFieldsQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 10
	}
}
