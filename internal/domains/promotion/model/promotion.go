package model

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type PromotionStatus string

const (
	PromotionStatusActive   PromotionStatus = "active"
	PromotionStatusInactive PromotionStatus = "inactive"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type Promotion struct {
	ID            int64            `json:"id"`
	Code          string           `json:"code"`
	Description   string           `json:"description"`
	DiscountType  DiscountType     `json:"discountType"`
	DiscountValue decimal.Decimal  `json:"discountValue"`
	MaxDiscount   *decimal.Decimal `json:"maxDiscount,omitempty"`
	StartsAt      time.Time        `json:"startsAt"`
	ExpiresAt     time.Time        `json:"expiresAt"`
	Status        PromotionStatus  `json:"status"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// IsValidAt reports whether the promotion can be applied at the given time.
func (p *Promotion) IsValidAt(now time.Time) bool {
	return p.Status == PromotionStatusActive &&
		now.After(p.StartsAt) &&
		now.Before(p.ExpiresAt)
}

// CalculateDiscount returns the discount for a booking amount. A percentage
// discount is capped at MaxDiscount when set; a fixed discount never exceeds
// the amount itself.
func (p *Promotion) CalculateDiscount(amount decimal.Decimal) (decimal.Decimal, error) {
	switch p.DiscountType {
	case DiscountTypePercentage:
		discount := amount.Mul(p.DiscountValue).Div(decimal.NewFromInt(100))
		if p.MaxDiscount != nil && discount.GreaterThan(*p.MaxDiscount) {
			discount = *p.MaxDiscount
		}
		return discount, nil
	case DiscountTypeFixed:
		if p.DiscountValue.GreaterThan(amount) {
			return amount, nil
		}
		return p.DiscountValue, nil
	default:
		return decimal.Zero, fmt.Errorf("unknown discount type %q", p.DiscountType)
	}
}

type CreatePromotionRequest struct {
	Code          string           `json:"code"`
	Description   string           `json:"description"`
	DiscountType  string           `json:"discountType"`
	DiscountValue decimal.Decimal  `json:"discountValue"`
	MaxDiscount   *decimal.Decimal `json:"maxDiscount"`
	StartsAt      time.Time        `json:"startsAt"`
	ExpiresAt     time.Time        `json:"expiresAt"`
}

func (r CreatePromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Code, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Description, validation.Length(0, 255)),
		validation.Field(&r.DiscountType, validation.Required, validation.In(
			string(DiscountTypePercentage),
			string(DiscountTypeFixed),
		)),
		validation.Field(&r.DiscountValue, validation.Required, validation.By(positiveDiscount)),
		validation.Field(&r.ExpiresAt, validation.Required, validation.By(func(interface{}) error {
			if !r.ExpiresAt.After(r.StartsAt) {
				return errors.New("must be after startsAt")
			}
			return nil
		})),
	)
}

func positiveDiscount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || !d.IsPositive() {
		return errors.New("must be a positive amount")
	}
	return nil
}

type UpdatePromotionRequest struct {
	Description   *string          `json:"description"`
	DiscountValue *decimal.Decimal `json:"discountValue"`
	MaxDiscount   *decimal.Decimal `json:"maxDiscount"`
	StartsAt      *time.Time       `json:"startsAt"`
	ExpiresAt     *time.Time       `json:"expiresAt"`
	Status        *string          `json:"status"`
}

func (r UpdatePromotionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Description, validation.Length(0, 255)),
		validation.Field(&r.Status, validation.In(
			string(PromotionStatusActive),
			string(PromotionStatusInactive),
		)),
	)
}

var (
	ErrPromotionNotFound  = errors.New("promotion not found")
	ErrPromotionCodeTaken = errors.New("promotion code already exists")
)

type PromotionError struct {
	Code    string
	Message string
	Err     error
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PromotionError) Unwrap() error {
	return e.Err
}

func NewPromotionNotFoundError(promotionID int64) *PromotionError {
	return &PromotionError{
		Code:    "PROMOTION_NOT_FOUND",
		Message: fmt.Sprintf("promotion %d not found", promotionID),
		Err:     ErrPromotionNotFound,
	}
}

func NewPromotionCodeTakenError(code string) *PromotionError {
	return &PromotionError{
		Code:    "PROMOTION_CODE_TAKEN",
		Message: fmt.Sprintf("promotion code %q already exists", code),
		Err:     ErrPromotionCodeTaken,
	}
}
