package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPromotion(discountType DiscountType, value int64) *Promotion {
	now := time.Now()
	return &Promotion{
		ID:            1,
		Code:          "OPENING10",
		DiscountType:  discountType,
		DiscountValue: decimal.NewFromInt(value),
		StartsAt:      now.Add(-time.Hour),
		ExpiresAt:     now.Add(time.Hour),
		Status:        PromotionStatusActive,
	}
}

func TestPromotion_PercentageDiscount(t *testing.T) {
	p := testPromotion(DiscountTypePercentage, 10)

	discount, err := p.CalculateDiscount(decimal.NewFromInt(200000))
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(20000)), "got %s", discount)
}

func TestPromotion_PercentageDiscountIsCapped(t *testing.T) {
	p := testPromotion(DiscountTypePercentage, 10)
	cap := decimal.NewFromInt(15000)
	p.MaxDiscount = &cap

	discount, err := p.CalculateDiscount(decimal.NewFromInt(200000))
	require.NoError(t, err)
	assert.True(t, discount.Equal(cap), "got %s", discount)
}

func TestPromotion_FixedDiscountNeverExceedsAmount(t *testing.T) {
	p := testPromotion(DiscountTypeFixed, 50000)

	discount, err := p.CalculateDiscount(decimal.NewFromInt(30000))
	require.NoError(t, err)
	assert.True(t, discount.Equal(decimal.NewFromInt(30000)), "got %s", discount)
}

func TestPromotion_UnknownDiscountType(t *testing.T) {
	p := testPromotion("bogus", 10)

	_, err := p.CalculateDiscount(decimal.NewFromInt(100000))
	assert.Error(t, err)
}

func TestPromotion_Validity(t *testing.T) {
	p := testPromotion(DiscountTypePercentage, 10)
	now := time.Now()

	assert.True(t, p.IsValidAt(now))
	assert.False(t, p.IsValidAt(now.Add(2*time.Hour)), "expired")
	assert.False(t, p.IsValidAt(now.Add(-2*time.Hour)), "not started")

	p.Status = PromotionStatusInactive
	assert.False(t, p.IsValidAt(now), "inactive")
}
