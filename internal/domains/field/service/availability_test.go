package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportcenter-backend/internal/domains/field/model"
)

func testField() *model.Field {
	return &model.Field{
		ID:         3,
		PriceDay:   decimal.NewFromInt(200000),
		PriceNight: decimal.NewFromInt(300000),
		Status:     model.FieldStatusActive,
	}
}

func TestComputeAvailability_EmptyDay(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	availability := ComputeAvailability(testField(), date, nil, now)

	require.Equal(t, "2026-03-02", availability.Date)
	assert.Len(t, availability.Slots, model.CloseHour-model.OpenHour)

	first := availability.Slots[0]
	assert.Equal(t, model.OpenHour, first.Start.Hour())
	assert.True(t, first.Price.Equal(decimal.NewFromInt(200000)))

	last := availability.Slots[len(availability.Slots)-1]
	assert.Equal(t, model.CloseHour-1, last.Start.Hour())
	assert.True(t, last.Price.Equal(decimal.NewFromInt(300000)), "late slot bills night rate")
}

func TestComputeAvailability_ExcludesBookedIntervals(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	booked := []model.BookedSlot{
		{
			Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		},
	}

	availability := ComputeAvailability(testField(), date, booked, now)

	for _, slot := range availability.Slots {
		h := slot.Start.Hour()
		assert.True(t, h < 10 || h >= 12, "hour %d should be excluded", h)
	}
	assert.Len(t, availability.Slots, model.CloseHour-model.OpenHour-2)
}

func TestComputeAvailability_PartialOverlapBlocksWholeHour(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	booked := []model.BookedSlot{
		{
			Start: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 2, 11, 30, 0, 0, time.UTC),
		},
	}

	availability := ComputeAvailability(testField(), date, booked, now)

	for _, slot := range availability.Slots {
		h := slot.Start.Hour()
		assert.NotEqual(t, 10, h)
		assert.NotEqual(t, 11, h)
	}
}

func TestComputeAvailability_SkipsPastHoursToday(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	availability := ComputeAvailability(testField(), date, nil, now)

	require.NotEmpty(t, availability.Slots)
	assert.Equal(t, 15, availability.Slots[0].Start.Hour(), "14:00 slot has already started")
}

func TestComputeAvailability_NightPriceFromCutoff(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	availability := ComputeAvailability(testField(), date, nil, now)

	for _, slot := range availability.Slots {
		if slot.Start.Hour() >= 18 {
			assert.True(t, slot.Price.Equal(decimal.NewFromInt(300000)))
		} else {
			assert.True(t, slot.Price.Equal(decimal.NewFromInt(200000)))
		}
	}
}
