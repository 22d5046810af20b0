package service

import (
	"time"

	bookingmodel "sportcenter-backend/internal/domains/booking/model"
	"sportcenter-backend/internal/domains/field/model"
)

// ComputeAvailability derives the free hourly slots of a field for one
// date from its booked intervals. Pure recomputation from current state,
// so a stale or lost cache entry is always recoverable.
func ComputeAvailability(field *model.Field, date time.Time, booked []model.BookedSlot, now time.Time) *model.FieldAvailability {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	slots := make([]model.AvailabilitySlot, 0, model.CloseHour-model.OpenHour)
	for hour := model.OpenHour; hour < model.CloseHour; hour++ {
		start := day.Add(time.Duration(hour) * time.Hour)
		end := start.Add(time.Hour)

		if !start.After(now) {
			continue
		}
		if overlapsAny(start, end, booked) {
			continue
		}

		price := field.PriceDay
		if hour >= bookingmodel.NightRateStartHour {
			price = field.PriceNight
		}
		slots = append(slots, model.AvailabilitySlot{
			Start: start,
			End:   end,
			Price: price,
		})
	}

	return &model.FieldAvailability{
		FieldID:    field.ID,
		Date:       day.Format("2006-01-02"),
		Slots:      slots,
		ComputedAt: now,
	}
}

func overlapsAny(start, end time.Time, booked []model.BookedSlot) bool {
	for _, b := range booked {
		if b.Start.Before(end) && b.End.After(start) {
			return true
		}
	}
	return false
}
