package model

// BookingStatus is the lifecycle status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusExpired   BookingStatus = "expired"
)

// PaymentDeadlineMinutes is how long a pending booking holds its slot
// before the expiry sweep releases it.
const PaymentDeadlineMinutes = 60

// NightRateStartHour marks the hour of day from which the night price
// applies.
const NightRateStartHour = 18
