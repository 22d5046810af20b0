package shared

// Asynq task type names. Grouped by owning domain.
const (
	TypeCleanupExpiredBookings  = "booking:cleanup_expired"
	TypeFieldAvailabilityUpdate = "field:availability_update"
)

// Queue names with their worker priorities configured in cmd/worker.
const (
	QueueBooking = "default"
	QueueField   = "low"
)

// CleanupExpiredBookingsPayload is carried by the expiry sweep task.
type CleanupExpiredBookingsPayload struct {
	Limit int `json:"limit"`
}

// FieldAvailabilityPayload is carried by the availability recompute task.
// An empty FieldID means all active fields.
type FieldAvailabilityPayload struct {
	FieldID int64 `json:"fieldId,omitempty"`
}
