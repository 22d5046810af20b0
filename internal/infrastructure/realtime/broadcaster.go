package realtime

import (
	"context"
	"fmt"
)

// Broadcaster emits events to addressable channels. Socket servers subscribe
// to these channels and forward events to connected clients; the backend
// itself is fire-and-forget and requires no acknowledgment.
//
// Implementations must never be load-bearing for the request path: callers
// treat emission failures as log-and-continue.
type Broadcaster interface {
	// Emit publishes an event to one channel.
	Emit(ctx context.Context, channel, event string, payload interface{}) error
}

// Channel names. Per-user channels carry private updates; the admin channel
// feeds dashboards.
const (
	ChannelAdminPayments = "payments:admin"
)

func UserChannel(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// Event names emitted on the payment path.
const (
	EventPaymentUpdate = "payment_update"
	EventStatusChange  = "status_change"
	EventAvailability  = "field_availability"
)

// NopBroadcaster is used when no realtime transport is configured.
type NopBroadcaster struct{}

func (NopBroadcaster) Emit(context.Context, string, string, interface{}) error {
	return nil
}
