package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"sportcenter-backend/internal/domains/booking/repository"
	"sportcenter-backend/internal/infrastructure/realtime"
	"sportcenter-backend/internal/shared"
	"sportcenter-backend/pkg/cache"
	"sportcenter-backend/pkg/logger"
)

const defaultSweepLimit = 500

// CleanupExpiredHandler releases pending bookings whose payment deadline
// has passed. Scheduled every 5 minutes; safe to re-run because the
// update is guarded on status pending, and a payment confirmation that
// lands mid-sweep wins.
type CleanupExpiredHandler struct {
	bookingRepo repository.BookingRepository
	cache       cache.Cache
	broadcaster realtime.Broadcaster
}

func NewCleanupExpiredHandler(
	bookingRepo repository.BookingRepository,
	cache cache.Cache,
	broadcaster realtime.Broadcaster,
) *CleanupExpiredHandler {
	if broadcaster == nil {
		broadcaster = realtime.NopBroadcaster{}
	}
	return &CleanupExpiredHandler{
		bookingRepo: bookingRepo,
		cache:       cache,
		broadcaster: broadcaster,
	}
}

func (h *CleanupExpiredHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.CleanupExpiredBookingsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("CleanupExpired: failed to unmarshal payload", err)
		// A broken payload never repairs itself on retry.
		return fmt.Errorf("unmarshal CleanupExpired payload: %w", err)
	}
	limit := payload.Limit
	if limit <= 0 {
		limit = defaultSweepLimit
	}

	expired, err := h.bookingRepo.ExpireOverdue(ctx, time.Now(), limit)
	if err != nil {
		logger.Error("CleanupExpired: sweep failed", err)
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	// Expired bookings free their slots, so cached availability is stale.
	if err := h.cache.DeletePattern(ctx, "field:availability:*"); err != nil {
		logger.Error("CleanupExpired: failed to invalidate availability cache", err)
	}

	if err := h.broadcaster.Emit(ctx, realtime.ChannelAdminPayments, realtime.EventStatusChange, map[string]interface{}{
		"expiredBookingIds": expired,
	}); err != nil {
		logger.Error("CleanupExpired: failed to broadcast expirations", err)
	}

	logger.Info("CleanupExpired: sweep finished", map[string]interface{}{
		"expired_count": len(expired),
		"limit":         limit,
	})

	return nil
}
