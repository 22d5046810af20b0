package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"sportcenter-backend/internal/domains/field/service"
	"sportcenter-backend/internal/shared"
	"sportcenter-backend/pkg/logger"
)

// AvailabilityHandler recomputes cached per-field availability on the
// recurring schedule. Bookings, cancellations and expiry sweeps also touch
// the cache; this task is the backstop that repairs any drift.
type AvailabilityHandler struct {
	fieldService service.FieldService
}

func NewAvailabilityHandler(fieldService service.FieldService) *AvailabilityHandler {
	return &AvailabilityHandler{fieldService: fieldService}
}

func (h *AvailabilityHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.FieldAvailabilityPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Error("AvailabilityUpdate: failed to unmarshal payload", err)
		return fmt.Errorf("unmarshal AvailabilityUpdate payload: %w", err)
	}

	var fieldIDs []int64
	if payload.FieldID > 0 {
		fieldIDs = []int64{payload.FieldID}
	}

	if err := h.fieldService.RefreshAvailability(ctx, fieldIDs); err != nil {
		logger.Error("AvailabilityUpdate: refresh failed", err)
		return err
	}

	return nil
}
