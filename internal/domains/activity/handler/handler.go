package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/activity/model"
	"sportcenter-backend/internal/domains/activity/repository"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

// ActivityHandler exposes the audit trail to admins.
type ActivityHandler struct {
	activityRepo repository.ActivityRepository
}

func NewActivityHandler(activityRepo repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

func (h *ActivityHandler) List(c *gin.Context) {
	var q model.ListActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	q.Normalize()

	logs, total, err := h.activityRepo.List(c.Request.Context(), q)
	if err != nil {
		logger.Error("Failed to list activity logs", err)
		response.InternalServerError(c, "Failed to list activity logs")
		return
	}

	totalPages := (total + q.Limit - 1) / q.Limit
	response.SuccessWithMeta(c, http.StatusOK, logs, &response.Meta{
		Page:        q.Page,
		Limit:       q.Limit,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNextPage: q.Page < totalPages,
		HasPrevPage: q.Page > 1,
	})
}
