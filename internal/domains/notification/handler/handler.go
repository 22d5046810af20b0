package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sportcenter-backend/internal/domains/notification/model"
	"sportcenter-backend/internal/domains/notification/repository"
	"sportcenter-backend/internal/shared/middleware"
	"sportcenter-backend/internal/shared/response"
	"sportcenter-backend/pkg/logger"
)

// NotificationHandler serves the in-app notification feed. Thin enough
// that it talks to the repository directly.
type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationHandler(notificationRepo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	notifications, err := h.notificationRepo.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		logger.Error("Failed to list notifications", err)
		response.InternalServerError(c, "Failed to list notifications")
		return
	}

	response.Success(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.notificationRepo.CountUnread(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to count unread notifications", err)
		response.InternalServerError(c, "Failed to count unread notifications")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notificationRepo.MarkRead(c.Request.Context(), userID, notificationID); err != nil {
		if errors.Is(err, model.ErrNotificationNotFound) {
			response.NotFound(c, "Notification not found")
			return
		}
		logger.Error("Failed to mark notification read", err)
		response.InternalServerError(c, "Failed to mark notification read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notificationId": notificationID, "read": true})
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.notificationRepo.MarkAllRead(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to mark notifications read", err)
		response.InternalServerError(c, "Failed to mark notifications read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}
