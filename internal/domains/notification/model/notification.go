package model

import (
	"errors"
	"fmt"
	"time"
)

type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	Type      string    `json:"type"`
	LinkID    *string   `json:"linkId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrNotificationNotFound = errors.New("notification not found")

func NewNotificationNotFoundError(notificationID int64) error {
	return fmt.Errorf("notification %d: %w", notificationID, ErrNotificationNotFound)
}
