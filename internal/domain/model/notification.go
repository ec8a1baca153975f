package model

import "time"

// NotificationType classifies user notifications.
type NotificationType string

const (
	NotificationTypeOrder     NotificationType = "order"
	NotificationTypePromotion NotificationType = "promotion"
	NotificationTypeReminder  NotificationType = "reminder"
	NotificationTypeSystem    NotificationType = "system"
)

// Notification is a fire-and-forget message shown to a user.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}
