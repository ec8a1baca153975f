package dto

import "time"

// NotificationResponse represents one user notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// MarkReadRequest flags one notification as read.
type MarkReadRequest struct {
	ID int64 `json:"id"`
}
