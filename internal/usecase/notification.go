package usecase

import (
	"context"
	"log/slog"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// NotificationUseCase delivers and lists user notifications.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
	logger        *slog.Logger
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository, logger *slog.Logger) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications, logger: logger}
}

// Notify appends a notification document for the user. Delivery is
// fire-and-forget: failures are logged, never surfaced to the caller.
func (u *NotificationUseCase) Notify(ctx context.Context, userID int64, title, message string, kind model.NotificationType) {
	_, err := u.notifications.Create(ctx, &model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
		Type:    kind,
	})
	if err != nil {
		u.logger.Error("notification delivery failed",
			slog.Int64("user_id", userID),
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
	}
}

// ListByUser returns notifications newest first.
func (u *NotificationUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}

// MarkRead flags one notification as read.
func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return u.notifications.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead flags every notification of the user as read.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID int64) error {
	return u.notifications.MarkAllRead(ctx, userID)
}
