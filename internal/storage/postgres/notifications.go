package postgres

import (
	"context"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

func (r *notificationRepository) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (user_id, title, message, type)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, read, created_at`
	out := *n
	err := r.storage.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type).Scan(&out.ID, &out.Read, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const query = `SELECT id, user_id, title, message, type, read, created_at
                   FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	const query = `UPDATE notifications SET read=TRUE WHERE id=$1 AND user_id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	const query = `UPDATE notifications SET read=TRUE WHERE user_id=$1 AND read=FALSE`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}
