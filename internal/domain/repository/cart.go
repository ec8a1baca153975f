package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CartRepository describes persistence of carts of record.
type CartRepository interface {
	GetByUser(ctx context.Context, userID int64) (*model.Cart, error)
	GetBySession(ctx context.Context, sessionID string) (*model.Cart, error)
	SaveForUser(ctx context.Context, userID int64, items []model.CartItem) error
	SaveForSession(ctx context.Context, sessionID string, items []model.CartItem) error
	DeleteBySession(ctx context.Context, sessionID string) error
}
