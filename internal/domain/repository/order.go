package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// NewOrder carries everything needed to persist a placed order atomically
// with its stock decrements.
type NewOrder struct {
	UserID        *int64
	SessionID     string
	Number        string
	Items         []model.OrderItem
	TotalAmount   float64
	Address       model.Address
	PaymentMethod model.PaymentMethod
	FirstEvent    model.TrackingEvent
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// Create inserts the order, its items and the initial tracking event,
	// and decrements stock for every line, all in one transaction.
	Create(ctx context.Context, order NewOrder) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	GetByNumber(ctx context.Context, number string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	// UpdateStatus sets the order status and appends one tracking event in
	// the same transaction.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, event model.TrackingEvent) error
}
