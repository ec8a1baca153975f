package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Notifier delivers fire-and-forget user notifications.
type Notifier interface {
	Notify(ctx context.Context, userID int64, title, message string, kind model.NotificationType)
}

// PlaceOrderItem references a product line in a checkout request.
type PlaceOrderItem struct {
	ProductID int64
	Quantity  int
}

// PlaceOrderInput is a validated-to-be cart snapshot for checkout.
type PlaceOrderInput struct {
	UserID        *int64
	SessionID     string
	Items         []PlaceOrderItem
	Address       model.Address
	PaymentMethod model.PaymentMethod
}

// allowedPredecessors is the explicit transition table of the order status
// machine. A target status may only be set from one of its listed
// predecessors.
var allowedPredecessors = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusConfirmed:  {model.OrderStatusPending},
	model.OrderStatusProcessing: {model.OrderStatusConfirmed},
	model.OrderStatusShipped:    {model.OrderStatusConfirmed, model.OrderStatusProcessing},
	model.OrderStatusDelivered:  {model.OrderStatusShipped},
	model.OrderStatusCancelled:  {model.OrderStatusPending, model.OrderStatusConfirmed, model.OrderStatusProcessing},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to model.OrderStatus) bool {
	for _, prev := range allowedPredecessors[to] {
		if prev == from {
			return true
		}
	}
	return false
}

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	notifier Notifier
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, notifier Notifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, notifier: notifier, now: time.Now}
}

// Place validates the checkout snapshot and creates the order together with
// its stock decrements in one transaction. Validation happens before any
// write; a failure leaves no partial state.
func (u *OrderUseCase) Place(ctx context.Context, input PlaceOrderInput) (*model.Order, error) {
	v := domainErrors.NewValidationError()
	if len(input.Items) == 0 {
		v.Add("items", "at least one item is required")
	}
	seen := make(map[int64]struct{}, len(input.Items))
	ids := make([]int64, 0, len(input.Items))
	for i, item := range input.Items {
		if item.Quantity <= 0 {
			v.Add(fmt.Sprintf("items[%d].quantity", i), "quantity must be positive")
		}
		if _, dup := seen[item.ProductID]; dup {
			v.Add(fmt.Sprintf("items[%d].productId", i), "duplicate product")
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	if !ValidatePaymentMethod(input.PaymentMethod) {
		v.Add("paymentMethod", "payment method must be upi or card")
	}
	if addrErr := ValidateAddress(input.Address); addrErr != nil {
		for field, msg := range addrErr.Fields {
			v.Add("address."+field, msg)
		}
	}
	if !v.Empty() {
		return nil, v
	}

	products, err := u.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for i, item := range input.Items {
		if _, ok := byID[item.ProductID]; !ok {
			v.Add(fmt.Sprintf("items[%d].productId", i), "product does not exist")
		}
	}
	if !v.Empty() {
		return nil, v
	}

	now := u.now()
	lines := make([]model.OrderItem, 0, len(input.Items))
	var total float64
	for _, item := range input.Items {
		p := byID[item.ProductID]
		price := unitPrice(p)
		lines = append(lines, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: price,
			Quantity:  item.Quantity,
			ImageURL:  p.ImageURL,
		})
		total += price * float64(item.Quantity)
	}

	order, err := u.orders.Create(ctx, repository.NewOrder{
		UserID:        input.UserID,
		SessionID:     input.SessionID,
		Number:        NewOrderNumber(now),
		Items:         lines,
		TotalAmount:   total,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		FirstEvent:    PlacedEvent(now),
	})
	if err != nil {
		return nil, err
	}

	if input.UserID != nil && u.notifier != nil {
		u.notifier.Notify(ctx, *input.UserID, "Order placed",
			fmt.Sprintf("Your order %s has been placed", order.Number),
			model.NotificationTypeOrder)
	}

	return order, nil
}

// UpdateStatus moves an order along the status machine and appends exactly
// one tracking entry describing the transition.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(order.Status, target) {
		return nil, domainErrors.ErrInvalidTransition
	}

	event := TransitionEvent(target, u.now())
	if err := u.orders.UpdateStatus(ctx, orderID, target, event); err != nil {
		return nil, err
	}
	order.Status = target
	order.TrackingHistory = append(order.TrackingHistory, event)

	if order.UserID != nil && u.notifier != nil && notifyOnStatus(target) {
		u.notifier.Notify(ctx, *order.UserID, "Order "+StatusLabel(target),
			fmt.Sprintf("Order %s is now %s", order.Number, target),
			model.NotificationTypeOrder)
	}

	return order, nil
}

// Get returns one order by id.
func (u *OrderUseCase) Get(ctx context.Context, id int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// GetByNumber returns one order by tracking number.
func (u *OrderUseCase) GetByNumber(ctx context.Context, number string) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, number)
}

// ListByUser returns orders sorted by creation time.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

func notifyOnStatus(status model.OrderStatus) bool {
	switch status {
	case model.OrderStatusConfirmed, model.OrderStatusShipped, model.OrderStatusDelivered:
		return true
	default:
		return false
	}
}

func unitPrice(p model.Product) float64 {
	if p.SalePrice > 0 {
		return p.SalePrice
	}
	return p.OriginalPrice
}
