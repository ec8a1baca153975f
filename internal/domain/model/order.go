package model

import "time"

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderPaymentStatus describes payment state attached to an order.
type OrderPaymentStatus string

const (
	OrderPaymentPending OrderPaymentStatus = "pending"
	OrderPaymentPaid    OrderPaymentStatus = "paid"
	OrderPaymentFailed  OrderPaymentStatus = "failed"
)

// PaymentMethod enumerates supported checkout methods.
type PaymentMethod string

const (
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCard PaymentMethod = "card"
)

// OrderItem is a priced line snapshot taken at placement time.
type OrderItem struct {
	ProductID int64
	Name      string
	UnitPrice float64
	Quantity  int
	ImageURL  string
}

// TrackingEvent is one append-only entry of an order's tracking history.
type TrackingEvent struct {
	Status      string
	Description string
	Location    string
	CreatedAt   time.Time
}

// Order describes a placed purchase with its tracking history.
// UserID is nil for guest checkouts, which carry SessionID instead.
type Order struct {
	ID              int64
	UserID          *int64
	SessionID       string
	Number          string
	Items           []OrderItem
	TotalAmount     float64
	Address         Address
	PaymentMethod   PaymentMethod
	PaymentStatus   OrderPaymentStatus
	Status          OrderStatus
	TrackingHistory []TrackingEvent
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
