package usecase

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
	"unicode"

	"github.com/polkiloo/storefront/internal/domain/model"
)

var (
	numberMu  sync.Mutex
	numberRNG = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// NewOrderNumber produces a human-facing tracking number: time-based prefix
// plus a random suffix.
func NewOrderNumber(now time.Time) string {
	numberMu.Lock()
	suffix := numberRNG.Intn(10000)
	numberMu.Unlock()
	return fmt.Sprintf("ORD%s%04d", now.Format("20060102150405"), suffix)
}

// NewTransactionID produces a payment transaction reference.
func NewTransactionID(now time.Time) string {
	numberMu.Lock()
	suffix := numberRNG.Intn(100000)
	numberMu.Unlock()
	return fmt.Sprintf("TXN%d%05d", now.UnixMilli(), suffix)
}

// StatusLabel renders a status with only its first letter capitalized.
func StatusLabel(status model.OrderStatus) string {
	s := string(status)
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

type trackingTemplate struct {
	description string
	location    string
}

var trackingTemplates = map[model.OrderStatus]trackingTemplate{
	model.OrderStatusPending:    {"Your order has been placed", "Online Store"},
	model.OrderStatusConfirmed:  {"Your order has been confirmed", "Seller Facility"},
	model.OrderStatusProcessing: {"Your order is being prepared", "Fulfillment Center"},
	model.OrderStatusShipped:    {"Your order is on the way", "Shipping Center"},
	model.OrderStatusDelivered:  {"Your order has been delivered", "Delivery Address"},
	model.OrderStatusCancelled:  {"Your order has been cancelled", "Online Store"},
}

// PlacedEvent is the first tracking entry of every order.
func PlacedEvent(now time.Time) model.TrackingEvent {
	tpl := trackingTemplates[model.OrderStatusPending]
	return model.TrackingEvent{
		Status:      "Order Placed",
		Description: tpl.description,
		Location:    tpl.location,
		CreatedAt:   now,
	}
}

// TransitionEvent synthesizes the tracking entry for a status change.
func TransitionEvent(status model.OrderStatus, now time.Time) model.TrackingEvent {
	tpl := trackingTemplates[status]
	return model.TrackingEvent{
		Status:      StatusLabel(status),
		Description: tpl.description,
		Location:    tpl.location,
		CreatedAt:   now,
	}
}

// PaymentReceivedEvent marks a verified payment on the order history.
func PaymentReceivedEvent(now time.Time) model.TrackingEvent {
	return model.TrackingEvent{
		Status:      "Payment Received",
		Description: "Your payment has been verified",
		Location:    "Online Store",
		CreatedAt:   now,
	}
}
