package dto

import "time"

// AddressPayload is the structured shipping address of a checkout.
type AddressPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Line1 string `json:"line1"`
	Line2 string `json:"line2,omitempty"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// OrderItemPayload references one product line at checkout.
type OrderItemPayload struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// PlaceOrderRequest is a cart snapshot submitted for checkout. SessionID is
// set on the guest path only.
type PlaceOrderRequest struct {
	Items         []OrderItemPayload `json:"items"`
	Address       AddressPayload     `json:"address"`
	PaymentMethod string             `json:"payment_method"`
	SessionID     string             `json:"session_id,omitempty"`
}

// OrderItemResponse is a priced line of a placed order.
type OrderItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// TrackingEventResponse is one tracking history entry.
type TrackingEventResponse struct {
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderResponse represents a placed order.
type OrderResponse struct {
	Number          string                  `json:"number"`
	Status          string                  `json:"status"`
	PaymentStatus   string                  `json:"payment_status"`
	PaymentMethod   string                  `json:"payment_method"`
	TotalAmount     float64                 `json:"total_amount"`
	Items           []OrderItemResponse     `json:"items"`
	Address         AddressPayload          `json:"address"`
	TrackingHistory []TrackingEventResponse `json:"tracking_history"`
	CreatedAt       time.Time               `json:"created_at"`
}

// UpdateOrderStatusRequest moves an order along the status machine.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
