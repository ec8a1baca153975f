package dto

// CartItemPayload is one cart line in requests and responses.
type CartItemPayload struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// CartRequest replaces the cart of record.
type CartRequest struct {
	Items []CartItemPayload `json:"items"`
}

// GuestCartRequest replaces the cart kept for an anonymous session.
type GuestCartRequest struct {
	SessionID string            `json:"session_id"`
	Items     []CartItemPayload `json:"items"`
}

// MergeCartRequest reconciles a guest session cart into the user's cart.
type MergeCartRequest struct {
	SessionID string `json:"session_id"`
}

// CartResponse returns the cart of record.
type CartResponse struct {
	Items []CartItemPayload `json:"items"`
}
